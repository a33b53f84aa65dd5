// Package merge aligns word-level ASR output with diarisation segments and
// groups the attributed words into speaker turns.
package merge

// Word is a single recognised word with timestamps in seconds.
type Word struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Segment is one diarisation span attributed to a speaker. Segments for
// different speakers may overlap; the input order carries no meaning.
type Segment struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// AttributedWord is a Word plus the speaker it was assigned to.
// An empty Speaker means no segment could be confidently matched.
type AttributedWord struct {
	Word
	Speaker string `json:"speaker,omitempty"`
}

// Turn is a run of consecutive words by one speaker. Text is the words'
// text joined with single spaces in input order.
type Turn struct {
	Speaker string  `json:"speaker,omitempty"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Words   []Word  `json:"words"`
	Text    string  `json:"text"`
}

// SpeakerActivity is the summed speaking time of one speaker across all of
// their segments. Used for ranking only.
type SpeakerActivity struct {
	Speaker string
	Total   float64
}

func (w Word) Bounds() (float64, float64)    { return w.Start, w.End }
func (s Segment) Bounds() (float64, float64) { return s.Start, s.End }
