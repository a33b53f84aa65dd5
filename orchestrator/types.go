package orchestrator

import (
	"strings"

	"github.com/openscribe/diarise-pipeline/clients"
	"github.com/openscribe/diarise-pipeline/merge"
)

// Report summarises one pipeline run.
type Report struct {
	SessionID string            `json:"session_id"`
	AudioPath string            `json:"audio_path"`
	Words     int               `json:"words"`
	Segments  int               `json:"segments"`
	Turns     int               `json:"turns"`
	Outputs   map[string]string `json:"outputs"` // format -> file path
}

// wordsFromASR converts the ASR payload into merge words. Token text is
// trimmed and empty tokens are dropped; the recogniser pads some tokens with
// leading spaces.
func wordsFromASR(resp *clients.TranscribeResp) []merge.Word {
	words := make([]merge.Word, 0, len(resp.Words))
	for _, w := range resp.Words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		words = append(words, merge.Word{
			Text:       text,
			Start:      w.Start,
			End:        w.End,
			Confidence: w.Confidence,
		})
	}
	return words
}

func segmentsFromDiarization(resp *clients.DiarizeResp) []merge.Segment {
	segs := make([]merge.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segs = append(segs, merge.Segment{Speaker: s.Speaker, Start: s.Start, End: s.End})
	}
	return segs
}
