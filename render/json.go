package render

import (
	"encoding/json"
	"io"

	"github.com/openscribe/diarise-pipeline/merge"
)

type jsonTurn struct {
	Speaker *string      `json:"speaker"`
	Start   float64      `json:"start"`
	End     float64      `json:"end"`
	Text    string       `json:"text"`
	Words   []merge.Word `json:"words"`
}

type jsonDoc struct {
	Turns    []jsonTurn      `json:"turns"`
	Segments []merge.Segment `json:"segments"`
}

// JSON writes the turn list plus the post-filter diarisation segments.
// Unattributed turns carry an explicit null speaker.
func JSON(w io.Writer, res *merge.Result) error {
	doc := jsonDoc{
		Turns:    make([]jsonTurn, 0, len(res.Turns)),
		Segments: res.Segments,
	}
	if doc.Segments == nil {
		doc.Segments = []merge.Segment{}
	}
	for _, t := range res.Turns {
		jt := jsonTurn{Start: t.Start, End: t.End, Text: t.Text, Words: t.Words}
		if t.Speaker != "" {
			speaker := t.Speaker
			jt.Speaker = &speaker
		}
		doc.Turns = append(doc.Turns, jt)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
