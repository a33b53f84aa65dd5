package render

import (
	"fmt"
	"io"

	"github.com/openscribe/diarise-pipeline/merge"
)

// Text writes one line per turn: "[MM:SS.cc - MM:SS.cc] SPEAKER: text".
func Text(w io.Writer, res *merge.Result, labels Labels) error {
	for _, t := range res.Turns {
		_, err := fmt.Fprintf(w, "[%s - %s] %s: %s\n", clock(t.Start), clock(t.End), labels.name(t.Speaker), t.Text)
		if err != nil {
			return err
		}
	}
	return nil
}
