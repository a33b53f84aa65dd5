package render

import (
	"fmt"
	"io"

	"github.com/openscribe/diarise-pipeline/merge"
)

// SRT writes numbered subtitle cues, one per turn, with the speaker label
// prefixed to the cue body.
func SRT(w io.Writer, res *merge.Result, labels Labels) error {
	for i, t := range res.Turns {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n[%s] %s\n\n",
			i+1, srtClock(t.Start), srtClock(t.End), labels.name(t.Speaker), t.Text)
		if err != nil {
			return err
		}
	}
	return nil
}
