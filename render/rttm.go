package render

import (
	"fmt"
	"io"

	"github.com/openscribe/diarise-pipeline/merge"
)

// RTTM writes speaker lines in the NIST rich-transcription format:
// "SPEAKER <file-id> 1 <start> <duration> <NA> <NA> <speaker> <NA> <NA>".
// With fromSegments the raw post-filter diarisation segments are emitted
// instead of the merged turns. Turns without a speaker are omitted; an RTTM
// line without a speaker id means nothing to downstream scoring tools.
func RTTM(w io.Writer, res *merge.Result, fileID string, fromSegments bool) error {
	if fromSegments {
		for _, s := range res.Segments {
			if err := rttmLine(w, fileID, s.Start, merge.Duration(s), s.Speaker); err != nil {
				return err
			}
		}
		return nil
	}
	for _, t := range res.Turns {
		if t.Speaker == "" {
			continue
		}
		if err := rttmLine(w, fileID, t.Start, t.End-t.Start, t.Speaker); err != nil {
			return err
		}
	}
	return nil
}

func rttmLine(w io.Writer, fileID string, start, dur float64, speaker string) error {
	_, err := fmt.Fprintf(w, "SPEAKER %s 1 %s %s <NA> <NA> %s <NA> <NA>\n",
		fileID, seconds(start), seconds(dur), speaker)
	return err
}
