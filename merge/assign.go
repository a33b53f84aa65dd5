package merge

import (
	"math"
	"sort"
)

// DefaultSpeakerTolerance is the maximum distance, in seconds, at which a
// word with no overlapping segment is still attributed to the nearest one.
const DefaultSpeakerTolerance = 0.25

// AssignSpeakers attributes each word to a speaker. The segment with the
// largest overlap wins; a word touching no segment at all falls back to the
// nearest segment within tolerance seconds. Words beyond tolerance stay
// unattributed (empty Speaker). Ties go to the segment with the earlier
// start, so the result is the same regardless of input segment order.
//
// Every word is matched against the same immutable sorted segment list;
// there is no state shared between words.
func AssignSpeakers(words []Word, segments []Segment, tolerance float64) []AttributedWord {
	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		if sorted[i].End != sorted[j].End {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Speaker < sorted[j].Speaker
	})

	out := make([]AttributedWord, 0, len(words))
	for _, w := range words {
		out = append(out, AttributedWord{Word: w, Speaker: bestSpeaker(w, sorted, tolerance)})
	}
	return out
}

// bestSpeaker expects segments sorted by start; strict comparisons then give
// the earlier-start segment on ties.
func bestSpeaker(w Word, segments []Segment, tolerance float64) string {
	best, bestOverlap := -1, 0.0
	for i := range segments {
		if ov := Overlap(w, segments[i]); ov > bestOverlap {
			best, bestOverlap = i, ov
		}
	}
	if best >= 0 {
		return segments[best].Speaker
	}

	// No temporal overlap anywhere: a gap in diarisation coverage. Recover
	// boundary words from the nearest segment within tolerance.
	nearest, nearestDist := -1, math.Inf(1)
	for i := range segments {
		if d := Distance(w, segments[i]); d <= tolerance && d < nearestDist {
			nearest, nearestDist = i, d
		}
	}
	if nearest >= 0 {
		return segments[nearest].Speaker
	}
	return ""
}
