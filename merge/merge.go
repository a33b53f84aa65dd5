package merge

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Options control one merge. Thresholds are honored as given, including
// explicit zero (a zero gap splits at every pause, a zero tolerance assigns
// only touching words); negative values select the documented defaults.
// NumSpeakers 0 keeps every speaker.
type Options struct {
	NumSpeakers      int
	GapThreshold     float64
	SpeakerTolerance float64
	Logger           logrus.FieldLogger
}

func (o Options) gap() float64 {
	if o.GapThreshold < 0 {
		return DefaultGapThreshold
	}
	return o.GapThreshold
}

func (o Options) tolerance() float64 {
	if o.SpeakerTolerance < 0 {
		return DefaultSpeakerTolerance
	}
	return o.SpeakerTolerance
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// Result is the merged transcript: the turn list consumed by the text and
// subtitle renderers, the flat attributed word list consumed by JSON, and
// the post-filter diarisation segments sorted by start.
type Result struct {
	Turns    []Turn
	Words    []AttributedWord
	Segments []Segment
}

// Merge attributes every word to a speaker and aggregates the words into
// turns. It is a pure function of its inputs and options, safe to call
// concurrently for different recordings.
//
// Non-finite or negative timestamps are a structural contract violation and
// fail fast with the offending record named. Degenerate spans (end before
// start) are clamped to zero length and logged, never an error. Empty word
// or segment lists are valid and produce an empty turn list.
func Merge(words []Word, segments []Segment, opts Options) (*Result, error) {
	log := opts.logger()

	words, err := checkWords(words, log)
	if err != nil {
		return nil, err
	}
	segs, err := checkSegments(segments, log)
	if err != nil {
		return nil, err
	}

	if opts.NumSpeakers > 0 {
		segs = FilterTopSpeakers(segs, opts.NumSpeakers)
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })

	attributed := AssignSpeakers(words, segs, opts.tolerance())
	turns := BuildTurns(attributed, opts.gap())

	return &Result{Turns: turns, Words: attributed, Segments: segs}, nil
}

// checkWords validates timestamps and returns a copy with degenerate spans
// clamped to zero length.
func checkWords(words []Word, log logrus.FieldLogger) ([]Word, error) {
	out := make([]Word, len(words))
	for i, w := range words {
		if err := checkSpan(w.Start, w.End); err != nil {
			return nil, fmt.Errorf("word %d (%q): %w", i, w.Text, err)
		}
		if w.End < w.Start {
			log.WithFields(logrus.Fields{
				"word":  w.Text,
				"start": w.Start,
				"end":   w.End,
			}).Warn("word ends before it starts, clamping to zero duration")
			w.End = w.Start
		}
		out[i] = w
	}
	return out, nil
}

func checkSegments(segments []Segment, log logrus.FieldLogger) ([]Segment, error) {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if err := checkSpan(s.Start, s.End); err != nil {
			return nil, fmt.Errorf("segment %d (speaker %q): %w", i, s.Speaker, err)
		}
		if s.End < s.Start {
			log.WithFields(logrus.Fields{
				"speaker": s.Speaker,
				"start":   s.Start,
				"end":     s.End,
			}).Warn("segment ends before it starts, clamping to zero duration")
			s.End = s.Start
		}
		out[i] = s
	}
	return out, nil
}

func checkSpan(start, end float64) error {
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return fmt.Errorf("non-numeric timestamps [%v, %v]", start, end)
	}
	if start < 0 {
		return fmt.Errorf("negative start %v", start)
	}
	return nil
}
