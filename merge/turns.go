package merge

import "strings"

// DefaultGapThreshold is the silence gap, in seconds, at which consecutive
// words split into separate turns even when the speaker stays the same.
const DefaultGapThreshold = 0.8

// BuildTurns folds the attributed word sequence into turns with a single
// left-to-right pass. A new turn opens on speaker change or when the silence
// since the previous word reaches gapThreshold. A boundary is final once
// emitted; words are never reordered by time.
func BuildTurns(words []AttributedWord, gapThreshold float64) []Turn {
	var turns []Turn
	var open *Turn
	for _, w := range words {
		switch {
		case open == nil:
			open = newTurn(w)
		case w.Speaker == open.Speaker && w.Start-open.End < gapThreshold:
			open.Words = append(open.Words, w.Word)
			open.End = w.End
		default:
			turns = append(turns, closeTurn(open))
			open = newTurn(w)
		}
	}
	if open != nil {
		turns = append(turns, closeTurn(open))
	}
	return turns
}

func newTurn(w AttributedWord) *Turn {
	return &Turn{
		Speaker: w.Speaker,
		Start:   w.Start,
		End:     w.End,
		Words:   []Word{w.Word},
	}
}

func closeTurn(t *Turn) Turn {
	texts := make([]string, len(t.Words))
	for i, w := range t.Words {
		texts[i] = w.Text
	}
	t.Text = strings.Join(texts, " ")
	return *t
}
