package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignSpeakersBestOverlapWins(t *testing.T) {
	segments := []Segment{
		seg("A", 0, 1),
		seg("B", 0.8, 2),
	}
	// 0.4s inside A, 0.6s inside B.
	got := AssignSpeakers([]Word{word("x", 0.6, 1.4)}, segments, DefaultSpeakerTolerance)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Speaker)
}

func TestAssignSpeakersOverlapTieEarlierStartWins(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		w        Word
	}{
		{
			"full containment by both",
			[]Segment{seg("B", 0.5, 3), seg("A", 0, 3)},
			word("x", 1, 2),
		},
		{
			// 0.4s inside each: the word straddles the A/B boundary evenly.
			"equal partial overlaps",
			[]Segment{seg("B", 0.8, 2), seg("A", 0, 1)},
			word("x", 0.6, 1.2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignSpeakers([]Word{tt.w}, tt.segments, DefaultSpeakerTolerance)
			require.Len(t, got, 1)
			assert.Equal(t, "A", got[0].Speaker, "tie must go to the earlier segment start")
		})
	}
}

func TestAssignSpeakersIndependentOfSegmentOrder(t *testing.T) {
	forward := []Segment{seg("A", 0, 1), seg("B", 1, 2)}
	reversed := []Segment{seg("B", 1, 2), seg("A", 0, 1)}
	words := []Word{word("x", 0.2, 0.4), word("y", 1.2, 1.4)}

	assert.Equal(t,
		AssignSpeakers(words, forward, DefaultSpeakerTolerance),
		AssignSpeakers(words, reversed, DefaultSpeakerTolerance))
}

func TestAssignSpeakersToleranceFallback(t *testing.T) {
	segments := []Segment{seg("A", 0, 1.75)}

	tests := []struct {
		name string
		w    Word
		want string
	}{
		{"exactly tolerance away", word("x", 2.0, 2.2), "A"},
		{"just beyond tolerance", word("x", 2.01, 2.2), ""},
		{"inside segment", word("x", 1.0, 1.2), "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignSpeakers([]Word{tt.w}, segments, 0.25)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Speaker)
		})
	}
}

func TestAssignSpeakersNearestWithinToleranceWins(t *testing.T) {
	segments := []Segment{
		seg("A", 0, 1.0),
		seg("B", 1.25, 2),
	}
	// Word in the diarisation gap: 0.15 from A, 0.05 from B.
	got := AssignSpeakers([]Word{word("x", 1.15, 1.2)}, segments, 0.25)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Speaker)
}

func TestAssignSpeakersCoverageGapStaysUnassigned(t *testing.T) {
	segments := []Segment{seg("A", 0, 5), seg("B", 20, 25)}
	got := AssignSpeakers([]Word{word("x", 10.0, 10.2)}, segments, 0.25)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Speaker, "nearest segment is 5s away, far beyond tolerance")
}

func TestAssignSpeakersNoSegments(t *testing.T) {
	got := AssignSpeakers([]Word{word("x", 0, 1)}, nil, DefaultSpeakerTolerance)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Speaker)
}

func TestAssignSpeakersDoesNotMutateInput(t *testing.T) {
	segments := []Segment{seg("B", 5, 6), seg("A", 0, 1)}
	AssignSpeakers([]Word{word("x", 0, 1)}, segments, DefaultSpeakerTolerance)
	assert.Equal(t, []Segment{seg("B", 5, 6), seg("A", 0, 1)}, segments)
}
