package merge

import "sort"

// ActivityRanking sums speaking time per speaker and returns speakers in
// descending order of total duration. Ties keep first-seen input order; the
// ranking never depends on map iteration order.
func ActivityRanking(segments []Segment) []SpeakerActivity {
	totals := make(map[string]int, 8)
	ranking := make([]SpeakerActivity, 0, 8)
	for _, s := range segments {
		i, seen := totals[s.Speaker]
		if !seen {
			i = len(ranking)
			totals[s.Speaker] = i
			ranking = append(ranking, SpeakerActivity{Speaker: s.Speaker})
		}
		ranking[i].Total += Duration(s)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})
	return ranking
}

// FilterTopSpeakers keeps only segments belonging to the n most active
// speakers. n <= 0 means no filtering. Dropped speakers disappear entirely;
// words only they covered become unassigned downstream.
func FilterTopSpeakers(segments []Segment, n int) []Segment {
	if n <= 0 {
		return segments
	}
	ranking := ActivityRanking(segments)
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	keep := make(map[string]struct{}, len(ranking))
	for _, a := range ranking {
		keep[a.Speaker] = struct{}{}
	}
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if _, ok := keep[s.Speaker]; ok {
			out = append(out, s)
		}
	}
	return out
}
