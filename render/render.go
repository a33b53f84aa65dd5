// Package render serialises a merged transcript into the interchange
// formats consumed downstream: plain text, JSON, SRT subtitles and RTTM.
package render

import (
	"fmt"
	"math"
	"strconv"
)

// UnknownSpeaker is the reserved label used by the text and subtitle
// renderers for words that could not be attributed to any speaker.
const UnknownSpeaker = "UNKNOWN"

// Labels maps diarisation speaker ids to display names. Missing entries
// fall through to the raw id.
type Labels map[string]string

func (l Labels) name(speaker string) string {
	if speaker == "" {
		return UnknownSpeaker
	}
	if n, ok := l[speaker]; ok {
		return n
	}
	return speaker
}

// clock formats seconds as MM:SS.cc (two-digit minutes and centiseconds).
func clock(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	cs := int64(math.Round(sec * 100))
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

// srtClock formats seconds as HH:MM:SS,mmm.
func srtClock(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int64(math.Round(sec * 1000))
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

// seconds renders a timestamp or duration for RTTM with millisecond
// precision and no exponent.
func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
