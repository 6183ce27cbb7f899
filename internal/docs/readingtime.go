package docs

import (
	"math"
	"strings"
)

const (
	defaultWordsPerMinute = 220
	defaultMinimumMinutes = 3
)

// ReadingTime estimates whole minutes needed to read body at the supplied
// pace, never dropping below floor. Word count splits on whitespace runs.
// Zero or negative tuning values fall back to the defaults.
func ReadingTime(body string, wordsPerMinute, floor int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultWordsPerMinute
	}
	if floor <= 0 {
		floor = defaultMinimumMinutes
	}

	words := len(strings.Fields(body))
	minutes := int(math.Round(float64(words) / float64(wordsPerMinute)))
	if minutes < floor {
		return floor
	}
	return minutes
}
