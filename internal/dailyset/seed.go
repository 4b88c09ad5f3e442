package dailyset

import (
	"time"
	"unicode/utf16"
)

// Seed encodes the calendar fields of date as YYYYMMDD. The date is expected
// to be normalized to the canonical timezone already; no conversion happens here.
func Seed(date time.Time) uint32 {
	return uint32(date.Year()*10000 + int(date.Month())*100 + date.Day())
}

// TopicSeed offsets the base seed by the sum of the topic ID's UTF-16 code
// units so that topics shuffled on the same day do not move in lock-step.
func TopicSeed(base uint32, topicID string) uint32 {
	var sum uint32
	for _, unit := range utf16.Encode([]rune(topicID)) {
		sum += uint32(unit)
	}
	return base + sum
}
