package cache

import (
	"strings"
	"time"
)

const (
	GlobalKeyPrefix = "csquiz"

	DailySetService = "dailyset"
	DailySetObject  = "set"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// DailySetKey is the cache key of the daily set stored for date.
func DailySetKey(date time.Time) string {
	return GenerateCacheKey(DailySetService, DailySetObject, date.Format("2006-01-02"))
}
