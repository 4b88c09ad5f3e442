package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "dailyset",
			objectType:  "set",
			identifier:  "2024-03-01",
			paramsKey:   nil,
			expectedKey: "csquiz:dailyset:set:2024-03-01",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "dailyset",
			objectType:  "set",
			identifier:  "2024-03-01",
			paramsKey:   []string{},
			expectedKey: "csquiz:dailyset:set:2024-03-01",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "dailyset",
			objectType:  "set",
			identifier:  "2024-03-01",
			paramsKey:   []string{"global", "15"},
			expectedKey: "csquiz:dailyset:set:2024-03-01:global_15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			assert.Equal(t, tt.expectedKey, actualKey)
		})
	}
}

func TestDailySetKey(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "csquiz:dailyset:set:2024-03-01", DailySetKey(date))
}
