//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name string
		opts LogQueryOptions
		want bson.M
	}{
		{
			name: "empty options match everything",
			opts: LogQueryOptions{},
			want: bson.M{},
		},
		{
			name: "request id only",
			opts: LogQueryOptions{RequestID: "req-1"},
			want: bson.M{"request_id": "req-1"},
		},
		{
			name: "audit fields",
			opts: LogQueryOptions{Level: "error", ActionType: "update_stock", UserEmail: "ops@example.com"},
			want: bson.M{
				"level":       "error",
				"action_type": "update_stock",
				"user_email":  "ops@example.com",
			},
		},
		{
			name: "start time only",
			opts: LogQueryOptions{StartTime: &start},
			want: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name: "time range",
			opts: LogQueryOptions{StartTime: &start, EndTime: &end},
			want: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name: "limit and skip do not affect the filter",
			opts: LogQueryOptions{Limit: 50, Skip: 10},
			want: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.filter())
		})
	}
}
