package humantime_test

import (
	"testing"
	"time"

	"github.com/LemoonCan/milky-way-client/pkg/humantime"
)

func TestFormat(t *testing.T) {
	now := time.Date(2021, 5, 20, 15, 30, 0, 0, time.UTC)

	var tests = []struct {
		name string
		ts   time.Time
		want string
	}{
		{
			"just now",
			now.Add(-30 * time.Second),
			"刚刚",
		},
		{
			"minutes ago",
			now.Add(-5 * time.Minute),
			"5分钟前",
		},
		{
			"hours ago same day",
			now.Add(-90 * time.Minute),
			"1小时前",
		},
		{
			"yesterday",
			now.AddDate(0, 0, -1),
			"昨天 15:30",
		},
		{
			"days ago same year",
			now.AddDate(0, 0, -10),
			"05月10日 15:30",
		},
		{
			"previous year",
			now.AddDate(-1, 0, 0),
			"2020年05月20日",
		},
		{
			"unknown timestamp",
			time.Time{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := humantime.Format(tt.ts, now)
			if result != tt.want {
				t.Fatalf("expected %v actual %v", tt.want, result)
			}
		})
	}
}
