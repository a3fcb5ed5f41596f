package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDateRange(t *testing.T) {
	// Wednesday.
	now := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		phrase    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "next week",
			phrase:    "sometime next week please",
			wantStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 17, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "tomorrow",
			phrase:    "tomorrow morning",
			wantStart: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 4, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "this week",
			phrase:    "this week",
			wantStart: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 6, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "this Friday",
			phrase:    "this Friday if possible",
			wantStart: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 5, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "default is next seven days",
			phrase:    "whenever works",
			wantStart: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "matching is case sensitive",
			phrase:    "this friday",
			wantStart: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "next week wins over tomorrow",
			phrase:    "tomorrow or next week",
			wantStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 17, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "empty phrase",
			phrase:    "",
			wantStart: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := ResolveDateRange(tc.phrase, now)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestResolveDateRange_ThisFridayOnFriday(t *testing.T) {
	friday := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	start, end := ResolveDateRange("this Friday", friday)

	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 5, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestResolveDateRange_AlwaysOrdered(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, phrase := range []string{"next week", "tomorrow", "this week", "this Friday", "no idea", "", "日曜日"} {
		start, end := ResolveDateRange(phrase, now)
		assert.False(t, end.Before(start), "phrase %q resolved to end before start", phrase)
	}
}
