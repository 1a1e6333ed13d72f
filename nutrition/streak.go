package nutrition

import (
	"fmt"
	"time"
)

// Streak is the day-level activity streak state. LastActivity is a
// calendar date in YYYY-MM-DD form ("" means no activity recorded yet).
// It is a plain date, not a timestamp, so client and server never disagree
// about which day a meal fell on.
type Streak struct {
	Current      int    `json:"current_streak"`
	Longest      int    `json:"longest_streak"`
	LastActivity string `json:"last_activity_date"`
}

// AdvanceStreak applies the "meal logged on day" transition. Same-day
// events are no-ops, a consecutive day increments, any gap resets to 1.
// Longest never decreases. Pure function of (previous state, day): the
// caller supplies the date and serializes concurrent updates per user.
func AdvanceStreak(s Streak, day string) (Streak, error) {
	d, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return s, fmt.Errorf("invalid activity date %q: %w", day, err)
	}

	if s.LastActivity == day {
		return s, nil
	}

	current := 1
	if s.LastActivity != "" {
		last, err := time.Parse(time.DateOnly, s.LastActivity)
		if err != nil {
			return s, fmt.Errorf("invalid stored activity date %q: %w", s.LastActivity, err)
		}
		if last.AddDate(0, 0, 1).Equal(d) {
			current = s.Current + 1
		}
	}

	longest := s.Longest
	if current > longest {
		longest = current
	}
	return Streak{Current: current, Longest: longest, LastActivity: day}, nil
}
