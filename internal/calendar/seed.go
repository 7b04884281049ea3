package calendar

import "time"

// Seed returns the demo records relative to now: a confirmed review
// tomorrow and an open slot the day after.
func Seed(now time.Time) []Meeting {
	today := Day(now)
	return []Meeting{
		{
			ID:           "1",
			Title:        "Project Review",
			Date:         today.AddDate(0, 0, 1),
			Time:         Clock{Hour: 10},
			Duration:     60,
			Participants: []string{"John Investor", "Sarah Entrepreneur"},
			Status:       StatusConfirmed,
			Kind:         KindMeeting,
		},
		{
			ID:           "2",
			Title:        DefaultSlotTitle,
			Date:         today.AddDate(0, 0, 2),
			Time:         Clock{Hour: 14},
			Duration:     30,
			Participants: []string{},
			Status:       StatusPending,
			Kind:         KindAvailability,
		},
	}
}
