package utils

import "time"

// FormatDeadline renders a due date for terminal output, in the local
// timezone. A nil deadline means the assignment has no due date.
func FormatDeadline(t *time.Time) string {
	if t == nil {
		return "no due date"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func TimeToTimestamp(t time.Time) int64 {
	return t.Unix()
}
