package common

import "time"

// MonthName converts a 1-based month number into its English name,
// e.g. 1 -> "January". Out-of-range values yield an empty string.
// Dashboard statistics and order dates arrive as month numbers.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
