package views

import "math"

// Progress returns completed as a rounded percentage of total, or 0 when
// total is 0.
func Progress(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
