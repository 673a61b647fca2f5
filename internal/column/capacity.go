package column

// capacityFor returns the smallest multiple of increment that holds n elements.
//
// Assumptions:
//   - increment > 0 (checked when the column is built)
//   - capacity only ever grows; callers compare against the current capacity first
func capacityFor(n, increment int) int {
	if n <= 0 {
		return 0
	}
	return ((n + increment - 1) / increment) * increment
}
