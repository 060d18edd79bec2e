package appointment

// Overlaps reports whether [startA, endA) and [startB, endB) intersect on the
// same date. Touching intervals do not overlap, so back-to-back bookings are
// allowed.
func Overlaps(startA, endA, startB, endB TimeOfDay) bool {
	return startA < endB && startB < endA
}
