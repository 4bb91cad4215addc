package ladder

// EditDistanceWithin reports whether a can be turned into b with at most d
// single-rune insertions, deletions or substitutions.
//
// It runs the Levenshtein recurrence row by row and gives up as soon as a
// whole row exceeds d, so checking two unrelated words costs little more
// than comparing their lengths.
func EditDistanceWithin(a, b string, d int) bool {
	if d < 0 {
		return false
	}
	if a == b {
		return true
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(rb)-len(ra) > d {
		return false
	}

	// prev[j] is the distance between ra[:i-1] and rb[:j].
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(rb); j++ {
			sub := prev[j-1]
			if ra[i-1] != rb[j-1] {
				sub++
			}
			cur[j] = min(sub, prev[j]+1, cur[j-1]+1)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > d {
			return false
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)] <= d
}

// IsAdjacent reports whether a and b are one edit apart (or equal).
func IsAdjacent(a, b string) bool {
	return EditDistanceWithin(a, b, 1)
}
