package models

// NormalizePercents converts per-level counts into integer percentages that
// sum to exactly 100 (or exactly 0 when there are no residents). Largest
// remainder method: floor every share, then hand out the leftover points to
// the largest fractional remainders, earliest level first on ties.
func NormalizePercents(counts map[Level]int) map[Level]int {
	percents := make(map[Level]int, len(Levels))
	total := 0
	for _, level := range Levels {
		percents[level] = 0
		total += counts[level]
	}
	if total == 0 {
		return percents
	}

	remainders := make([]int, len(Levels))
	allocated := 0
	for i, level := range Levels {
		scaled := counts[level] * 100
		percents[level] = scaled / total
		remainders[i] = scaled % total
		allocated += percents[level]
	}

	for leftover := 100 - allocated; leftover > 0; leftover-- {
		best := -1
		for i := range Levels {
			if best == -1 || remainders[i] > remainders[best] {
				best = i
			}
		}
		percents[Levels[best]]++
		remainders[best] = -1
	}
	return percents
}
