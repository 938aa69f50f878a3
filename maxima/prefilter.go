package maxima

// hasFastAxis reports whether offsets connect neighbors along the
// fastest-varying axis in both directions.
func hasFastAxis(offsets []int) bool {
	var minus, plus bool
	for _, o := range offsets {
		switch o {
		case -1:
			minus = true
		case 1:
			plus = true
		}
	}

	return minus && plus
}

// markRuns scans the buffer along its fastest axis and flags as MaybeMaximum
// every flat run that rises from its left neighbor and drops to its right
// neighbor. Border cells are never marked and terminate runs.
//
// The first and last cells of the buffer must be BorderIndex, so both i-1
// and the run terminator j stay in range.
func markRuns[T Number](img Image[T], flags []Flag) {
	n := len(flags)
	i := 1
	for i < n-1 {
		h := img.At(i)
		if flags[i] == BorderIndex || !(img.At(i-1) < h) {
			i++
			continue
		}
		// Find the right edge of the plateau (or of the dimension).
		j := i + 1
		for flags[j] != BorderIndex && img.At(j) == h {
			j++
		}
		if h > img.At(j) {
			for k := i; k < j; k++ {
				flags[k] = MaybeMaximum
			}
		}
		i = j
	}
}

// markAll flags every non-border cell as MaybeMaximum.
func markAll(flags []Flag) {
	for i, f := range flags {
		if f != BorderIndex {
			flags[i] = MaybeMaximum
		}
	}
}
