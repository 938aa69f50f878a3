package maxima_test

import (
	"math/rand"

	"github.com/katalvlaran/peakfind/maxima"
)

// borderFlags returns a flag buffer for an h×w row-major grid with every
// edge cell flagged BorderIndex.
func borderFlags(h, w int) []maxima.Flag {
	flags := make([]maxima.Flag, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				flags[y*w+x] = maxima.BorderIndex
			}
		}
	}

	return flags
}

// offsets4 returns face connectivity offsets for a grid of width w.
func offsets4(w int) []int {
	return []int{-w, -1, 1, w}
}

// offsets8 returns full connectivity offsets for a grid of width w.
func offsets8(w int) []int {
	return []int{-w - 1, -w, -w + 1, -1, 1, w - 1, w, w + 1}
}

// randomGrid fills an h×w grid with values in [0, levels).
func randomGrid(rng *rand.Rand, h, w, levels int) []int {
	img := make([]int, h*w)
	for i := range img {
		img[i] = rng.Intn(levels)
	}

	return img
}

// naiveMaxima classifies every plateau independently by breadth-first
// search without prefiltering or queue replay. It is the reference the
// tests compare Find against.
func naiveMaxima(img []int, flags []maxima.Flag, offsets []int) []maxima.Flag {
	out := append([]maxima.Flag(nil), flags...)
	seen := make([]bool, len(img))
	for s := range img {
		if flags[s] == maxima.BorderIndex || seen[s] {
			continue
		}
		h := img[s]
		members := []int{s}
		seen[s] = true
		isMax := true
		for k := 0; k < len(members); k++ {
			c := members[k]
			for _, o := range offsets {
				nb := c + o
				switch {
				case img[nb] > h:
					isMax = false
				case img[nb] == h && flags[nb] == maxima.BorderIndex:
					isMax = false
				case img[nb] == h && !seen[nb]:
					seen[nb] = true
					members = append(members, nb)
				}
			}
		}
		f := maxima.NotMaximum
		if isMax {
			f = maxima.QueuedMaybeMaximum
		}
		for _, m := range members {
			out[m] = f
		}
	}

	return out
}
