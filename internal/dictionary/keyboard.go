package dictionary

import (
	"math"
	"unicode"
)

var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range keyboardRows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

func keyDistance(a, b rune) float64 {
	a = unicode.ToLower(a)
	b = unicode.ToLower(b)
	pa, oka := keyPos[a]
	pb, okb := keyPos[b]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// phoneticPairs get a reduced cost regardless of keyboard distance.
var phoneticPairs = map[[2]rune]float64{
	{'i', 'y'}: 0.4, {'y', 'i'}: 0.4,
	{'c', 'k'}: 0.5, {'k', 'c'}: 0.5,
	{'c', 's'}: 0.5, {'s', 'c'}: 0.5,
	{'s', 'z'}: 0.4, {'z', 's'}: 0.4,
}

func (d *Dict) substitutionCost(a, b rune) float64 {
	a = unicode.ToLower(a)
	b = unicode.ToLower(b)
	if v, ok := phoneticPairs[[2]rune{a, b}]; ok {
		return v
	}
	kd := keyDistance(a, b)
	if kd <= 1.0 {
		return d.opts.KeyboardNearSub
	} else if kd <= 1.5 {
		return 0.8
	} else if kd <= 2.2 {
		return 1.2
	}
	return 1.8
}

// isOneAdjacentSwap reports whether b is a with exactly one pair of adjacent
// characters swapped.
func isOneAdjacentSwap(a, b string) bool {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) || len(ra) < 2 {
		return false
	}
	diff := -1
	for i := 0; i < len(ra); i++ {
		if ra[i] != rb[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(ra) {
		return false
	}
	if ra[diff] == rb[diff+1] && ra[diff+1] == rb[diff] {
		for j := diff + 2; j < len(ra); j++ {
			if ra[j] != rb[j] {
				return false
			}
		}
		return true
	}
	return false
}
