package dictionary

import "math"

// unitDL is the unweighted Damerau-Levenshtein distance. The suggester uses
// it to count edits per candidate when applying the single-edit preference.
func unitDL(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := prev[j] + 1
			if y := curr[j-1] + 1; y < x {
				x = y
			}
			if z := prev[j-1] + cost; z < x {
				x = z
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := prev2[j-2] + 1; t < x {
					x = t
				}
			}
			curr[j] = x
		}
		copy(prev2, prev)
		copy(prev, curr)
	}
	return prev[lb]
}

// weightedDL is a weighted Damerau-Levenshtein with keyboard-aware
// substitution costs, cached per string pair.
func (d *Dict) weightedDL(a, b string) float64 {
	key := a + "\u0000" + b
	if v, ok := d.distCache.Load(key); ok {
		return v.(float64)
	}
	// fast path for a single adjacent swap
	if isOneAdjacentSwap(a, b) {
		cost := d.opts.TransposeCost
		d.distCache.Store(key, cost)
		return cost
	}
	insBase, delBase := d.opts.NeighborInsDel, d.opts.NeighborInsDel
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return float64(lb) * insBase
	}
	if lb == 0 {
		return float64(la) * delBase
	}
	// two sliding DP rows
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 1; j <= lb; j++ {
		prev[j] = float64(j) * insBase
	}
	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * delBase
		for j := 1; j <= lb; j++ {
			var sub float64
			if ra[i-1] == rb[j-1] {
				sub = 0
			} else {
				sub = d.substitutionCost(ra[i-1], rb[j-1])
			}
			best := math.Min(
				prev[j]+delBase,
				math.Min(curr[j-1]+insBase, prev[j-1]+sub),
			)
			// transposition
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				best = math.Min(best, prev[j-2]+d.opts.TransposeCost)
			}
			curr[j] = best
		}
		copy(prev, curr)
	}
	res := prev[lb]
	d.distCache.Store(key, res)
	return res
}

// logPrior is the temperature-flattened log frequency of word, cached.
func (d *Dict) logPrior(word string) float64 {
	if v, ok := d.logpCache.Load(word); ok {
		return v.(float64)
	}
	f := d.frequencies[word]
	if f == 0 {
		f = 1e-12
	}
	adj := math.Pow(f, 1.0/d.opts.FreqTemperature)
	lp := math.Log(adj)
	d.logpCache.Store(word, lp)
	return lp
}
