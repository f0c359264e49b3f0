package game

// TotalOdds returns the probability of each two-dice total under a parity
// constraint. The constrained distribution is the unconstrained one
// renormalised over the matching totals, which is exactly what re-rolling
// the pair produces.
func TotalOdds(parity Parity) map[int]float64 {
	counts := map[int]int{}
	sum := 0
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := 1; d2 <= 6; d2++ {
			t := d1 + d2
			if !parity.Matches(t) {
				continue
			}
			counts[t]++
			sum++
		}
	}
	odds := make(map[int]float64, len(counts))
	for t, c := range counts {
		odds[t] = float64(c) / float64(sum)
	}
	return odds
}

// Odds summarises where a single roll from a position can end up.
type Odds struct {
	Ascend   float64 `json:"ascend"`
	Descend  float64 `json:"descend"`
	Win      float64 `json:"win"`
	Expected float64 `json:"expected"` // expected final position
}

// LandingOdds evaluates every possible total from position against the
// layout.
func (l Layout) LandingOdds(position int, parity Parity, shield bool) Odds {
	var o Odds
	for total, p := range TotalOdds(parity) {
		out := l.Resolve(position, total, shield)
		switch {
		case l.IsWin(out.Final):
			o.Win += p
		case out.Ascended:
			o.Ascend += p
		case out.Hazard && !out.ShieldConsumed:
			o.Descend += p
		}
		o.Expected += p * float64(out.Final)
	}
	return o
}
