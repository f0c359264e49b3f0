package game

const (
	DefaultTrackLength  = 100
	DefaultAscendLinks  = 10
	DefaultDescendLinks = 12
	DefaultCardSpawns   = 15
	DefaultMinJump      = 5
	DefaultMaxJump      = 50

	// DefaultAttemptCap bounds every rejection-sampling loop so that
	// over-constrained parameters still terminate.
	DefaultAttemptCap = 1000
)

// Params controls layout and card spawn generation.
type Params struct {
	TrackLength  int
	AscendLinks  int
	DescendLinks int
	CardSpawns   int

	AscendStart  Span
	DescendStart Span
	SpawnRange   Span

	MinJump    int
	MaxJump    int
	AttemptCap int
}

// DefaultParams returns the standard counts and sampling ranges scaled to the
// given track length.
func DefaultParams(trackLength int) Params {
	return Params{
		TrackLength:  trackLength,
		AscendLinks:  DefaultAscendLinks,
		DescendLinks: DefaultDescendLinks,
		CardSpawns:   DefaultCardSpawns,
		AscendStart:  Span{Min: 2, Max: trackLength - 15},
		DescendStart: Span{Min: 15, Max: trackLength - 2},
		SpawnRange:   Span{Min: 10, Max: trackLength - 10},
		MinJump:      DefaultMinJump,
		MaxJump:      DefaultMaxJump,
		AttemptCap:   DefaultAttemptCap,
	}
}

// minJump never allows a link shorter than two cells.
func (p Params) minJump() int { return max(p.MinJump, 2) }

// GenerateLayout places ascend links first, then descend links, by rejection
// sampling. Each kind gets AttemptCap tries; when the cap runs out the layout
// holds fewer links than requested.
func GenerateLayout(rng Rand, p Params) Layout {
	n := p.TrackLength
	l := NewLayout(n)
	used := l.Occupied()
	minJump := p.minJump()

	starts := p.AscendStart.clamp(2, n-1)
	for created, attempts := 0, 0; created < p.AscendLinks && attempts < p.AttemptCap && starts.valid(); attempts++ {
		from := starts.pick(rng)
		if used[from] {
			continue
		}
		maxJump := min(p.MaxJump, n-from-1)
		if maxJump < minJump {
			continue
		}
		to := from + minJump + rng.Intn(maxJump-minJump+1)
		if used[to] || to >= n {
			continue
		}
		l.Ascend[from] = to
		used[from], used[to] = true, true
		created++
	}

	starts = p.DescendStart.clamp(2, n-1)
	for created, attempts := 0, 0; created < p.DescendLinks && attempts < p.AttemptCap && starts.valid(); attempts++ {
		from := starts.pick(rng)
		if used[from] {
			continue
		}
		maxJump := min(p.MaxJump, from-2)
		if maxJump < minJump {
			continue
		}
		to := from - minJump - rng.Intn(maxJump-minJump+1)
		if used[to] || to < 2 {
			continue
		}
		l.Descend[from] = to
		used[from], used[to] = true, true
		created++
	}

	return l
}

// GenerateCardSpawns picks up to p.CardSpawns distinct cells inside
// p.SpawnRange that are not in occupied. The start and winning cells are
// always excluded. The result is sorted ascending.
func GenerateCardSpawns(rng Rand, p Params, occupied map[int]bool) []int {
	n := p.TrackLength
	used := map[int]bool{1: true, n: true}
	for pos := range occupied {
		used[pos] = true
	}

	spots := map[int]bool{}
	span := p.SpawnRange.clamp(2, n-1)
	for attempts := 0; len(spots) < p.CardSpawns && attempts < p.AttemptCap && span.valid(); attempts++ {
		pos := span.pick(rng)
		if used[pos] {
			continue
		}
		spots[pos] = true
		used[pos] = true
	}
	return sortedKeys(spots)
}
