package game

import (
	"maps"
	"slices"
)

// Rand is the random source used by board generation, dice and card draws.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Layout is the board for one game: ascend links (ladders) and descend links
// (snakes) over positions 1..Length. Keys and values of both maps are pairwise
// disjoint and never contain 1 or Length.
type Layout struct {
	Length  int         `json:"length"`
	Ascend  map[int]int `json:"ascend"`
	Descend map[int]int `json:"descend"`
}

func NewLayout(length int) Layout {
	return Layout{
		Length:  length,
		Ascend:  map[int]int{},
		Descend: map[int]int{},
	}
}

// Occupied returns every position already claimed by the layout, including
// the start cell and the winning cell.
func (l Layout) Occupied() map[int]bool {
	used := map[int]bool{1: true, l.Length: true}
	for from, to := range l.Ascend {
		used[from] = true
		used[to] = true
	}
	for from, to := range l.Descend {
		used[from] = true
		used[to] = true
	}
	return used
}

func (l Layout) Clone() Layout {
	return Layout{
		Length:  l.Length,
		Ascend:  maps.Clone(l.Ascend),
		Descend: maps.Clone(l.Descend),
	}
}

// Span is an inclusive range of track positions.
type Span struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (s Span) valid() bool { return s.Min <= s.Max }

func (s Span) pick(rng Rand) int { return s.Min + rng.Intn(s.Max-s.Min+1) }

// clamp narrows the span to [lo, hi].
func (s Span) clamp(lo, hi int) Span {
	return Span{Min: max(s.Min, lo), Max: min(s.Max, hi)}
}

func sortedKeys(set map[int]bool) []int {
	return slices.Sorted(maps.Keys(set))
}
