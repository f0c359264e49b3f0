package game

// Parity is an optional constraint on the sum of a two-dice roll.
type Parity int

const (
	AnyParity Parity = iota
	EvenParity
	OddParity
)

func (p Parity) Matches(total int) bool {
	switch p {
	case EvenParity:
		return total%2 == 0
	case OddParity:
		return total%2 != 0
	default:
		return true
	}
}

func (p Parity) String() string {
	switch p {
	case EvenParity:
		return "even"
	case OddParity:
		return "odd"
	default:
		return "any"
	}
}

// DefaultRerollCap bounds parity re-rolls.
const DefaultRerollCap = 1000

// Roll is the outcome of throwing two six-sided dice.
type Roll struct {
	Die1  int `json:"dice1"`
	Die2  int `json:"dice2"`
	Total int `json:"diceValue"`
}

// RollDice throws two d6. With a parity constraint the pair is re-rolled
// until the sum matches, at most rerollCap times. If the cap is exhausted
// the second die is moved by one pip, which always fixes the parity and
// keeps both faces in [1,6].
func RollDice(rng Rand, parity Parity, rerollCap int) Roll {
	r := rollPair(rng)
	for i := 0; !parity.Matches(r.Total) && i < rerollCap; i++ {
		r = rollPair(rng)
	}
	if !parity.Matches(r.Total) {
		if r.Die2 == 6 {
			r.Die2--
		} else {
			r.Die2++
		}
		r.Total = r.Die1 + r.Die2
	}
	return r
}

func rollPair(rng Rand) Roll {
	d1, d2 := rollDie(rng, 6), rollDie(rng, 6)
	return Roll{Die1: d1, Die2: d2, Total: d1 + d2}
}

func rollDie(rng Rand, sides int) int {
	return rng.Intn(sides) + 1
}
