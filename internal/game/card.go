package game

// CardKind identifies a modifier card.
type CardKind string

const (
	EvenDice    CardKind = "even_dice"
	OddDice     CardKind = "odd_dice"
	ExtraTurn   CardKind = "extra_turn"
	SnakeShield CardKind = "snake_shield"
)

// Parity returns the dice constraint a card forces when played.
func (k CardKind) Parity() Parity {
	switch k {
	case EvenDice:
		return EvenParity
	case OddDice:
		return OddParity
	default:
		return AnyParity
	}
}

// Card is an immutable catalog entry. Players hold copies by value.
type Card struct {
	Kind        CardKind `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
}

// Catalog is the fixed set of cards a pickup cell can award.
var Catalog = []Card{
	{Kind: EvenDice, Name: "Even Dice", Description: "Guarantees an even roll (2, 4, 6, 8, 10, 12)", Icon: "🎲"},
	{Kind: OddDice, Name: "Odd Dice", Description: "Guarantees an odd roll (3, 5, 7, 9, 11)", Icon: "🎯"},
	{Kind: ExtraTurn, Name: "Extra Turn", Description: "Play one more turn", Icon: "⭐"},
	{Kind: SnakeShield, Name: "Snake Shield", Description: "Blocks one snake", Icon: "🛡️"},
}

// CardOf looks up a catalog entry by kind.
func CardOf(kind CardKind) (Card, bool) {
	for _, c := range Catalog {
		if c.Kind == kind {
			return c, true
		}
	}
	return Card{}, false
}

// DrawCard picks a catalog entry uniformly at random.
func DrawCard(rng Rand) Card {
	return Catalog[rng.Intn(len(Catalog))]
}
