package game

// parityMargin is how many cells of expected progress a dice card must add
// before an automatic player spends it.
const parityMargin = 0.5

// ShouldUseCard is the policy automatic players use to decide whether to play
// their held card this turn.
func ShouldUseCard(l Layout, position int, card Card, shield bool) bool {
	switch card.Kind {
	case ExtraTurn:
		return true
	case SnakeShield:
		return !shield && l.LandingOdds(position, AnyParity, false).Descend > 0
	case EvenDice, OddDice:
		base := l.LandingOdds(position, AnyParity, shield)
		forced := l.LandingOdds(position, card.Kind.Parity(), shield)
		if forced.Win > base.Win {
			return true
		}
		return forced.Expected-base.Expected > parityMargin
	default:
		return false
	}
}
