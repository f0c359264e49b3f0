package game

// Outcome is the result of moving a token by a dice total.
type Outcome struct {
	Landing        int  `json:"landing"` // cell reached before any link is followed
	Final          int  `json:"final"`
	Ascended       bool `json:"ascended"`
	Hazard         bool `json:"hazard"`         // a descend link fired, absorbed or not
	ShieldConsumed bool `json:"shieldConsumed"` // the hazard was absorbed by a shield
}

// Resolve moves a token from position by total. Precedence is fixed:
// reaching or passing the winning cell wins outright, then ascend links,
// then descend links, then a plain move. A shield absorbs a descend link and
// leaves the token on the landing cell.
func (l Layout) Resolve(position, total int, shield bool) Outcome {
	landing := position + total
	if l.IsWin(landing) {
		return Outcome{Landing: l.Length, Final: l.Length}
	}
	if to, ok := l.Ascend[landing]; ok {
		return Outcome{Landing: landing, Final: to, Ascended: true}
	}
	if to, ok := l.Descend[landing]; ok {
		if shield {
			return Outcome{Landing: landing, Final: landing, Hazard: true, ShieldConsumed: true}
		}
		return Outcome{Landing: landing, Final: to, Hazard: true}
	}
	return Outcome{Landing: landing, Final: landing}
}
