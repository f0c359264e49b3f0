package room

import "snakes-ladders/internal/game"

// TurnResult describes everything one dice roll changed.
type TurnResult struct {
	PlayerIdx  int    `json:"playerIndex"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`

	game.Roll

	OldPosition    int  `json:"oldPosition"`
	Landing        int  `json:"landing"`
	NewPosition    int  `json:"newPosition"`
	Ascended       bool `json:"climbedLadder"`
	Hazard         bool `json:"hitSnake"`
	ShieldAbsorbed bool `json:"shieldUsed"`

	CardUsed     *game.Card `json:"usedSkill,omitempty"`
	CardGained   *game.Card `json:"gotSkillCard,omitempty"`
	CardReplaced *game.Card `json:"replacedCard,omitempty"`
	ExtraTurn    bool       `json:"extraTurn"`

	Finished bool    `json:"gameFinished"`
	Winner   *Player `json:"winner,omitempty"`

	NextTurnIdx    int    `json:"nextPlayerIndex"`
	NextPlayerID   string `json:"nextPlayerId,omitempty"`
	NextPlayerName string `json:"nextPlayerName,omitempty"`

	Players []Player `json:"players"`
}

// TakeTurn rolls for the player owning connID and applies the result:
// card use, dice, links, card pickup, win check and turn advance, in that
// order.
func (r *Room) TakeTurn(connID string, useCard bool) (TurnResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(connID)
	if idx < 0 {
		return TurnResult{}, ErrPlayerNotFound
	}
	if r.status != StatusActive {
		return TurnResult{}, ErrGameNotActive
	}
	if idx != r.turnIdx {
		return TurnResult{}, ErrNotYourTurn
	}

	p := r.players[idx]
	res := TurnResult{
		PlayerIdx:   idx,
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		OldPosition: p.Position,
	}

	// An extra-turn card stays in hand until the move is done.
	extraTurn := false
	if useCard && p.Card != nil {
		used := *p.Card
		res.CardUsed = &used
		switch used.Kind {
		case game.SnakeShield:
			p.Shield = true
			p.Card = nil
		case game.ExtraTurn:
			extraTurn = true
		default:
			p.Card = nil
		}
	}

	parity := game.AnyParity
	if res.CardUsed != nil {
		parity = res.CardUsed.Kind.Parity()
	}
	res.Roll = game.RollDice(r.rng, parity, r.rules.RerollCap)

	out := r.layout.Resolve(p.Position, res.Total, p.Shield)
	if out.ShieldConsumed {
		p.Shield = false
	}
	p.Position = out.Final
	res.Landing = out.Landing
	res.NewPosition = out.Final
	res.Ascended = out.Ascended
	res.Hazard = out.Hazard
	res.ShieldAbsorbed = out.ShieldConsumed

	if r.spawns[p.Position] {
		gained := game.DrawCard(r.rng)
		res.CardGained = &gained
		if extraTurn {
			// The extra-turn card in hand is being spent, not displaced.
			extraTurn = false
			res.ExtraTurn = true
		} else if p.Card != nil {
			replaced := *p.Card
			res.CardReplaced = &replaced
		}
		p.Card = &gained
	}
	if extraTurn {
		p.Card = nil
		res.ExtraTurn = true
	}

	if r.layout.IsWin(p.Position) {
		r.status = StatusFinished
		w := p.clone()
		r.winner = &w
		res.Finished = true
		res.Winner = &w
		res.ExtraTurn = false
		res.NextTurnIdx = r.turnIdx
		res.Players = r.playersView()
		return res, nil
	}

	if !res.ExtraTurn {
		r.turnIdx = (r.turnIdx + 1) % len(r.players)
	}
	next := r.players[r.turnIdx]
	res.NextTurnIdx = r.turnIdx
	res.NextPlayerID = next.ID
	res.NextPlayerName = next.Name
	res.Players = r.playersView()
	return res, nil
}
