package room

import (
	"maps"
	"slices"
	"sync"
	"time"

	"snakes-ladders/internal/config"
	"snakes-ladders/internal/game"
)

type Status string

const (
	StatusLobby    Status = "lobby"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

type Player struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Color    string     `json:"color"`
	Position int        `json:"position"`
	Card     *game.Card `json:"skillCard"`
	Shield   bool       `json:"activeShield"`
}

func (p *Player) clone() Player {
	c := *p
	if p.Card != nil {
		card := *p.Card
		c.Card = &card
	}
	return c
}

// Room is one game instance. Every exported method holds the room lock for
// its whole duration, so callers never observe a half-applied action.
type Room struct {
	Code      string
	CreatedAt time.Time

	mu      sync.Mutex
	rules   config.Rules
	rng     game.Rand
	players []*Player
	turnIdx int
	status  Status
	layout  game.Layout
	spawns  map[int]bool
	winner  *Player
	closed  bool
}

// New creates an empty room in the lobby. rng is owned by the room from now
// on and only used under its lock.
func New(code string, rules config.Rules, rng game.Rand) *Room {
	return &Room{
		Code:      code,
		CreatedAt: time.Now(),
		rules:     rules,
		rng:       rng,
		status:    StatusLobby,
		layout:    game.NewLayout(rules.TrackLength),
		spawns:    map[int]bool{},
	}
}

type JoinResult struct {
	Player Player `json:"player"`
	Index  int    `json:"playerIndex"`
}

type LeaveResult struct {
	Player    Player `json:"player"`
	Remaining int    `json:"remainingPlayers"`
}

// Snapshot is a read-only copy of the room for broadcasting.
type Snapshot struct {
	Code            string      `json:"roomId"`
	Status          Status      `json:"status"`
	Started         bool        `json:"gameStarted"`
	Finished        bool        `json:"gameFinished"`
	Players         []Player    `json:"players"`
	TurnIdx         int         `json:"currentPlayerIndex"`
	CurrentPlayerID string      `json:"currentPlayerId,omitempty"`
	Winner          *Player     `json:"winner,omitempty"`
	Layout          game.Layout `json:"board"`
	CardSpawns      []int       `json:"skillCardSpots"`
	MaxPlayers      int         `json:"maxPlayers"`
}

// Summary is the short form used by room listings.
type Summary struct {
	Code      string    `json:"roomId"`
	Status    Status    `json:"status"`
	Players   int       `json:"players"`
	CreatedAt time.Time `json:"createdAt"`
}

// Join appends a player to the roster while the room is in the lobby.
func (r *Room) Join(connID, name string) (JoinResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return JoinResult{}, ErrRoomClosed
	}
	if len(r.players) >= r.rules.MaxPlayers {
		return JoinResult{}, ErrRoomFull
	}
	if r.status != StatusLobby {
		return JoinResult{}, ErrGameAlreadyStarted
	}

	p := &Player{
		ID:    connID,
		Name:  name,
		Color: r.nextColor(),
	}
	r.players = append(r.players, p)
	return JoinResult{Player: p.clone(), Index: len(r.players) - 1}, nil
}

// nextColor returns the first palette entry nobody in the roster holds.
func (r *Room) nextColor() string {
	for _, c := range config.DefaultPlayerColors {
		if !slices.ContainsFunc(r.players, func(p *Player) bool { return p.Color == c }) {
			return c
		}
	}
	return config.DefaultPlayerColors[len(r.players)%len(config.DefaultPlayerColors)]
}

// Leave removes the connection's player. The turn index wraps to 0 if it
// would point past the end of the shortened roster.
func (r *Room) Leave(connID string) (LeaveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(connID)
	if idx < 0 {
		return LeaveResult{}, ErrPlayerNotFound
	}
	p := r.players[idx]
	r.players = slices.Delete(r.players, idx, idx+1)
	if r.turnIdx >= len(r.players) {
		r.turnIdx = 0
	}
	return LeaveResult{Player: p.clone(), Remaining: len(r.players)}, nil
}

// Start leaves the lobby with a freshly generated board.
func (r *Room) Start() (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusLobby {
		return Snapshot{}, ErrGameAlreadyStarted
	}
	if len(r.players) < r.rules.MinPlayers {
		return Snapshot{}, ErrNotEnoughPlayers
	}
	r.newBoard()
	r.status = StatusActive
	r.turnIdx = 0
	r.winner = nil
	return r.snapshot(), nil
}

// Reset starts a new game with the same roster on a new board.
func (r *Room) Reset() (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status == StatusLobby {
		return Snapshot{}, ErrGameNotActive
	}
	r.newBoard()
	for _, p := range r.players {
		p.Position = 0
		p.Card = nil
		p.Shield = false
	}
	r.turnIdx = 0
	r.status = StatusActive
	r.winner = nil
	return r.snapshot(), nil
}

func (r *Room) State() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Room) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Summary{
		Code:      r.Code,
		Status:    r.status,
		Players:   len(r.players),
		CreatedAt: r.CreatedAt,
	}
}

func (r *Room) HasPlayer(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOf(connID) >= 0
}

func (r *Room) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// closeIfEmpty marks an empty room as closed so no later Join can land in
// it. Called by the store while the room is being removed.
func (r *Room) closeIfEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.players) > 0 {
		return false
	}
	r.closed = true
	return true
}

func (r *Room) indexOf(connID string) int {
	return slices.IndexFunc(r.players, func(p *Player) bool { return p.ID == connID })
}

func (r *Room) params() game.Params {
	p := game.DefaultParams(r.rules.TrackLength)
	p.AscendLinks = r.rules.AscendLinks
	p.DescendLinks = r.rules.DescendLinks
	p.CardSpawns = r.rules.CardSpawns
	p.MinJump = r.rules.MinJump
	p.MaxJump = r.rules.MaxJump
	p.AttemptCap = r.rules.AttemptCap
	return p
}

func (r *Room) newBoard() {
	p := r.params()
	r.layout = game.GenerateLayout(r.rng, p)
	r.spawns = map[int]bool{}
	for _, pos := range game.GenerateCardSpawns(r.rng, p, r.layout.Occupied()) {
		r.spawns[pos] = true
	}
}

func (r *Room) playersView() []Player {
	out := make([]Player, len(r.players))
	for i, p := range r.players {
		out[i] = p.clone()
	}
	return out
}

func (r *Room) snapshot() Snapshot {
	s := Snapshot{
		Code:       r.Code,
		Status:     r.status,
		Started:    r.status != StatusLobby,
		Finished:   r.status == StatusFinished,
		Players:    r.playersView(),
		TurnIdx:    r.turnIdx,
		Layout:     r.layout.Clone(),
		CardSpawns: slices.Sorted(maps.Keys(r.spawns)),
		MaxPlayers: r.rules.MaxPlayers,
	}
	if r.turnIdx < len(r.players) {
		s.CurrentPlayerID = r.players[r.turnIdx].ID
	}
	if r.winner != nil {
		w := r.winner.clone()
		s.Winner = &w
	}
	return s
}
