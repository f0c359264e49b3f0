package room

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snakes-ladders/internal/config"
	"snakes-ladders/internal/game"
)

// scriptedRand replays fixed values. Once exhausted it returns 0.
type scriptedRand struct {
	vals []int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

// dice scripts the given faces; each face f is produced by Intn(6) = f-1.
func dice(faces ...int) *scriptedRand {
	s := &scriptedRand{}
	for _, f := range faces {
		s.vals = append(s.vals, f-1)
	}
	return s
}

func (s *scriptedRand) thenCard(k game.CardKind) *scriptedRand {
	for i, c := range game.Catalog {
		if c.Kind == k {
			s.vals = append(s.vals, i)
		}
	}
	return s
}

func card(t *testing.T, k game.CardKind) *game.Card {
	t.Helper()
	c, ok := game.CardOf(k)
	require.True(t, ok)
	return &c
}

func newRoom(t *testing.T, players int) *Room {
	t.Helper()
	r := New("ROOM1", config.DefaultRules(), rand.New(rand.NewSource(1)))
	for i := 0; i < players; i++ {
		_, err := r.Join(fmt.Sprintf("c%d", i), fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}
	return r
}

// startedRoom returns an active room on an empty 100-cell track.
func startedRoom(t *testing.T, players int) *Room {
	t.Helper()
	r := newRoom(t, players)
	_, err := r.Start()
	require.NoError(t, err)
	r.layout = game.NewLayout(100)
	r.spawns = map[int]bool{}
	return r
}

func TestJoin(t *testing.T) {
	r := newRoom(t, 0)

	for i := 0; i < 4; i++ {
		res, err := r.Join(fmt.Sprintf("c%d", i), fmt.Sprintf("p%d", i))
		require.NoError(t, err)
		require.Equal(t, i, res.Index)
		require.Equal(t, config.DefaultPlayerColors[i], res.Player.Color)
		require.Zero(t, res.Player.Position)
		require.Nil(t, res.Player.Card)
	}

	_, err := r.Join("c4", "p4")
	require.ErrorIs(t, err, ErrRoomFull)
	require.Equal(t, 4, r.Len())
}

func TestJoinAfterStart(t *testing.T) {
	r := startedRoom(t, 2)
	_, err := r.Join("late", "late")
	require.ErrorIs(t, err, ErrGameAlreadyStarted)

	full := startedRoom(t, 4)
	_, err = full.Join("late", "late")
	require.ErrorIs(t, err, ErrRoomFull, "capacity is checked first")
}

func TestJoinReusesFreedColor(t *testing.T) {
	r := newRoom(t, 3)
	_, err := r.Leave("c1")
	require.NoError(t, err)

	res, err := r.Join("c9", "p9")
	require.NoError(t, err)
	require.Equal(t, config.DefaultPlayerColors[1], res.Player.Color)
	require.Equal(t, 2, res.Index)
}

func TestJoinClosedRoom(t *testing.T) {
	r := newRoom(t, 0)
	require.True(t, r.closeIfEmpty())
	_, err := r.Join("c0", "p0")
	require.ErrorIs(t, err, ErrRoomClosed)
}

func TestLeave(t *testing.T) {
	t.Run("unknown connection", func(t *testing.T) {
		r := newRoom(t, 2)
		_, err := r.Leave("nobody")
		require.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("turn index wraps", func(t *testing.T) {
		r := startedRoom(t, 3)
		r.turnIdx = 2
		res, err := r.Leave("c2")
		require.NoError(t, err)
		require.Equal(t, "p2", res.Player.Name)
		require.Equal(t, 2, res.Remaining)
		require.Equal(t, 0, r.State().TurnIdx)
	})

	t.Run("turn index kept when still valid", func(t *testing.T) {
		r := startedRoom(t, 3)
		r.turnIdx = 1
		_, err := r.Leave("c2")
		require.NoError(t, err)
		s := r.State()
		require.Equal(t, 1, s.TurnIdx)
		require.Equal(t, "c1", s.CurrentPlayerID)
	})

	t.Run("last player", func(t *testing.T) {
		r := newRoom(t, 1)
		res, err := r.Leave("c0")
		require.NoError(t, err)
		require.Zero(t, res.Remaining)
		require.Empty(t, r.State().CurrentPlayerID)
	})
}

func TestStart(t *testing.T) {
	r := newRoom(t, 1)
	_, err := r.Start()
	require.ErrorIs(t, err, ErrNotEnoughPlayers)

	_, err = r.Join("c1", "p1")
	require.NoError(t, err)

	s, err := r.Start()
	require.NoError(t, err)
	require.Equal(t, StatusActive, s.Status)
	require.True(t, s.Started)
	require.Equal(t, 0, s.TurnIdx)
	require.Equal(t, "c0", s.CurrentPlayerID)
	require.Equal(t, 100, s.Layout.Length)
	require.Len(t, s.Layout.Ascend, 10)
	require.Len(t, s.Layout.Descend, 12)
	require.Len(t, s.CardSpawns, 15)

	occupied := s.Layout.Occupied()
	for _, pos := range s.CardSpawns {
		require.False(t, occupied[pos], "spawn %d sits on a link or the ends", pos)
	}

	_, err = r.Start()
	require.ErrorIs(t, err, ErrGameAlreadyStarted)
}

func TestTakeTurnRejections(t *testing.T) {
	r := newRoom(t, 2)
	_, err := r.TakeTurn("c0", false)
	require.ErrorIs(t, err, ErrGameNotActive)

	r = startedRoom(t, 2)
	_, err = r.TakeTurn("ghost", false)
	require.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = r.TakeTurn("c1", false)
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestTakeTurnPlainMove(t *testing.T) {
	r := startedRoom(t, 2)
	r.rng = dice(2, 3)

	res, err := r.TakeTurn("c0", false)
	require.NoError(t, err)
	assert.Equal(t, game.Roll{Die1: 2, Die2: 3, Total: 5}, res.Roll)
	assert.Equal(t, 0, res.OldPosition)
	assert.Equal(t, 5, res.Landing)
	assert.Equal(t, 5, res.NewPosition)
	assert.False(t, res.Ascended)
	assert.False(t, res.Hazard)
	assert.Nil(t, res.CardUsed)
	assert.Nil(t, res.CardGained)
	assert.Equal(t, 1, res.NextTurnIdx)
	assert.Equal(t, "c1", res.NextPlayerID)
	assert.Equal(t, "p1", res.NextPlayerName)
	assert.Equal(t, 5, res.Players[0].Position)
}

func TestTakeTurnAscend(t *testing.T) {
	r := startedRoom(t, 2)
	r.layout.Ascend[7] = 30
	r.rng = dice(3, 4)

	res, err := r.TakeTurn("c0", false)
	require.NoError(t, err)
	require.Equal(t, 7, res.Landing)
	require.Equal(t, 30, res.NewPosition)
	require.True(t, res.Ascended)
}

func TestTakeTurnDescend(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Position = 10
	r.layout.Descend[17] = 4
	r.rng = dice(3, 4)

	res, err := r.TakeTurn("c0", false)
	require.NoError(t, err)
	require.Equal(t, 17, res.Landing)
	require.Equal(t, 4, res.NewPosition)
	require.True(t, res.Hazard)
	require.False(t, res.ShieldAbsorbed)
}

func TestTakeTurnShield(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Position = 10
	r.players[0].Card = card(t, game.SnakeShield)
	r.layout.Descend[17] = 4
	r.rng = dice(3, 4)

	res, err := r.TakeTurn("c0", true)
	require.NoError(t, err)
	require.Equal(t, 17, res.NewPosition)
	require.True(t, res.Hazard)
	require.True(t, res.ShieldAbsorbed)
	require.Equal(t, game.SnakeShield, res.CardUsed.Kind)

	p := r.players[0]
	require.Nil(t, p.Card)
	require.False(t, p.Shield, "shield is spent on the absorbed snake")
}

func TestTakeTurnShieldCarriesOver(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Card = card(t, game.SnakeShield)
	r.rng = dice(1, 1)

	res, err := r.TakeTurn("c0", true)
	require.NoError(t, err)
	require.False(t, res.ShieldAbsorbed)
	require.True(t, r.players[0].Shield)
	require.True(t, res.Players[0].Shield)
}

func TestTakeTurnWin(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Position = 95
	r.rng = dice(4, 4)

	res, err := r.TakeTurn("c0", false)
	require.NoError(t, err)
	require.Equal(t, 100, res.NewPosition)
	require.True(t, res.Finished)
	require.NotNil(t, res.Winner)
	require.Equal(t, "c0", res.Winner.ID)
	require.Equal(t, 0, res.NextTurnIdx)

	s := r.State()
	require.Equal(t, StatusFinished, s.Status)
	require.True(t, s.Finished)
	require.Equal(t, "c0", s.Winner.ID)

	_, err = r.TakeTurn("c0", false)
	require.ErrorIs(t, err, ErrGameNotActive)
	_, err = r.TakeTurn("c1", false)
	require.ErrorIs(t, err, ErrGameNotActive)
}

func TestTakeTurnWinBeatsLinks(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Position = 90
	r.layout.Descend[100] = 3
	r.rng = dice(6, 6)

	res, err := r.TakeTurn("c0", false)
	require.NoError(t, err)
	require.True(t, res.Finished)
	require.False(t, res.Hazard)
}

func TestTakeTurnExtraTurn(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Card = card(t, game.ExtraTurn)
	r.rng = dice(2, 3)

	res, err := r.TakeTurn("c0", true)
	require.NoError(t, err)
	require.True(t, res.ExtraTurn)
	require.Equal(t, game.ExtraTurn, res.CardUsed.Kind)
	require.Equal(t, 0, res.NextTurnIdx)
	require.Equal(t, "c0", res.NextPlayerID)
	require.Nil(t, r.players[0].Card)

	// The bonus turn is an ordinary one.
	r.rng = dice(1, 1)
	res, err = r.TakeTurn("c0", false)
	require.NoError(t, err)
	require.False(t, res.ExtraTurn)
	require.Equal(t, 1, res.NextTurnIdx)
}

func TestTakeTurnExtraTurnWithPickup(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Card = card(t, game.ExtraTurn)
	r.spawns[5] = true
	r.rng = dice(2, 3).thenCard(game.OddDice)

	res, err := r.TakeTurn("c0", true)
	require.NoError(t, err)
	require.True(t, res.ExtraTurn)
	require.Equal(t, game.OddDice, res.CardGained.Kind)
	require.Nil(t, res.CardReplaced, "the extra-turn card was spent, not replaced")
	require.Equal(t, game.OddDice, r.players[0].Card.Kind)
}

func TestTakeTurnExtraTurnOnWin(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Position = 95
	r.players[0].Card = card(t, game.ExtraTurn)
	r.rng = dice(6, 6)

	res, err := r.TakeTurn("c0", true)
	require.NoError(t, err)
	require.True(t, res.Finished)
	require.False(t, res.ExtraTurn)
	require.Nil(t, r.players[0].Card)
}

func TestTakeTurnCardPickup(t *testing.T) {
	tests := []struct {
		name     string
		held     *game.Card
		replaced bool
	}{
		{name: "empty hand"},
		{name: "replaces held card", held: &game.Card{Kind: game.EvenDice}, replaced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := startedRoom(t, 2)
			r.players[0].Card = tt.held
			r.spawns[7] = true
			r.rng = dice(3, 4).thenCard(game.SnakeShield)

			res, err := r.TakeTurn("c0", false)
			require.NoError(t, err)
			require.NotNil(t, res.CardGained)
			require.Equal(t, game.SnakeShield, res.CardGained.Kind)
			if tt.replaced {
				require.NotNil(t, res.CardReplaced)
				require.Equal(t, game.EvenDice, res.CardReplaced.Kind)
			} else {
				require.Nil(t, res.CardReplaced)
			}
			require.Equal(t, game.SnakeShield, r.players[0].Card.Kind)
			require.Equal(t, 1, res.NextTurnIdx)
		})
	}
}

func TestTakeTurnPickupAfterLink(t *testing.T) {
	r := startedRoom(t, 2)
	r.layout.Ascend[7] = 30
	r.spawns[7] = true
	r.spawns[30] = true
	r.rng = dice(3, 4).thenCard(game.EvenDice)

	res, err := r.TakeTurn("c0", false)
	require.NoError(t, err)
	require.Equal(t, 30, res.NewPosition)
	require.NotNil(t, res.CardGained, "pickup is checked on the final cell")
}

func TestTakeTurnParityCards(t *testing.T) {
	tests := []struct {
		kind  game.CardKind
		faces []int
		total int
	}{
		{kind: game.EvenDice, faces: []int{1, 2, 2, 2}, total: 4},
		{kind: game.OddDice, faces: []int{3, 3, 1, 4}, total: 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r := startedRoom(t, 2)
			r.players[0].Card = card(t, tt.kind)
			r.rng = dice(tt.faces...)

			res, err := r.TakeTurn("c0", true)
			require.NoError(t, err)
			require.Equal(t, tt.total, res.Total)
			require.Equal(t, tt.kind, res.CardUsed.Kind)
			require.Nil(t, r.players[0].Card)
		})
	}
}

func TestTakeTurnUseWithoutCard(t *testing.T) {
	r := startedRoom(t, 2)
	r.rng = dice(1, 2)

	res, err := r.TakeTurn("c0", true)
	require.NoError(t, err)
	require.Nil(t, res.CardUsed)
	require.Equal(t, 3, res.Total)
}

func TestTurnOrderWraps(t *testing.T) {
	r := startedRoom(t, 3)
	r.rng = dice(1, 1, 1, 1, 1, 1)

	for i, want := range []int{1, 2, 0} {
		res, err := r.TakeTurn(fmt.Sprintf("c%d", i), false)
		require.NoError(t, err)
		require.Equal(t, want, res.NextTurnIdx)
	}
}

func TestReset(t *testing.T) {
	r := newRoom(t, 2)
	_, err := r.Reset()
	require.ErrorIs(t, err, ErrGameNotActive)

	r = startedRoom(t, 2)
	r.players[0].Position = 95
	r.players[1].Position = 40
	r.players[1].Card = card(t, game.OddDice)
	r.players[1].Shield = true
	r.rng = dice(6, 6)
	_, err = r.TakeTurn("c0", false)
	require.NoError(t, err)

	r.rng = rand.New(rand.NewSource(7))
	s, err := r.Reset()
	require.NoError(t, err)
	require.Equal(t, StatusActive, s.Status)
	require.Nil(t, s.Winner)
	require.Equal(t, 0, s.TurnIdx)
	require.Len(t, s.Layout.Ascend, 10)
	for _, p := range s.Players {
		require.Zero(t, p.Position)
		require.Nil(t, p.Card)
		require.False(t, p.Shield)
	}
}

func TestStateIsACopy(t *testing.T) {
	r := startedRoom(t, 2)
	r.players[0].Card = card(t, game.EvenDice)
	r.layout.Ascend[7] = 30

	s := r.State()
	s.Players[0].Position = 50
	s.Players[0].Card.Kind = game.OddDice
	s.Layout.Ascend[8] = 40

	again := r.State()
	require.Zero(t, again.Players[0].Position)
	require.Equal(t, game.EvenDice, again.Players[0].Card.Kind)
	require.NotContains(t, again.Layout.Ascend, 8)
}

func TestErrorCodes(t *testing.T) {
	wrapped := fmt.Errorf("join: %w", ErrRoomFull)
	require.ErrorIs(t, wrapped, &Error{Code: CodeRoomFull})
	require.NotErrorIs(t, wrapped, ErrRoomClosed)

	code, ok := CodeOf(wrapped)
	require.True(t, ok)
	require.Equal(t, CodeRoomFull, code)

	_, ok = CodeOf(fmt.Errorf("plain"))
	require.False(t, ok)
}
