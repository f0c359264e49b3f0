package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snakes-ladders/internal/config"
	"snakes-ladders/internal/game"
	"snakes-ladders/internal/logging"
	"snakes-ladders/internal/random"
	"snakes-ladders/internal/room"
)

type options struct {
	players  int
	seed     uint64
	maxTurns int
	quiet    bool
}

func main() {
	var opts options
	flag.IntVar(&opts.players, "players", 2, "number of automatic players")
	flag.Uint64Var(&opts.seed, "seed", 0, "game seed (0 falls back to GAME_SEED, then a random one)")
	flag.IntVar(&opts.maxTurns, "max-turns", 1000, "stop after this many turns")
	flag.BoolVar(&opts.quiet, "quiet", false, "print only the final state")
	flag.Parse()

	if err := logging.Setup("info", true); err != nil {
		log.Fatal().Err(err).Msg("set up logging")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if opts.seed == 0 {
		opts.seed = uint64(cfg.Seed)
	}
	if opts.seed == 0 {
		if opts.seed, err = random.NewSeed(); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}
	if err := run(os.Stdout, cfg.Rules, opts); err != nil {
		log.Fatal().Err(err).Uint64("seed", opts.seed).Msg("simulate")
	}
}

var errTurnLimit = errors.New("turn limit reached without a winner")

// run plays one game between automatic players and writes a turn log
// followed by the final snapshot as JSON.
func run(w io.Writer, rules config.Rules, opts options) error {
	if opts.players > rules.MaxPlayers {
		return fmt.Errorf("at most %d players, got %d", rules.MaxPlayers, opts.players)
	}

	r := room.New("SIM", rules, rand.New(rand.NewSource(opts.seed)))
	for i := range opts.players {
		if _, err := r.Join(fmt.Sprintf("bot-%d", i+1), fmt.Sprintf("Bot %d", i+1)); err != nil {
			return err
		}
	}
	s, err := r.Start()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "seed %d, %d ascend and %d descend links, card spawns %v\n",
		opts.seed, len(s.Layout.Ascend), len(s.Layout.Descend), s.CardSpawns)

	finished := false
	for turn := 1; turn <= opts.maxTurns && !finished; turn++ {
		p := s.Players[s.TurnIdx]
		useCard := p.Card != nil && game.ShouldUseCard(s.Layout, p.Position, *p.Card, p.Shield)

		res, err := r.TakeTurn(p.ID, useCard)
		if err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Fprintln(w, describe(turn, res))
		}
		finished = res.Finished
		s = r.State()
	}

	js, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(js))
	if !finished {
		return errTurnLimit
	}
	return nil
}

func describe(turn int, res room.TurnResult) string {
	line := fmt.Sprintf("%4d %-6s rolls %d+%d=%-2d %3d -> %3d",
		turn, res.PlayerName, res.Die1, res.Die2, res.Total, res.OldPosition, res.NewPosition)
	if res.CardUsed != nil {
		line += " played " + res.CardUsed.Name
	}
	switch {
	case res.Ascended:
		line += fmt.Sprintf(" (ladder from %d)", res.Landing)
	case res.ShieldAbsorbed:
		line += " (shield blocked a snake)"
	case res.Hazard:
		line += fmt.Sprintf(" (snake at %d)", res.Landing)
	}
	if res.CardGained != nil {
		line += " picked up " + res.CardGained.Name
	}
	if res.ExtraTurn {
		line += " and goes again"
	}
	if res.Finished {
		line += " and wins!"
	}
	return line
}
