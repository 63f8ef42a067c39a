package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"promptwars/experiments/metrics"
	"promptwars/game"
	"promptwars/player"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

type Engine struct {
	Session *game.Session
	Catalog *game.Catalog
	Player  player.Player
	Random  game.Random
	Out     io.Writer
	pace    time.Duration
	clear   bool
	metrics metrics.Collector
}

// WithPace sets the base delay between output lines. Zero disables delays.
func WithPace(pace time.Duration) Option {
	return func(e *Engine) {
		if pace >= 0 {
			e.pace = pace
		}
	}
}

// WithClearScreen clears the terminal before each screen.
func WithClearScreen(clear bool) Option {
	return func(e *Engine) {
		e.clear = clear
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithSession(session *game.Session) Option {
	return func(e *Engine) {
		if session != nil {
			e.Session = session
		}
	}
}

func LocalEngine(catalog *game.Catalog, p player.Player, random game.Random, out io.Writer, options ...Option) *Engine {
	if catalog == nil || p == nil || random == nil {
		panic("engine needs a catalog, a player and a random source")
	}
	if out == nil {
		out = io.Discard
	}
	e := &Engine{ // Default values
		Session: game.NewSession(),
		Catalog: catalog,
		Player:  p,
		Random:  random,
		Out:     out,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the intro, every round, and the final screen.
func (e *Engine) Run() (Result, error) {
	e.metrics.Start()
	log.Debug().Msgf("starting a game of %d rounds", e.Session.MaxRounds)

	e.intro()
	if err := e.Player.Pause(); err != nil {
		return Result{}, fmt.Errorf("intro: %w", err)
	}

	for !e.Session.Finished() {
		if err := e.playRound(); err != nil {
			return Result{}, fmt.Errorf("round %d: %w", e.Session.Round, err)
		}
		if err := e.Session.AdvanceRound(); err != nil {
			return Result{}, err
		}
	}

	verdict, err := e.Session.FinalVerdict()
	if err != nil {
		return Result{}, err
	}
	e.winner(verdict)
	if err := e.Player.Pause(); err != nil && !errors.Is(err, io.EOF) {
		return Result{}, fmt.Errorf("final screen: %w", err)
	}

	gameMetric, roundMetrics := e.metrics.Complete(e.Session, verdict)
	log.Debug().Msgf("game over with %s at %d-%d", verdict, e.Session.ScoreA, e.Session.ScoreB)

	return Result{
		Verdict: verdict,
		Game:    gameMetric,
		Rounds:  roundMetrics,
	}, nil
}

func (e *Engine) playRound() error {
	e.status()
	options := e.Catalog.Options(e.Session.PresentRoundOptions(), e.Random)
	e.showOptions(options)

	choice, err := e.Player.Choose(options)
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(options) {
		return fmt.Errorf("choice %d is out of range", choice+1)
	}

	outcome, err := e.Session.Play(options[choice].Category, e.Random)
	if err != nil {
		return err
	}
	e.metrics.AddRound(e.Session, outcome)
	log.Debug().
		Int("round", e.Session.Round).
		Stringer("category", outcome.Category).
		Int("delta_a", outcome.DeltaA).
		Int("delta_b", outcome.DeltaB).
		Stringer("outcome", outcome.Tag).
		Msg("round resolved")

	e.showOutcome(outcome)
	return e.Player.Pause()
}

func (e *Engine) sleep(units float64) {
	if e.pace > 0 {
		time.Sleep(time.Duration(units * float64(e.pace)))
	}
}
