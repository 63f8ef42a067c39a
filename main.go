package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"promptwars/engine"
	"promptwars/experiments"
	"promptwars/game"
	"promptwars/meta"
	"promptwars/player"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	level := flag.String("log-level", "warn", "Log level written to stderr")
	pace := flag.Duration("pace", meta.PACE, "Base delay between output lines")
	games := flag.Int("simulate", 0, "Number of games to play automatically instead of an interactive one")
	out := flag.String("out", "", "Directory for simulation reports")
	flag.Parse()

	setupLogger(*level)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", *seed).Msg("seeded random source")

	if *games > 0 {
		simulate(*games, *seed, *out)
		return
	}
	play(*seed, *pace)
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		NoColor:    !isTerminal(os.Stderr),
		TimeFormat: time.TimeOnly,
	})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Err(err).Msg("unknown log level, using warn")
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// play runs one interactive game on the standard streams.
func play(seed uint64, pace time.Duration) {
	catalog, err := game.LoadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load prompts")
	}

	e := engine.LocalEngine(
		catalog,
		player.NewConsole(os.Stdin, os.Stdout),
		game.NewRandom(seed),
		os.Stdout,
		engine.WithPace(pace),
		engine.WithClearScreen(isTerminal(os.Stdout)),
	)
	if _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func simulate(games int, seed uint64, out string) {
	summary, err := experiments.RunSimulation(experiments.SimulationConfig{
		Games:  games,
		Seed:   seed,
		OutDir: out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	fmt.Printf("Games: %d\n", summary.Games)
	fmt.Printf("%s wins: %d\n", summary.NameA, summary.AWins)
	fmt.Printf("%s wins: %d\n", summary.NameB, summary.BWins)
	fmt.Printf("Ties: %d\n", summary.Ties)
	if summary.Dir != "" {
		fmt.Printf("Reports: %s\n", summary.Dir)
	}
}
