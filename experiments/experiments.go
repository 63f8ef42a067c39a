package experiments

import (
	"fmt"
	"io"

	"promptwars/engine"
	"promptwars/experiments/metrics"
	"promptwars/game"
	"promptwars/player"

	"github.com/rs/zerolog/log"
)

type SimulationConfig struct {
	Games  int
	Seed   uint64 // game i is seeded with Seed+i
	OutDir string // no reports are written when empty
}

type Summary struct {
	NameA string
	NameB string
	Games int
	AWins int
	BWins int
	Ties  int
	Dir   string // where the reports were written
}

// RunSimulation plays a number of games with a player picking prompts at
// random and tallies the verdicts.
func RunSimulation(config SimulationConfig) (Summary, error) {
	if config.Games < 1 {
		return Summary{}, fmt.Errorf("need at least one game, got %d", config.Games)
	}
	catalog, err := game.LoadCatalog()
	if err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("starting simulation of %d games...", config.Games)

	summary := Summary{
		NameA: catalog.Personas.A.Name,
		NameB: catalog.Personas.B.Name,
		Games: config.Games,
	}
	gameRecords := []metrics.GameRecord{}
	roundRecords := []metrics.RoundRecord{}
	for i := 0; i < config.Games; i++ {
		seed := config.Seed + uint64(i)
		random := game.NewRandom(seed)
		e := engine.LocalEngine(catalog, player.NewAuto(random), random, io.Discard, engine.WithMetrics())

		result, err := e.Run()
		if err != nil {
			return Summary{}, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch result.Verdict {
		case game.AWins:
			summary.AWins++
		case game.BWins:
			summary.BWins++
		default:
			summary.Ties++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Seed:       seed,
			GameMetric: result.Game,
		})
		for _, rm := range result.Rounds {
			roundRecords = append(roundRecords, metrics.RoundRecord{
				Game:        i + 1,
				RoundMetric: rm,
			})
		}

		log.Debug().Msgf("completed game %d of %d with verdict: %s", i+1, config.Games, result.Verdict)
	}

	log.Info().Msgf("completed simulation: A=%d B=%d ties=%d", summary.AWins, summary.BWins, summary.Ties)

	if config.OutDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(config.OutDir, "simulation")
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create simulation writer: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteRoundRecords(roundRecords)
	if err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored round records")

	summary.Dir = writer.Dir()
	return summary, nil
}
