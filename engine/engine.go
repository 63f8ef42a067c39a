package engine

import (
	"promptwars/experiments/metrics"
	"promptwars/game"
)

type Result struct {
	Verdict game.Verdict
	Game    metrics.GameMetric
	Rounds  []metrics.RoundMetric
}

type Runner interface {
	// Run plays a game until its last round and reports the verdict
	Run() (Result, error)
}
