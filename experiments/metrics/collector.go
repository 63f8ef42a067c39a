package metrics

import (
	"time"

	"promptwars/game"
)

type RoundMetric struct {
	Round    int
	Category game.Category
	DeltaA   int
	DeltaB   int
	ScoreA   int // after clamping
	ScoreB   int // after clamping
	Tag      game.OutcomeTag
}

type GameMetric struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Rounds    int
	ScoreA    int
	ScoreB    int
	Verdict   game.Verdict
}

type Collector interface {
	Start()
	AddRound(session *game.Session, outcome game.Outcome)
	Complete(session *game.Session, verdict game.Verdict) (GameMetric, []RoundMetric)
}

type collector struct {
	startTime time.Time
	rounds    []RoundMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.rounds = nil
}

func (m *collector) AddRound(session *game.Session, outcome game.Outcome) {
	m.rounds = append(m.rounds, RoundMetric{
		Round:    session.Round,
		Category: outcome.Category,
		DeltaA:   outcome.DeltaA,
		DeltaB:   outcome.DeltaB,
		ScoreA:   session.ScoreA,
		ScoreB:   session.ScoreB,
		Tag:      outcome.Tag,
	})
}

func (m *collector) Complete(session *game.Session, verdict game.Verdict) (GameMetric, []RoundMetric) {
	end := time.Now()
	return GameMetric{
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
		Rounds:    len(m.rounds),
		ScoreA:    session.ScoreA,
		ScoreB:    session.ScoreB,
		Verdict:   verdict,
	}, m.rounds
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                               {}
func (m *dummyCollector) AddRound(*game.Session, game.Outcome) {}
func (m *dummyCollector) Complete(*game.Session, game.Verdict) (GameMetric, []RoundMetric) {
	return GameMetric{}, nil
}
