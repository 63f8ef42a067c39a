package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptwars/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("recording rounds and the final scores", func(t *testing.T) {
		c := NewCollector()
		s := game.NewSessionWithRounds(2)
		c.Start()

		require.NoError(t, s.ApplyDeltas(3, -1))
		c.AddRound(s, game.Outcome{Category: game.FavorsA, DeltaA: 3, DeltaB: -1, Tag: game.OutcomePrecise})
		require.NoError(t, s.AdvanceRound())
		require.NoError(t, s.ApplyDeltas(-3, 2))
		c.AddRound(s, game.Outcome{Category: game.Unpredictable, DeltaA: -3, DeltaB: 2, Tag: game.OutcomeThrived})
		require.NoError(t, s.AdvanceRound())

		gm, rounds := c.Complete(s, game.BWins)

		require.Len(t, rounds, 2)
		require.Equal(t, RoundMetric{Round: 1, Category: game.FavorsA, DeltaA: 3, DeltaB: -1, ScoreA: 3, ScoreB: 0, Tag: game.OutcomePrecise}, rounds[0])
		require.Equal(t, 2, rounds[1].Round)
		require.Equal(t, 0, rounds[1].ScoreA, "Recorded scores are clamped")
		require.Equal(t, 2, gm.Rounds)
		require.Equal(t, game.BWins, gm.Verdict)
		require.False(t, gm.EndTime.Before(gm.StartTime))
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddRound(game.NewSession(), game.Outcome{})

		gm, rounds := c.Complete(game.NewSession(), game.Tie)

		require.Empty(t, rounds)
		require.Zero(t, gm.Rounds)
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	err = w.WriteRoundRecords([]RoundRecord{
		{Game: 1, RoundMetric: RoundMetric{Round: 1, Category: game.Unpredictable, DeltaA: 3, DeltaB: -1, ScoreA: 3, Tag: game.OutcomeAdapted}},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(w.Dir(), "round_records.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Equal(t, "game,round,category,delta_a,delta_b,score_a,score_b,outcome", lines[0])
	require.Equal(t, "1,1,unpredictable,3,-1,3,0,A adapted", lines[1])
}
