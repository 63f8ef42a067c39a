package engine

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"promptwars/game"
	"promptwars/player"

	"github.com/stretchr/testify/require"
)

// constRandom always draws the same value, clamped into [0, n).
type constRandom int

func (c constRandom) Intn(n int) int {
	return min(int(c), n-1)
}

func newCatalog(t *testing.T) *game.Catalog {
	t.Helper()
	catalog, err := game.LoadCatalog()
	require.NoError(t, err)
	return catalog
}

func TestEngineRun(t *testing.T) {
	t.Run("always favoring A", func(t *testing.T) {
		var out bytes.Buffer
		e := LocalEngine(newCatalog(t), player.NewScripted(1, 1, 1, 1, 1), constRandom(0), &out)

		got, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.AWins, got.Verdict)
		require.Equal(t, 10, e.Session.ScoreA, "Five lowest favored draws of 2")
		require.Equal(t, 0, e.Session.ScoreB, "Disfavored losses should clamp at zero")
		require.True(t, e.Session.Finished())
		require.Contains(t, out.String(), "PROMPT WARS")
		require.Contains(t, out.String(), "ROUND 5 of 5")
		require.NotContains(t, out.String(), "ROUND 6")
		require.Contains(t, out.String(), "Synapse provided a precise, logical response!")
		require.Contains(t, out.String(), "Synapse +2 points")
		require.Contains(t, out.String(), "Cortex -2 points")
		require.Contains(t, out.String(), "Synapse is the winner!")
		require.NotContains(t, out.String(), "\033[2J", "Screen should only clear when asked to")
	})

	t.Run("always favoring B", func(t *testing.T) {
		var out bytes.Buffer
		e := LocalEngine(newCatalog(t), player.NewScripted(2, 2, 2, 2, 2), constRandom(0), &out)

		got, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.BWins, got.Verdict)
		require.Equal(t, 0, e.Session.ScoreA)
		require.Equal(t, 10, e.Session.ScoreB)
		require.Contains(t, out.String(), "Cortex created an innovative, unexpected solution!")
		require.Contains(t, out.String(), "Creativity and adaptability won the day!")
	})

	t.Run("equally confusing every round", func(t *testing.T) {
		var out bytes.Buffer
		e := LocalEngine(newCatalog(t), player.NewScripted(3, 3, 3, 3, 3), constRandom(0), &out)

		got, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Tie, got.Verdict)
		require.Contains(t, out.String(), "Both AIs were equally confused by your prompt!")
		require.Contains(t, out.String(), "It's a tie! Both AIs performed equally well.")
		require.Contains(t, out.String(), "(Unpredictable outcome)")
	})

	t.Run("collecting round metrics", func(t *testing.T) {
		e := LocalEngine(newCatalog(t), player.NewAuto(game.NewRandom(11)), game.NewRandom(12), nil, WithMetrics())

		got, err := e.Run()

		require.NoError(t, err)
		require.Len(t, got.Rounds, 5)
		for i, round := range got.Rounds {
			require.Equal(t, i+1, round.Round)
			require.GreaterOrEqual(t, round.ScoreA, 0)
			require.GreaterOrEqual(t, round.ScoreB, 0)
		}
		require.Equal(t, 5, got.Game.Rounds)
		require.Equal(t, e.Session.ScoreA, got.Game.ScoreA)
		require.Equal(t, e.Session.ScoreB, got.Game.ScoreB)
		require.Equal(t, got.Verdict, got.Game.Verdict)
	})

	t.Run("clearing the screen on terminals", func(t *testing.T) {
		var out bytes.Buffer
		e := LocalEngine(newCatalog(t), player.NewScripted(1, 2, 3, 1, 2), constRandom(1), &out, WithClearScreen(true), WithPace(0))

		_, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 7, strings.Count(out.String(), "\033[H\033[2J"), "Intro, five rounds and the final screen")
	})

	t.Run("running out of scripted choices", func(t *testing.T) {
		e := LocalEngine(newCatalog(t), player.NewScripted(1, 2), constRandom(0), io.Discard)

		_, err := e.Run()

		require.ErrorIs(t, err, player.ErrScriptExhausted)
		require.ErrorContains(t, err, "round 3")
		require.Equal(t, 3, e.Session.Round)
	})

	t.Run("shorter sessions", func(t *testing.T) {
		var out bytes.Buffer
		e := LocalEngine(newCatalog(t), player.NewScripted(1), constRandom(0), &out, WithSession(game.NewSessionWithRounds(1)))

		got, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.AWins, got.Verdict)
		require.Contains(t, out.String(), "After 1 rounds")
	})
}

func TestEngineRunWithConsole(t *testing.T) {
	t.Run("playing a whole game from typed input", func(t *testing.T) {
		input := "\n" + strings.Repeat("maybe\n9\n1\n\n", 5)
		var out bytes.Buffer
		console := player.NewConsole(strings.NewReader(input), &out)
		e := LocalEngine(newCatalog(t), console, game.NewRandom(1), &out, WithPace(0))

		got, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.AWins, got.Verdict, "Favoring A every round cannot lose")
		require.Equal(t, 5, strings.Count(out.String(), "Please enter a valid number."))
		require.Equal(t, 5, strings.Count(out.String(), "Please enter a number between 1 and 3."))
		require.Contains(t, out.String(), "Thank you for playing Prompt Wars!")
	})

	t.Run("input ending mid game", func(t *testing.T) {
		console := player.NewConsole(strings.NewReader("\n2\n\n"), io.Discard)
		e := LocalEngine(newCatalog(t), console, game.NewRandom(1), io.Discard)

		_, err := e.Run()

		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 2, e.Session.Round)
	})
}

func TestEnginePace(t *testing.T) {
	e := LocalEngine(newCatalog(t), player.NewScripted(1), constRandom(0), io.Discard,
		WithSession(game.NewSessionWithRounds(1)), WithPace(time.Millisecond))

	start := time.Now()
	_, err := e.Run()

	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 4*time.Millisecond, "One round sleeps four pace units")
}
