package game

import (
	"errors"
	"fmt"

	"promptwars/meta"
)

var (
	ErrSessionFinished   = errors.New("game is over - no rounds left")
	ErrRoundResolved     = errors.New("round already resolved")
	ErrSessionInProgress = errors.New("game is still in progress")
)

type Phase int

const (
	AwaitingChoice Phase = iota
	Resolved
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingChoice:
		return "awaiting_choice"
	case Resolved:
		return "resolved"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Verdict is the comparison of the final scores.
type Verdict int

const (
	AWins Verdict = iota
	BWins
	Tie
)

func (v Verdict) String() string {
	switch v {
	case AWins:
		return "A_WINS"
	case BWins:
		return "B_WINS"
	case Tie:
		return "TIE"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Session holds the running state of one game. Round stays within
// [1, MaxRounds+1] and both scores never drop below zero.
type Session struct {
	ScoreA    int
	ScoreB    int
	Round     int
	MaxRounds int
	Phase     Phase
}

// NewSession starts a game with the standard number of rounds.
func NewSession() *Session {
	return NewSessionWithRounds(meta.MAX_ROUNDS)
}

// NewSessionWithRounds starts a game lasting maxRounds rounds.
func NewSessionWithRounds(maxRounds int) *Session {
	if maxRounds < 1 {
		panic("need at least one round")
	}
	return &Session{
		Round:     1,
		MaxRounds: maxRounds,
		Phase:     AwaitingChoice,
	}
}

// PresentRoundOptions returns the categories offered every round, in display order.
func (s *Session) PresentRoundOptions() [3]Category {
	return Categories
}

// ApplyDeltas adds the deltas to the scores, then floors each score at zero.
func (s *Session) ApplyDeltas(deltaA, deltaB int) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.ScoreA = max(0, s.ScoreA+deltaA)
	s.ScoreB = max(0, s.ScoreB+deltaB)
	s.Phase = Resolved
	return nil
}

// Play resolves a prompt of the given category and applies its deltas.
// A rejected round draws nothing from r.
func (s *Session) Play(category Category, r Random) (Outcome, error) {
	if err := s.ready(); err != nil {
		return Outcome{}, err
	}
	outcome, err := Resolve(category, r)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.ApplyDeltas(outcome.DeltaA, outcome.DeltaB); err != nil {
		return Outcome{}, err
	}
	return outcome, nil
}

// ready reports whether the current round still accepts a result.
func (s *Session) ready() error {
	switch s.Phase {
	case Finished:
		return ErrSessionFinished
	case Resolved:
		return fmt.Errorf("round %d: %w", s.Round, ErrRoundResolved)
	}
	return nil
}

// AdvanceRound moves to the next round, finishing the game once the last
// round has been played. A finished session is left untouched.
func (s *Session) AdvanceRound() error {
	if s.Phase == Finished {
		return ErrSessionFinished
	}
	s.Round++
	if s.Round > s.MaxRounds {
		s.Phase = Finished
	} else {
		s.Phase = AwaitingChoice
	}
	return nil
}

func (s *Session) Finished() bool {
	return s.Phase == Finished
}

// FinalVerdict compares the scores of a finished session.
func (s *Session) FinalVerdict() (Verdict, error) {
	if s.Phase != Finished {
		return Tie, ErrSessionInProgress
	}
	switch {
	case s.ScoreA > s.ScoreB:
		return AWins, nil
	case s.ScoreB > s.ScoreA:
		return BWins, nil
	default:
		return Tie, nil
	}
}
