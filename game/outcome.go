package game

import (
	"errors"
	"fmt"

	"promptwars/meta"
)

var ErrUnknownCategory = errors.New("unknown prompt category")

// OutcomeTag describes how a round went.
type OutcomeTag int

const (
	OutcomePrecise    OutcomeTag = iota // FavorsA round
	OutcomeInnovative                   // FavorsB round
	OutcomeAdapted                      // unpredictable, A scored more
	OutcomeThrived                      // unpredictable, B scored more
	OutcomeConfused                     // unpredictable, equal deltas
)

func (t OutcomeTag) String() string {
	switch t {
	case OutcomePrecise:
		return "A precise"
	case OutcomeInnovative:
		return "B innovative"
	case OutcomeAdapted:
		return "A adapted"
	case OutcomeThrived:
		return "B thrived"
	case OutcomeConfused:
		return "tie/both confused"
	default:
		return fmt.Sprintf("outcome(%d)", int(t))
	}
}

// Outcome is the resolved result of one round, before clamping.
type Outcome struct {
	Category Category
	DeltaA   int
	DeltaB   int
	Tag      OutcomeTag
}

// Resolve draws the score deltas for a prompt of the given category.
func Resolve(category Category, r Random) (Outcome, error) {
	o := Outcome{Category: category}
	switch category {
	case FavorsA:
		o.DeltaA = uniform(r, meta.FAVORED_MIN, meta.FAVORED_MAX)
		o.DeltaB = uniform(r, meta.DISFAVORED_MIN, meta.DISFAVORED_MAX)
		o.Tag = OutcomePrecise
	case FavorsB:
		o.DeltaA = uniform(r, meta.DISFAVORED_MIN, meta.DISFAVORED_MAX)
		o.DeltaB = uniform(r, meta.FAVORED_MIN, meta.FAVORED_MAX)
		o.Tag = OutcomeInnovative
	case Unpredictable:
		o.DeltaA = uniform(r, meta.WILD_MIN, meta.WILD_MAX)
		o.DeltaB = uniform(r, meta.WILD_MIN, meta.WILD_MAX)
		o.Tag = Classify(o.DeltaA, o.DeltaB)
	default:
		return Outcome{}, fmt.Errorf("resolve %s: %w", category, ErrUnknownCategory)
	}
	return o, nil
}

// Classify tags an unpredictable round by comparing the two deltas.
func Classify(deltaA, deltaB int) OutcomeTag {
	switch {
	case deltaA > deltaB:
		return OutcomeAdapted
	case deltaB > deltaA:
		return OutcomeThrived
	default:
		return OutcomeConfused
	}
}
