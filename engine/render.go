package engine

import (
	"fmt"
	"strings"

	"promptwars/game"
)

const width = 60

func (e *Engine) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

func (e *Engine) clearScreen() {
	if e.clear {
		e.printf("\033[H\033[2J")
	}
}

func (e *Engine) banner(title string) {
	pad := max(0, (width-len(title))/2)
	e.printf("\n%s\n", strings.Repeat("=", width))
	e.printf("%s%s\n", strings.Repeat(" ", pad), title)
	e.printf("%s\n", strings.Repeat("=", width))
}

func (e *Engine) rule() {
	e.printf("\n%s\n", strings.Repeat("-", width))
}

func (e *Engine) intro() {
	a, b := e.Catalog.Personas.A, e.Catalog.Personas.B
	e.clearScreen()
	e.banner("PROMPT WARS")
	e.printf("\nWelcome, Prompt Engineer!\n")
	e.printf("\nIn this battle of artificial minds, you'll write prompts\n")
	e.printf("that will influence two competing AI assistants:\n")
	e.printf("\n  * %s: %s\n", a.Name, a.Description)
	e.printf("  * %s: %s\n", b.Name, b.Description)
	e.printf("\nYour prompts will help one AI while confusing the other.\n")
	e.printf("After %d rounds, the AI with the highest score wins!\n", e.Session.MaxRounds)
	e.printf("\nPress Enter to begin your prompt engineering challenge...\n")
}

func (e *Engine) status() {
	e.clearScreen()
	e.banner(fmt.Sprintf("ROUND %d of %d", e.Session.Round, e.Session.MaxRounds))
	e.printf("\n%s's Score: %d\n", e.Catalog.Personas.A.Name, e.Session.ScoreA)
	e.printf("%s's Score: %d\n", e.Catalog.Personas.B.Name, e.Session.ScoreB)
	e.rule()
}

func (e *Engine) hint(category game.Category) string {
	switch category {
	case game.FavorsA:
		return "Likely to favor " + e.Catalog.Personas.A.Name
	case game.FavorsB:
		return "Likely to favor " + e.Catalog.Personas.B.Name
	default:
		return "Unpredictable outcome"
	}
}

func (e *Engine) showOptions(options [3]game.Option) {
	e.printf("\nChoose a prompt to send to the AIs:\n")
	for i, option := range options {
		e.printf("\n%d. %s\n", i+1, option.Text)
		e.printf("   (%s)\n", e.hint(option.Category))
	}
}

func (e *Engine) message(tag game.OutcomeTag) string {
	a, b := e.Catalog.Personas.A.Name, e.Catalog.Personas.B.Name
	switch tag {
	case game.OutcomePrecise:
		return a + " provided a precise, logical response!"
	case game.OutcomeInnovative:
		return b + " created an innovative, unexpected solution!"
	case game.OutcomeAdapted:
		return a + " managed to make sense of the confusing prompt!"
	case game.OutcomeThrived:
		return b + " thrived with the creative challenge!"
	default:
		return "Both AIs were equally confused by your prompt!"
	}
}

func (e *Engine) showOutcome(outcome game.Outcome) {
	a, b := e.Catalog.Personas.A.Name, e.Catalog.Personas.B.Name
	e.printf("\nSending prompt to AIs...\n")
	e.sleep(1.5)
	e.printf("\n%s is processing...\n", a)
	e.sleep(1)
	e.printf("%s is processing...\n", b)
	e.sleep(1.5)

	e.rule()
	e.printf("%s\n", e.message(outcome.Tag))
	e.printf("\n%s %+d points\n", a, outcome.DeltaA)
	e.printf("%s %+d points\n", b, outcome.DeltaB)
	e.printf("\nPress Enter to continue...\n")
}

func (e *Engine) winner(verdict game.Verdict) {
	a, b := e.Catalog.Personas.A.Name, e.Catalog.Personas.B.Name
	e.clearScreen()
	e.banner("GAME OVER!")
	e.printf("\nFinal Scores:\n")
	e.printf("%s: %d points\n", a, e.Session.ScoreA)
	e.printf("%s: %d points\n", b, e.Session.ScoreB)

	switch verdict {
	case game.AWins:
		e.printf("\n%s is the winner!\n", a)
		e.printf("\nLogic and precision prevailed in this battle of artificial minds.\n")
	case game.BWins:
		e.printf("\n%s is the winner!\n", b)
		e.printf("\nCreativity and adaptability won the day!\n")
	default:
		e.printf("\nIt's a tie! Both AIs performed equally well.\n")
		e.printf("\nA perfect balance of logic and creativity.\n")
	}

	e.printf("\nThank you for playing Prompt Wars!\n")
	e.printf("\nPress Enter to exit...\n")
}
