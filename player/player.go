package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"promptwars/game"

	"github.com/rs/zerolog/log"
)

var ErrScriptExhausted = errors.New("no scripted choices left")

// Player answers a game: it picks one of the offered prompts and
// acknowledges the pauses between screens.
type Player interface {
	// Choose returns the index of the chosen option.
	Choose(options [3]game.Option) (int, error)
	Pause() error
}

// Console reads choices typed by a person. Invalid input is reported and
// asked again; only a failing or exhausted reader ends the loop.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (c *Console) Choose(options [3]game.Option) (int, error) {
	for {
		fmt.Fprintf(c.out, "\nEnter your choice (1-%d): ", len(options))
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Debug().Int("length", len(line)).Msg("rejected non-numeric choice")
			fmt.Fprintln(c.out, "Please enter a valid number.")
			continue
		}
		if choice < 1 || choice > len(options) {
			log.Debug().Int("choice", choice).Msg("rejected out of range choice")
			fmt.Fprintf(c.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return choice - 1, nil
	}
}

// Pause waits for the next line, whatever it holds.
func (c *Console) Pause() error {
	_, err := c.readLine()
	return err
}

// readLine returns the next line without its line ending, whatever its length.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Auto picks uniformly among the options and never waits.
type Auto struct {
	random game.Random
}

func NewAuto(random game.Random) *Auto {
	return &Auto{random: random}
}

func (a *Auto) Choose(options [3]game.Option) (int, error) {
	return a.random.Intn(len(options)), nil
}

func (a *Auto) Pause() error { return nil }

// Scripted replays a fixed list of 1-based choices.
type Scripted struct {
	choices []int
	next    int
}

func NewScripted(choices ...int) *Scripted {
	return &Scripted{choices: choices}
}

func (s *Scripted) Choose(options [3]game.Option) (int, error) {
	if s.next >= len(s.choices) {
		return 0, ErrScriptExhausted
	}
	choice := s.choices[s.next]
	s.next++
	if choice < 1 || choice > len(options) {
		return 0, fmt.Errorf("scripted choice %d is not between 1 and %d", choice, len(options))
	}
	return choice - 1, nil
}

func (s *Scripted) Pause() error { return nil }
