// Package speech implements litmap.Narrator for the terminal.
//
// TextNarrator prints the narration and holds for the time it would take to
// read it aloud. CommandNarrator hands the text to a text-to-speech program
// such as say or espeak.
package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/fwojciec/litmap"
)

const (
	// WordsPerSecond is the assumed speaking rate of a narrator.
	WordsPerSecond = 2.5

	// MaxReadingTime caps how long a single narration is held on screen.
	MaxReadingTime = 30 * time.Second
)

// ReadingTime estimates how long text takes to narrate.
func ReadingTime(text string) time.Duration {
	words := len(strings.Fields(text))
	d := time.Duration(float64(words) / WordsPerSecond * float64(time.Second))
	return min(d, MaxReadingTime)
}

var _ litmap.Narrator = (*TextNarrator)(nil)

// TextNarrator writes narration to W and waits for its estimated reading
// time.
type TextNarrator struct {
	W io.Writer

	// Pace scales the reading time. Zero means 1.
	Pace float64
}

// NewTextNarrator returns a narrator that writes to w.
func NewTextNarrator(w io.Writer) *TextNarrator {
	return &TextNarrator{W: w}
}

func (n *TextNarrator) Speak(ctx context.Context, text string) error {
	if _, err := fmt.Fprintf(n.W, "\n  %s\n\n", text); err != nil {
		return err
	}

	d := ReadingTime(text)
	if n.Pace > 0 {
		d = time.Duration(float64(d) * n.Pace)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ litmap.Narrator = (*CommandNarrator)(nil)

// CommandNarrator speaks through an external program. The narration is
// passed as the last argument.
type CommandNarrator struct {
	Name string
	Args []string

	// Stdout receives the program's output. Discarded when nil.
	Stdout io.Writer
}

// NewCommandNarrator parses a command line such as "espeak -s 150".
func NewCommandNarrator(command string) (*CommandNarrator, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, litmap.Errorf(litmap.EINVALID, "text-to-speech command required")
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return nil, litmap.Errorf(litmap.EUNAVAILABLE, "text-to-speech command %q not found", fields[0])
	}
	return &CommandNarrator{Name: fields[0], Args: fields[1:]}, nil
}

// Speak runs the program and waits for it to exit. The program is killed
// when ctx is cancelled.
func (n *CommandNarrator) Speak(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	args := append(append([]string{}, n.Args...), text)
	cmd := exec.CommandContext(ctx, n.Name, args...)
	cmd.Stdout = n.Stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", n.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", n.Name, err)
	}
	return nil
}
