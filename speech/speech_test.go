package speech_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), speech.ReadingTime(""))
	assert.Equal(t, 2*time.Second, speech.ReadingTime("one two three four five"))
	assert.Equal(t, speech.MaxReadingTime, speech.ReadingTime(string(bytes.Repeat([]byte("word "), 500))))
}

func TestTextNarrator_Speak(t *testing.T) {
	t.Parallel()

	t.Run("writes narration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n := &speech.TextNarrator{W: &buf, Pace: 0.001}

		err := n.Speak(context.Background(), "Harlem. Set in the 1920s.")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Harlem. Set in the 1920s.")
	})

	t.Run("returns when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n := speech.NewTextNarrator(&bytes.Buffer{})

		err := n.Speak(ctx, "a fairly long narration that would otherwise take a while")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewCommandNarrator(t *testing.T) {
	t.Parallel()

	t.Run("parses arguments", func(t *testing.T) {
		t.Parallel()

		n, err := speech.NewCommandNarrator("echo -n")
		require.NoError(t, err)
		assert.Equal(t, "echo", n.Name)
		assert.Equal(t, []string{"-n"}, n.Args)
	})

	t.Run("rejects empty command", func(t *testing.T) {
		t.Parallel()

		_, err := speech.NewCommandNarrator("  ")
		assert.Equal(t, litmap.EINVALID, litmap.ErrorCode(err))
	})

	t.Run("rejects missing program", func(t *testing.T) {
		t.Parallel()

		_, err := speech.NewCommandNarrator("no-such-tts-program-xyz")
		assert.Equal(t, litmap.EUNAVAILABLE, litmap.ErrorCode(err))
	})
}

func TestCommandNarrator_Speak(t *testing.T) {
	t.Parallel()

	t.Run("passes text as last argument", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		n := &speech.CommandNarrator{Name: "echo", Stdout: &out}

		require.NoError(t, n.Speak(context.Background(), "Apollo Theater."))
		assert.Equal(t, "Apollo Theater.\n", out.String())
	})

	t.Run("skips blank text", func(t *testing.T) {
		t.Parallel()

		n := &speech.CommandNarrator{Name: "false"}
		assert.NoError(t, n.Speak(context.Background(), "  "))
	})

	t.Run("reports program failure", func(t *testing.T) {
		t.Parallel()

		n := &speech.CommandNarrator{Name: "false"}
		err := n.Speak(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "false")
	})

	t.Run("kills program on cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		n := &speech.CommandNarrator{Name: "sh", Args: []string{"-c", "sleep 5"}}

		start := time.Now()
		err := n.Speak(ctx, "narration")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 4*time.Second)
	})
}
