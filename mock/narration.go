package mock

import (
	"context"

	"github.com/fwojciec/litmap"
)

var _ litmap.Narrator = (*Narrator)(nil)

// Narrator is a mock implementation of litmap.Narrator.
type Narrator struct {
	SpeakFn func(ctx context.Context, text string) error
}

func (n *Narrator) Speak(ctx context.Context, text string) error {
	return n.SpeakFn(ctx, text)
}
