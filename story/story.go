// Package story implements Story Mode: a sequential tour that explains and
// narrates each landmark before moving on to the next.
package story

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/litmap"
)

// Default pauses between tour steps.
const (
	// DefaultReadingPause is how long a landmark stays up when there is no narrator.
	DefaultReadingPause = 8 * time.Second

	// DefaultAdvancePause separates one landmark from the next.
	DefaultAdvancePause = 2 * time.Second
)

// State is the phase of the player.
type State int

const (
	Idle State = iota
	Fetching
	Narrating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Narrating:
		return "narrating"
	default:
		return "unknown"
	}
}

// Event reports the orchestration outcome for one landmark.
type Event struct {
	Index     int
	Total     int
	Landmark  *litmap.Landmark
	Result    *litmap.ConductorResult
	Err       error
	Narration string
}

// Player walks landmarks one at a time: orchestrate, narrate, pause, advance.
// Cancellation is checked after every step that blocks, so nothing is
// reported or advanced once the tour is stopped.
type Player struct {
	Orchestrator litmap.Orchestrator

	// Narrator reads each landmark aloud. When nil the player waits
	// ReadingPause instead.
	Narrator litmap.Narrator

	ReadingPause time.Duration
	AdvancePause time.Duration

	// OnState is called on every state change. Index is -1 when idle.
	OnState func(state State, index int)

	// OnLandmark is called once the orchestration for a landmark finished,
	// before it is narrated.
	OnLandmark func(Event)

	mu     sync.Mutex
	state  State
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

// State returns the current state and landmark index (-1 when idle).
func (p *Player) State() (State, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Idle {
		return Idle, -1
	}
	return p.state, p.index
}

// Play runs the tour until the last landmark is done, Stop is called or ctx
// is cancelled. It returns ctx's error when ctx ended the tour and nil
// otherwise. Returns ECONFLICT if a tour is already playing.
func (p *Player) Play(ctx context.Context, landmarks []*litmap.Landmark) error {
	if len(landmarks) == 0 {
		return nil
	}

	p.mu.Lock()
	if p.state != Idle {
		p.mu.Unlock()
		return litmap.Errorf(litmap.ECONFLICT, "story mode is already playing")
	}
	tourCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.state, p.index = Fetching, 0
	p.cancel, p.done = cancel, done
	p.mu.Unlock()

	defer func() {
		cancel()
		// Back to idle in one step, so a Play started from OnState owns
		// cancel and done alone.
		p.mu.Lock()
		p.state, p.index = Idle, -1
		p.cancel, p.done = nil, nil
		p.mu.Unlock()
		if p.OnState != nil {
			p.OnState(Idle, -1)
		}
		close(done)
	}()

	for i := range landmarks {
		if !p.visit(tourCtx, i, landmarks) {
			break
		}
		if i == len(landmarks)-1 {
			break
		}
		if !sleep(tourCtx, p.advancePause()) {
			break
		}
	}

	return ctx.Err()
}

// visit orchestrates and narrates one landmark. It reports false when the
// tour was cancelled along the way.
func (p *Player) visit(ctx context.Context, i int, landmarks []*litmap.Landmark) bool {
	l := landmarks[i]
	p.setState(Fetching, i)

	result, err := p.Orchestrator.Orchestrate(ctx, &litmap.OrchestrateRequest{
		LandmarkID:  l.ID,
		Era:         l.Era,
		FeatureData: l.FeatureData(),
	})
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		result = nil
	}

	narration := litmap.Narration(l, result)
	if p.OnLandmark != nil {
		p.OnLandmark(Event{
			Index:     i,
			Total:     len(landmarks),
			Landmark:  l,
			Result:    result,
			Err:       err,
			Narration: narration,
		})
	}

	p.setState(Narrating, i)
	if p.Narrator != nil {
		// A failed narration still advances the tour.
		_ = p.Narrator.Speak(ctx, narration)
		return ctx.Err() == nil
	}
	return sleep(ctx, p.readingPause())
}

// Stop ends a playing tour and waits until Play has returned.
// It is a no-op when idle.
func (p *Player) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Player) setState(state State, index int) {
	p.mu.Lock()
	p.state = state
	p.index = index
	p.mu.Unlock()

	if p.OnState != nil {
		p.OnState(state, index)
	}
}

func (p *Player) readingPause() time.Duration {
	if p.ReadingPause > 0 {
		return p.ReadingPause
	}
	return DefaultReadingPause
}

func (p *Player) advancePause() time.Duration {
	if p.AdvancePause > 0 {
		return p.AdvancePause
	}
	return DefaultAdvancePause
}

// sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
