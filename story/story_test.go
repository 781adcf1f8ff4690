package story_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/mock"
	"github.com/fwojciec/litmap/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder collects player callbacks.
type recorder struct {
	mu     sync.Mutex
	states []string
	events []story.Event
	spoken []string
}

func (r *recorder) onState(s story.State, i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s.String()+":"+strconv.Itoa(i))
}

func (r *recorder) onLandmark(e story.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func echoOrchestrator(calls *[]string, mu *sync.Mutex) *mock.Orchestrator {
	return &mock.Orchestrator{
		OrchestrateFn: func(_ context.Context, req *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
			mu.Lock()
			*calls = append(*calls, req.LandmarkID+"/"+req.Era)
			mu.Unlock()
			return &litmap.ConductorResult{Synthesis: "About " + req.LandmarkID + "."}, nil
		},
	}
}

func TestPlayer_Play(t *testing.T) {
	t.Parallel()

	t.Run("visits every landmark in order", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var calls []string
		rec := &recorder{}
		narrator := &mock.Narrator{
			SpeakFn: func(_ context.Context, text string) error {
				rec.mu.Lock()
				rec.spoken = append(rec.spoken, text)
				rec.mu.Unlock()
				return nil
			},
		}

		p := &story.Player{
			Orchestrator: echoOrchestrator(&calls, &mu),
			Narrator:     narrator,
			AdvancePause: time.Millisecond,
			OnState:      rec.onState,
			OnLandmark:   rec.onLandmark,
		}

		landmarks := litmap.CuratedLandmarks()[:3]
		require.NoError(t, p.Play(context.Background(), landmarks))

		assert.Equal(t, []string{"jlc-san-francisco/1940s", "jlc-chinatown/1940s", "hr-harlem/1920s"}, calls)
		assert.Equal(t, []string{
			"fetching:0", "narrating:0",
			"fetching:1", "narrating:1",
			"fetching:2", "narrating:2",
			"idle:-1",
		}, rec.states)
		require.Len(t, rec.events, 3)
		assert.Equal(t, 2, rec.events[2].Index)
		assert.Equal(t, 3, rec.events[2].Total)
		require.Len(t, rec.spoken, 3)
		assert.Contains(t, rec.spoken[0], "About jlc-san-francisco.")

		state, index := p.State()
		assert.Equal(t, story.Idle, state)
		assert.Equal(t, -1, index)
	})

	t.Run("continues after orchestration failure", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		p := &story.Player{
			Orchestrator: &mock.Orchestrator{
				OrchestrateFn: func(context.Context, *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
					return nil, errors.New("backend down")
				},
			},
			ReadingPause: time.Millisecond,
			AdvancePause: time.Millisecond,
			OnLandmark:   rec.onLandmark,
		}

		require.NoError(t, p.Play(context.Background(), litmap.CuratedLandmarks()[:2]))

		require.Len(t, rec.events, 2)
		assert.Error(t, rec.events[0].Err)
		assert.Nil(t, rec.events[0].Result)
		assert.Contains(t, rec.events[0].Narration, "Quote:")
	})

	t.Run("advances when narration fails", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var calls []string
		p := &story.Player{
			Orchestrator: echoOrchestrator(&calls, &mu),
			Narrator: &mock.Narrator{
				SpeakFn: func(context.Context, string) error { return errors.New("no voice") },
			},
			AdvancePause: time.Millisecond,
		}

		require.NoError(t, p.Play(context.Background(), litmap.CuratedLandmarks()[:2]))
		assert.Len(t, calls, 2)
	})

	t.Run("empty tour is a no-op", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		p := &story.Player{OnState: rec.onState}

		require.NoError(t, p.Play(context.Background(), nil))
		assert.Empty(t, rec.states)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		rec := &recorder{}
		p := &story.Player{
			Orchestrator: &mock.Orchestrator{
				OrchestrateFn: func(context.Context, *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
					cancel()
					return &litmap.ConductorResult{}, nil
				},
			},
			ReadingPause: time.Hour,
			OnLandmark:   rec.onLandmark,
		}

		err := p.Play(ctx, litmap.CuratedLandmarks())
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, rec.events, "cancelled result must not be reported")
	})
}

func TestPlayer_Stop(t *testing.T) {
	t.Parallel()

	t.Run("stops during narration without advancing", func(t *testing.T) {
		t.Parallel()

		speaking := make(chan struct{})
		var mu sync.Mutex
		var calls []string
		p := &story.Player{
			Orchestrator: echoOrchestrator(&calls, &mu),
			Narrator: &mock.Narrator{
				SpeakFn: func(ctx context.Context, _ string) error {
					close(speaking)
					<-ctx.Done()
					return ctx.Err()
				},
			},
		}

		errCh := make(chan error, 1)
		go func() { errCh <- p.Play(context.Background(), litmap.CuratedLandmarks()) }()

		<-speaking
		state, index := p.State()
		assert.Equal(t, story.Narrating, state)
		assert.Equal(t, 0, index)

		p.Stop()

		require.NoError(t, <-errCh)
		mu.Lock()
		assert.Len(t, calls, 1)
		mu.Unlock()
		state, index = p.State()
		assert.Equal(t, story.Idle, state)
		assert.Equal(t, -1, index)
	})

	t.Run("stop when idle is a no-op", func(t *testing.T) {
		t.Parallel()

		p := &story.Player{}
		p.Stop()
		state, _ := p.State()
		assert.Equal(t, story.Idle, state)
	})

	t.Run("rejects concurrent play", func(t *testing.T) {
		t.Parallel()

		fetching := make(chan struct{})
		p := &story.Player{
			Orchestrator: &mock.Orchestrator{
				OrchestrateFn: func(ctx context.Context, _ *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
					close(fetching)
					<-ctx.Done()
					return nil, ctx.Err()
				},
			},
		}

		errCh := make(chan error, 1)
		go func() { errCh <- p.Play(context.Background(), litmap.CuratedLandmarks()) }()
		<-fetching

		err := p.Play(context.Background(), litmap.CuratedLandmarks())
		assert.Equal(t, litmap.ECONFLICT, litmap.ErrorCode(err))

		p.Stop()
		require.NoError(t, <-errCh)
	})

	t.Run("stops a tour restarted from the idle callback", func(t *testing.T) {
		t.Parallel()

		var orchestrations, idles atomic.Int32
		secondFetching := make(chan struct{})
		secondErr := make(chan error, 1)
		landmarks := litmap.CuratedLandmarks()[:1]

		p := &story.Player{
			ReadingPause: time.Millisecond,
			Orchestrator: &mock.Orchestrator{
				OrchestrateFn: func(ctx context.Context, _ *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
					if orchestrations.Add(1) == 1 {
						return &litmap.ConductorResult{}, nil
					}
					close(secondFetching)
					<-ctx.Done()
					return nil, ctx.Err()
				},
			},
		}
		p.OnState = func(s story.State, _ int) {
			if s != story.Idle || idles.Add(1) != 1 {
				return
			}
			go func() { secondErr <- p.Play(context.Background(), landmarks) }()
			<-secondFetching
		}

		require.NoError(t, p.Play(context.Background(), landmarks))
		state, index := p.State()
		assert.Equal(t, story.Fetching, state)
		assert.Equal(t, 0, index)

		p.Stop()

		require.NoError(t, <-secondErr)
		state, index = p.State()
		assert.Equal(t, story.Idle, state)
		assert.Equal(t, -1, index)
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", story.Idle.String())
	assert.Equal(t, "fetching", story.Fetching.String())
	assert.Equal(t, "narrating", story.Narrating.String())
	assert.Equal(t, "unknown", story.State(42).String())
}
