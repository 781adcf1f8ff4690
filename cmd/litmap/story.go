package main

import (
	"fmt"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/story"
)

// Run executes the story command. The tour ends after the last landmark or
// when the context is cancelled (Ctrl-C).
func (c *StoryCmd) Run(deps *Dependencies) error {
	var filter litmap.LandmarkFilter
	if c.Era != "" {
		filter.Era = &c.Era
	}
	if c.Book != "" {
		filter.Book = &c.Book
	}
	landmarks, err := litmap.AllLandmarks(deps.Ctx, deps.Landmarks, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}
	if len(landmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No landmarks to tour.")
		return nil
	}

	p := newPrinter(deps.Stdout)
	player := &story.Player{
		Orchestrator: deps.Orchestrator,
		AdvancePause: c.Pause,
		OnState: func(state story.State, index int) {
			deps.logger().Debug("story", "state", state, "index", index)
		},
		OnLandmark: func(e story.Event) {
			fmt.Fprintf(deps.Stdout, "\n%s\n", p.dim(fmt.Sprintf("Stop %d of %d", e.Index+1, e.Total)))
			var archivist *litmap.ArchivistRecord
			if e.Result != nil {
				archivist = e.Result.Archivist
			}
			p.landmark(e.Landmark, archivist)
			if e.Err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(e.Err))
			}
		},
	}
	if c.Narrate {
		player.Narrator = deps.Narrator
	}

	fmt.Fprintf(deps.Stdout, "Story mode: %d landmarks\n", len(landmarks))
	if err := player.Play(deps.Ctx, landmarks); err != nil {
		fmt.Fprintln(deps.Stdout, "\nStory mode stopped.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, "\nThe end.")
	return nil
}
