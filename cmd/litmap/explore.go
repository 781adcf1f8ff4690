package main

import (
	"fmt"

	"github.com/fwojciec/litmap"
	"golang.org/x/sync/errgroup"
)

// Run executes the explore command. A failed orchestration still shows the
// landmark itself.
func (c *ExploreCmd) Run(deps *Dependencies) error {
	l, err := litmap.FindLandmark(deps.Ctx, deps.Landmarks, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'litmap landmarks' to see available landmarks.\n", litmap.ErrorMessage(err))
		return err
	}

	result, err := deps.Orchestrator.Orchestrate(deps.Ctx, &litmap.OrchestrateRequest{
		LandmarkID:  l.ID,
		Era:         l.Era,
		FeatureData: l.FeatureData(),
	})

	p := newPrinter(deps.Stdout)
	if err != nil {
		p.landmark(l, nil)
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	p.landmark(l, result.Archivist)
	p.conductor(result, c.Thoughts)
	return nil
}

// Run executes the agents command. The three agents are called in parallel;
// an agent that fails is reported as unavailable.
func (c *AgentsCmd) Run(deps *Dependencies) error {
	l, err := litmap.FindLandmark(deps.Ctx, deps.Landmarks, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'litmap landmarks' to see available landmarks.\n", litmap.ErrorMessage(err))
		return err
	}

	var (
		archivist *litmap.ArchivistRecord
		linguist  *litmap.LinguistRecord
		stylist   *litmap.StylistRecord
	)
	var archErr, lingErr, styleErr error

	var g errgroup.Group
	g.Go(func() error {
		archivist, archErr = deps.Agents.LookupLandmark(deps.Ctx, l.ID)
		return nil
	})
	g.Go(func() error {
		linguist, lingErr = deps.Agents.Dialect(deps.Ctx, l.Era)
		return nil
	})
	g.Go(func() error {
		stylist, styleErr = deps.Agents.Style(deps.Ctx, l.Era)
		return nil
	})
	_ = g.Wait()

	p := newPrinter(deps.Stdout)
	p.landmark(l, archivist)
	if linguist != nil {
		p.linguist(linguist)
	}
	if stylist != nil {
		p.stylist(stylist)
	}

	for _, e := range []struct {
		agent string
		err   error
	}{
		{litmap.AgentArchivist, archErr},
		{litmap.AgentLinguist, lingErr},
		{litmap.AgentStylist, styleErr},
	} {
		if e.err != nil {
			fmt.Fprintf(deps.Stderr, "%s unavailable: %s\n", e.agent, litmap.ErrorMessage(e.err))
		}
	}
	return nil
}
