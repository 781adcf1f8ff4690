package mock

import (
	"context"

	"github.com/fwojciec/litmap"
)

var _ litmap.Orchestrator = (*Orchestrator)(nil)

// Orchestrator is a mock implementation of litmap.Orchestrator.
type Orchestrator struct {
	OrchestrateFn func(ctx context.Context, req *litmap.OrchestrateRequest) (*litmap.ConductorResult, error)
}

func (o *Orchestrator) Orchestrate(ctx context.Context, req *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
	return o.OrchestrateFn(ctx, req)
}

var _ litmap.AgentService = (*AgentService)(nil)

// AgentService is a mock implementation of litmap.AgentService.
type AgentService struct {
	LookupLandmarkFn func(ctx context.Context, landmarkID string) (*litmap.ArchivistRecord, error)
	DialectFn        func(ctx context.Context, era string) (*litmap.LinguistRecord, error)
	StyleFn          func(ctx context.Context, era string) (*litmap.StylistRecord, error)
}

func (s *AgentService) LookupLandmark(ctx context.Context, landmarkID string) (*litmap.ArchivistRecord, error) {
	return s.LookupLandmarkFn(ctx, landmarkID)
}

func (s *AgentService) Dialect(ctx context.Context, era string) (*litmap.LinguistRecord, error) {
	return s.DialectFn(ctx, era)
}

func (s *AgentService) Style(ctx context.Context, era string) (*litmap.StylistRecord, error) {
	return s.StyleFn(ctx, era)
}
