// Package slog provides log/slog decorators for litmap backend services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/litmap"
)

// Ensure LoggingOrchestrator implements litmap.Orchestrator.
var _ litmap.Orchestrator = (*LoggingOrchestrator)(nil)

// LoggingOrchestrator wraps an Orchestrator with request logging.
type LoggingOrchestrator struct {
	next   litmap.Orchestrator
	logger *slog.Logger
}

// NewLoggingOrchestrator creates a new LoggingOrchestrator.
func NewLoggingOrchestrator(next litmap.Orchestrator, logger *slog.Logger) *LoggingOrchestrator {
	return &LoggingOrchestrator{next: next, logger: logger}
}

// Orchestrate delegates to the wrapped orchestrator and logs the call.
func (o *LoggingOrchestrator) Orchestrate(ctx context.Context, req *litmap.OrchestrateRequest) (result *litmap.ConductorResult, err error) {
	defer func(begin time.Time) {
		var steps int
		var backendMS int64
		if result != nil {
			steps = len(result.Timeline)
			backendMS = result.TotalMS
		}
		o.logger.Info("orchestrate",
			"landmark", req.LandmarkID,
			"era", req.Era,
			"steps", steps,
			"backend_ms", backendMS,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Orchestrate(ctx, req)
}

// Ensure LoggingAgentService implements litmap.AgentService.
var _ litmap.AgentService = (*LoggingAgentService)(nil)

// LoggingAgentService wraps an AgentService with request logging.
type LoggingAgentService struct {
	next   litmap.AgentService
	logger *slog.Logger
}

// NewLoggingAgentService creates a new LoggingAgentService.
func NewLoggingAgentService(next litmap.AgentService, logger *slog.Logger) *LoggingAgentService {
	return &LoggingAgentService{next: next, logger: logger}
}

// LookupLandmark delegates to the wrapped service and logs the call.
func (s *LoggingAgentService) LookupLandmark(ctx context.Context, landmarkID string) (rec *litmap.ArchivistRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("agent call", "agent", litmap.AgentArchivist, "landmark", landmarkID, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.LookupLandmark(ctx, landmarkID)
}

// Dialect delegates to the wrapped service and logs the call.
func (s *LoggingAgentService) Dialect(ctx context.Context, era string) (rec *litmap.LinguistRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("agent call", "agent", litmap.AgentLinguist, "era", era, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Dialect(ctx, era)
}

// Style delegates to the wrapped service and logs the call.
func (s *LoggingAgentService) Style(ctx context.Context, era string) (rec *litmap.StylistRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("agent call", "agent", litmap.AgentStylist, "era", era, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Style(ctx, era)
}
