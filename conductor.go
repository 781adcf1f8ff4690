package litmap

import "context"

// Agent names reported in orchestration timelines.
const (
	AgentConductor = "ConductorAgent"
	AgentArchivist = "ArchivistAgent"
	AgentLinguist  = "LinguistAgent"
	AgentStylist   = "StylistAgent"
	AgentLibrarian = "LibrarianAgent"
)

// Timeline step statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// OrchestrateRequest asks the conductor to explain a landmark, an era or both.
type OrchestrateRequest struct {
	LandmarkID  string       `json:"landmark_id,omitempty"`
	Era         string       `json:"era,omitempty"`
	FeatureData *FeatureData `json:"feature_data,omitempty"`
}

// Validate returns an error if neither a landmark nor an era is given.
func (r *OrchestrateRequest) Validate() error {
	if r.LandmarkID == "" && r.Era == "" {
		return Errorf(EINVALID, "landmark ID or era required")
	}
	return nil
}

// FeatureData carries landmark properties for landmarks the backend does
// not know about.
type FeatureData struct {
	Book              string `json:"book,omitempty"`
	Quote             string `json:"quote,omitempty"`
	HistoricalContext string `json:"historical_context,omitempty"`
	Year              int    `json:"year,omitempty"`
	Era               string `json:"era,omitempty"`
	Title             string `json:"title,omitempty"`
	Mood              string `json:"mood,omitempty"`
}

// ConductorResult is the merged response of an orchestration.
// Any of the agent records may be nil.
type ConductorResult struct {
	Archivist      *ArchivistRecord `json:"archivist"`
	Linguist       *LinguistRecord  `json:"linguist"`
	Stylist        *StylistRecord   `json:"stylist"`
	Synthesis      string           `json:"synthesis"`
	Timeline       []TimelineStep   `json:"timeline"`
	TotalMS        int64            `json:"total_ms"`
	ChainOfThought []ThoughtStep    `json:"chain_of_thought"`
}

// TimelineStep records one agent call made by the conductor.
type TimelineStep struct {
	Agent     string `json:"agent"`
	Tool      string `json:"tool"`
	Status    string `json:"status"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Error     string `json:"error,omitempty"`
}

// ThoughtStep is one visible reasoning step of the conductor.
type ThoughtStep struct {
	Agent  string `json:"agent"`
	Step   string `json:"step"`
	Detail string `json:"detail"`
	TS     int64  `json:"ts"`
}

// ArchivistRecord is the historical context of a landmark.
type ArchivistRecord struct {
	LandmarkID        string `json:"landmark_id"`
	Quote             string `json:"quote"`
	HistoricalContext string `json:"historical_context"`
	DialectNote       string `json:"dialect_note,omitempty"`
	Year              int    `json:"year,omitempty"`
	Book              string `json:"book"`
	AIInsight         string `json:"ai_insight,omitempty"`
}

// LinguistRecord describes the vernacular of an era.
type LinguistRecord struct {
	Era          string      `json:"era"`
	EraLabel     string      `json:"era_label"`
	Slang        []SlangTerm `json:"slang"`
	DialectNotes string      `json:"dialect_notes"`
	AIBlurb      string      `json:"ai_blurb,omitempty"`
}

// SlangTerm is a period expression and its meaning.
type SlangTerm struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}

// StylistRecord describes the visual style of an era.
type StylistRecord struct {
	Era             string         `json:"era"`
	Label           string         `json:"label"`
	MapboxStyle     string         `json:"mapbox_style"`
	PaintOverrides  map[string]any `json:"paint_overrides,omitempty"`
	BackgroundColor string         `json:"background_color"`
	AccentColor     string         `json:"accent_color"`
	FontSuggestion  string         `json:"font_suggestion"`
	AISuggestion    string         `json:"ai_suggestion,omitempty"`
}

// Orchestrator fans a request out to the specialist agents and merges
// their answers.
type Orchestrator interface {
	// Orchestrate returns the merged conductor result.
	// Returns EINVALID if the request names neither landmark nor era.
	Orchestrate(ctx context.Context, req *OrchestrateRequest) (*ConductorResult, error)
}

// AgentService calls the specialist agents directly.
type AgentService interface {
	// LookupLandmark returns the archivist's record for a landmark.
	// Returns ENOTFOUND if the archivist does not know the landmark.
	LookupLandmark(ctx context.Context, landmarkID string) (*ArchivistRecord, error)

	// Dialect returns the linguist's record for an era.
	// Returns ENOTFOUND for unknown eras.
	Dialect(ctx context.Context, era string) (*LinguistRecord, error)

	// Style returns the stylist's record for an era.
	// Returns ENOTFOUND for unknown eras.
	Style(ctx context.Context, era string) (*StylistRecord, error)
}
