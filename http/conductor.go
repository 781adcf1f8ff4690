package http

import (
	"context"

	"github.com/fwojciec/litmap"
)

// Orchestrate asks the ConductorAgent to fan out to the specialist agents.
func (c *Client) Orchestrate(ctx context.Context, req *litmap.OrchestrateRequest) (*litmap.ConductorResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result litmap.ConductorResult
	if err := c.postJSON(ctx, litmap.AgentConductor, "/orchestrate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LookupLandmark asks the ArchivistAgent for a landmark's historical context.
func (c *Client) LookupLandmark(ctx context.Context, landmarkID string) (*litmap.ArchivistRecord, error) {
	if landmarkID == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "landmark ID required")
	}

	var rec litmap.ArchivistRecord
	body := map[string]string{"landmark_id": landmarkID}
	if err := c.postJSON(ctx, litmap.AgentArchivist, "/tools/archivist/lookup", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Dialect asks the LinguistAgent for an era's vernacular.
func (c *Client) Dialect(ctx context.Context, era string) (*litmap.LinguistRecord, error) {
	if era == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "era required")
	}

	var rec litmap.LinguistRecord
	if err := c.postJSON(ctx, litmap.AgentLinguist, "/tools/linguist/dialect", map[string]string{"era": era}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Style asks the StylistAgent for an era's visual style.
func (c *Client) Style(ctx context.Context, era string) (*litmap.StylistRecord, error) {
	if era == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "era required")
	}

	var rec litmap.StylistRecord
	if err := c.postJSON(ctx, litmap.AgentStylist, "/tools/stylist/style", map[string]string{"era": era}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
