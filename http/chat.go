package http

import (
	"context"
	"strings"

	"github.com/fwojciec/litmap"
)

// Chat asks the ConductorAgent a question about a place.
func (c *Client) Chat(ctx context.Context, question string, place *litmap.ChatContext) (*litmap.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "question is required")
	}
	if place == nil {
		place = &litmap.ChatContext{}
	}

	body := struct {
		Question string              `json:"question"`
		Context  *litmap.ChatContext `json:"context"`
	}{question, place}

	var answer litmap.ChatAnswer
	if err := c.postJSON(ctx, litmap.AgentConductor, "/chat", body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}
