package client

import (
	"context"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/core"
)

// Decide submits one access request and returns the server's decision.
// A denial is a successful call; err is only set for transport and
// validation failures.
func (c *Client) Decide(ctx context.Context, payload api.DecidePayload) (*core.AccessDecision, string, error) {
	var result core.AccessDecision
	correlation, err := c.send(ctx, "POST", c.url().
		setPath(api.DecideRoute).
		build(), payload, &result)
	if err != nil {
		return nil, correlation, err
	}
	return &result, correlation, nil
}
