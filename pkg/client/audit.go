package client

import (
	"context"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/core"
)

type ListAuditsOpts struct {
	Limit uint

	Viewer string
	Owner  string
	Status string
}

// ListAudits retrieves the latest audit entries from the server, limited
// to the specified number. Requires a compliance token.
func (c *Client) ListAudits(ctx context.Context, opts ListAuditsOpts) ([]core.AuditEntry, string, error) {
	ub := c.url().setPath(api.ListAuditsRoute)
	if opts.Limit > 0 {
		ub = ub.addQueryParam("limit", opts.Limit)
	}
	if opts.Viewer != "" {
		ub = ub.addQueryParam("viewer", opts.Viewer)
	}
	if opts.Owner != "" {
		ub = ub.addQueryParam("owner", opts.Owner)
	}
	if opts.Status != "" {
		ub = ub.addQueryParam("status", opts.Status)
	}
	var resp []core.AuditEntry
	correlation, err := c.get(ctx, ub.build(), &resp)
	return resp, correlation, err
}
