package client

import (
	"context"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/buildinfo"
)

// Info retrieves the server's build information.
func (c *Client) Info(ctx context.Context) (*buildinfo.Info, string, error) {
	var info buildinfo.Info
	correlation, err := c.get(ctx, c.url().
		setPath(api.AboutRoute).
		build(), &info)
	if err != nil {
		return nil, correlation, err
	}
	return &info, correlation, nil
}
