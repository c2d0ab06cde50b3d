package client

import (
	"context"
	"strings"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/core"
)

func consentPath(ownerID string) string {
	return strings.Replace(api.ConsentRoute, "{owner}", ownerID, 1)
}

// GetConsent retrieves the owner's consent profile.
func (c *Client) GetConsent(ctx context.Context, ownerID string) (*core.ConsentProfile, string, error) {
	var profile core.ConsentProfile
	correlation, err := c.get(ctx, c.url().
		setPath(consentPath(ownerID)).
		build(), &profile)
	if err != nil {
		return nil, correlation, err
	}
	return &profile, correlation, nil
}

// SetConsent writes one consent field and returns the updated profile.
func (c *Client) SetConsent(ctx context.Context, ownerID, field string, value any) (*core.ConsentProfile, string, error) {
	payload := api.ConsentWritePayload{
		Field: field,
		Value: value,
	}
	var profile core.ConsentProfile
	correlation, err := c.send(ctx, "PATCH", c.url().
		setPath(consentPath(ownerID)).
		build(), payload, &profile)
	if err != nil {
		return nil, correlation, err
	}
	return &profile, correlation, nil
}
