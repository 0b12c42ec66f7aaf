package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rryowa/medcard/internal/models"
)

// Dashboard is the owner's landing summary.
type Dashboard struct {
	Profile           *models.Profile
	Health            *models.HealthInfo
	EmergencyContacts []models.EmergencyContact
	Addresses         []models.Address
}

// Dashboard fetches the summary with the four requests in flight at once.
// If the access token has expired they share a single refresh.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Profile, err = c.Profile.Get(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Health, err = c.Health.Get(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		d.EmergencyContacts, err = c.EmergencyContacts.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Addresses, err = c.Addresses.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
