package client

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rryowa/medcard/internal/models"
)

// Export is everything the owner can read about themselves, notes included.
type Export struct {
	ExportedAt        time.Time                 `json:"exportedAt"`
	Profile           *models.Profile           `json:"profile"`
	Health            *models.HealthInfo        `json:"health"`
	Allergies         []models.Allergy          `json:"allergies"`
	Medications       []models.Medication        `json:"medications"`
	EmergencyContacts []models.EmergencyContact `json:"emergencyContacts"`
	Addresses         []models.Address          `json:"addresses"`
}

// Export gathers the owner's full record. The requests run concurrently and
// the first failure cancels the rest.
func (c *Client) Export(ctx context.Context) (*Export, error) {
	var e Export

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		e.Profile, err = c.Profile.Get(gctx)
		return err
	})
	g.Go(func() (err error) {
		e.Health, err = c.Health.Get(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		e.Allergies, err = c.Allergies.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		e.Medications, err = c.Medications.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		e.EmergencyContacts, err = c.EmergencyContacts.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		e.Addresses, err = c.Addresses.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.ExportedAt = time.Now().UTC()
	return &e, nil
}
