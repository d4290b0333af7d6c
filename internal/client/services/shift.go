package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitekeeper/internal/client/geo"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// Shift tracks a field worker's GPS check-in for the day.
type Shift struct {
	locator geo.Locator
	log     logging.Logger

	loading bool
	started bool
	coords  geo.Coordinates
}

func NewShift(locator geo.Locator, log logging.Logger) *Shift {
	return &Shift{locator: locator, log: log}
}

// StartWork locks the worker's position. Any locator failure is reported as
// common.ErrLocationUnavailable and leaves the shift unstarted.
func (s *Shift) StartWork(ctx context.Context) (geo.Coordinates, error) {
	s.loading = true
	defer func() { s.loading = false }()

	if s.locator == nil {
		return geo.Coordinates{}, common.ErrLocationUnavailable
	}

	c, err := s.locator.Locate(ctx)
	if err != nil {
		s.log.Warn(ctx, "position lock failed", "error", err)
		return geo.Coordinates{}, fmt.Errorf("%w: %w", common.ErrLocationUnavailable, err)
	}

	s.started = true
	s.coords = c
	s.log.Info(ctx, "shift started", "lat", c.Lat, "lon", c.Lon)
	return c, nil
}

func (s *Shift) Started() bool { return s.started }

func (s *Shift) Loading() bool { return s.loading }

// Position is the locked position; valid only when Started.
func (s *Shift) Position() geo.Coordinates { return s.coords }
