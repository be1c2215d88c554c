package bidding

import (
	"context"
	"time"

	"property-bidding/internal/clock"
	"property-bidding/internal/repository"
	"property-bidding/utils"
)

// Sweeper periodically resolves winners for properties whose bidding
// window has closed without anyone triggering resolution. Resolution is
// idempotent, so overlapping with on-demand resolution is harmless.
type Sweeper struct {
	service    *BiddingService
	properties repository.PropertyStore
	clk        clock.Clock
	interval   time.Duration
}

// NewSweeper creates a sweeper running at the given interval.
func NewSweeper(service *BiddingService, properties repository.PropertyStore, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{
		service:    service,
		properties: properties,
		clk:        clk,
		interval:   interval,
	}
}

// Run sweeps until ctx is cancelled. It performs one sweep immediately
// so winners from windows that closed while the process was down are
// resolved at startup.
func (s *Sweeper) Run(ctx context.Context) {
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep resolves every closed, unresolved property once. Failures on
// one property do not stop the sweep.
func (s *Sweeper) Sweep(ctx context.Context) {
	unresolved, err := s.properties.ListUnresolved(ctx, s.clk.Now())
	if err != nil {
		utils.Error("sweeper: failed to list unresolved properties", map[string]any{"error": err.Error()})
		return
	}

	for _, property := range unresolved {
		winner, err := s.service.ResolveWinner(ctx, property.ID)
		if err != nil {
			utils.Warn("sweeper: failed to resolve winner", map[string]any{
				"property_id": property.ID,
				"error":       err.Error(),
			})
			continue
		}
		if winner != nil {
			utils.Info("sweeper: winner resolved", map[string]any{
				"property_id": property.ID,
				"bid_id":      winner.ID,
				"bidder_id":   winner.BidderID,
				"amount":      winner.Amount.String(),
			})
		}
	}
}
