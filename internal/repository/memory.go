package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"property-bidding/internal/bidderrors"
	model "property-bidding/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of
// PropertyStore and BidStore, used by tests and local runs.
type MemoryRepo struct {
	mu         sync.RWMutex
	properties map[int64]model.Property
	bids       map[int64]model.Bid
	nextPropID int64
	nextBidID  int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		properties: make(map[int64]model.Property),
		bids:       make(map[int64]model.Bid),
	}
}

// AddProperty stores a new property and assigns its id
func (r *MemoryRepo) AddProperty(_ context.Context, p model.Property) (model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextPropID++
	p.ID = r.nextPropID
	r.properties[p.ID] = p
	return p, nil
}

// GetProperty returns the property with the given id
func (r *MemoryRepo) GetProperty(_ context.Context, id int64) (model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[id]
	if !ok {
		return model.Property{}, fmt.Errorf("get property %d: %w", id, bidderrors.ErrPropertyNotFound)
	}
	return p, nil
}

// ListPropertiesByOwner returns all properties created by ownerID
func (r *MemoryRepo) ListPropertiesByOwner(_ context.Context, ownerID string) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Property
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateProperty overwrites an existing property
func (r *MemoryRepo) UpdateProperty(_ context.Context, p model.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[p.ID]; !ok {
		return fmt.Errorf("update property %d: %w", p.ID, bidderrors.ErrPropertyNotFound)
	}
	r.properties[p.ID] = p
	return nil
}

// RemoveProperty deletes a property and cascades to its bids
func (r *MemoryRepo) RemoveProperty(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[id]; !ok {
		return fmt.Errorf("remove property %d: %w", id, bidderrors.ErrPropertyNotFound)
	}
	delete(r.properties, id)
	for bidID, b := range r.bids {
		if b.PropertyID == id {
			delete(r.bids, bidID)
		}
	}
	return nil
}

// ListUnresolved returns closed-window properties that still have an
// active bid and no winning bid
func (r *MemoryRepo) ListUnresolved(_ context.Context, closedBefore time.Time) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Property
	for _, p := range r.properties {
		if !p.BiddingEndTime.Before(closedBefore) {
			continue
		}
		active, winning := false, false
		for _, b := range r.bids {
			if b.PropertyID != p.ID {
				continue
			}
			if b.IsActive {
				active = true
			}
			if b.IsWinningBid {
				winning = true
			}
		}
		if active && !winning {
			out = append(out, p)
		}
	}
	return out, nil
}

// AddBid records a buyer's bid on a property. The duplicate-active-bid
// check runs under the same lock as the insert.
func (r *MemoryRepo) AddBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[bid.PropertyID]; !ok {
		return model.Bid{}, fmt.Errorf("add bid for property %d: %w", bid.PropertyID, bidderrors.ErrPropertyNotFound)
	}

	for _, b := range r.bids {
		if b.PropertyID == bid.PropertyID && b.BidderID == bid.BidderID && b.IsActive {
			return model.Bid{}, fmt.Errorf("add bid for property %d: %w", bid.PropertyID, bidderrors.ErrDuplicateActiveBid)
		}
	}

	r.nextBidID++
	bid.ID = r.nextBidID
	r.bids[bid.ID] = bid
	return bid, nil
}

// GetBid returns the bid with the given id
func (r *MemoryRepo) GetBid(_ context.Context, id int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", id, bidderrors.ErrBidNotFound)
	}
	return b, nil
}

// ListBidsByProperty returns all bids, active and inactive, for a property
func (r *MemoryRepo) ListBidsByProperty(_ context.Context, propertyID int64) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, b := range r.bids {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out, nil
}

// UpdateBid overwrites an existing bid
func (r *MemoryRepo) UpdateBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.ID]; !ok {
		return fmt.Errorf("update bid %d: %w", bid.ID, bidderrors.ErrBidNotFound)
	}
	r.bids[bid.ID] = bid
	return nil
}

// MarkWinningBid clears stale winning flags on the property and sets
// the flag on bidID, all under one lock
func (r *MemoryRepo) MarkWinningBid(_ context.Context, propertyID, bidID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.bids[bidID]
	if !ok || target.PropertyID != propertyID || !target.IsActive {
		return fmt.Errorf("mark winning bid %d for property %d: %w", bidID, propertyID, bidderrors.ErrBidNotFound)
	}

	for id, b := range r.bids {
		if b.PropertyID == propertyID && b.IsWinningBid && id != bidID {
			b.IsWinningBid = false
			r.bids[id] = b
		}
	}
	target.IsWinningBid = true
	r.bids[bidID] = target
	return nil
}
