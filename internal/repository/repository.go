package repository

import (
	"context"
	"time"

	model "property-bidding/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks.go -package=repository

// PropertyStore defines the property storage contract. Implementations
// must make each call atomic; RemoveProperty cascades to the
// property's bids.
type PropertyStore interface {
	AddProperty(ctx context.Context, p model.Property) (model.Property, error)
	GetProperty(ctx context.Context, id int64) (model.Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID string) ([]model.Property, error)
	UpdateProperty(ctx context.Context, p model.Property) error
	RemoveProperty(ctx context.Context, id int64) error
	// ListUnresolved returns properties whose bidding window ended
	// before closedBefore and that have at least one active bid but no
	// winning bid yet.
	ListUnresolved(ctx context.Context, closedBefore time.Time) ([]model.Property, error)
}

// BidStore defines the bid storage contract.
type BidStore interface {
	// AddBid persists a new bid. The check that the bidder has no other
	// active bid on the property happens inside the store's critical
	// section, so two concurrent calls cannot both pass it.
	AddBid(ctx context.Context, b model.Bid) (model.Bid, error)
	GetBid(ctx context.Context, id int64) (model.Bid, error)
	ListBidsByProperty(ctx context.Context, propertyID int64) ([]model.Bid, error)
	UpdateBid(ctx context.Context, b model.Bid) error
	// MarkWinningBid clears any winning flag on the property's bids and
	// sets it on the given bid, as one atomic step. The target bid must
	// still be active.
	MarkWinningBid(ctx context.Context, propertyID, bidID int64) error
}
