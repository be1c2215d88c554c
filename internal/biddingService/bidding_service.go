package bidding

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"property-bidding/internal/authz"
	"property-bidding/internal/bidderrors"
	"property-bidding/internal/clock"
	model "property-bidding/internal/models"
	"property-bidding/internal/repository"
	"property-bidding/utils"
)

// BiddingService implements the bid lifecycle rules: who may place,
// update and cancel bids, when the bidding window permits it, and how a
// winner is resolved once the window closes.
type BiddingService struct {
	properties repository.PropertyStore
	bids       repository.BidStore
	clk        clock.Clock
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(properties repository.PropertyStore, bids repository.BidStore, clk clock.Clock) *BiddingService {
	return &BiddingService{
		properties: properties,
		bids:       bids,
		clk:        clk,
	}
}

// PlaceBid validates and records a buyer's bid on a property. The
// bidder must not already hold an active bid on it; that rule is
// enforced inside the store so concurrent calls cannot both slip past.
func (s *BiddingService) PlaceBid(ctx context.Context, propertyID int64, caller model.Identity, amount decimal.Decimal) (model.Bid, error) {
	if !authz.Allowed(caller, authz.OpPlaceBid, "") {
		return model.Bid{}, fmt.Errorf("service: place bid on property %d: %w", propertyID, bidderrors.ErrForbidden)
	}
	if propertyID <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - missing property id", bidderrors.ErrValidation)
	}
	if amount.Sign() <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", bidderrors.ErrValidation)
	}

	property, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: place bid: %w", err)
	}

	now := s.clk.Now()
	if !property.BiddingOpenAt(now) {
		return model.Bid{}, fmt.Errorf("service: place bid on property %d: %w", propertyID, bidderrors.ErrBiddingClosed)
	}

	bid := model.Bid{
		PropertyID: propertyID,
		BidderID:   caller.ID,
		BidderName: caller.Name,
		Amount:     amount,
		TimePlaced: now,
		IsActive:   true,
	}

	created, err := s.bids.AddBid(ctx, bid)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid on property %d by %s: %w", propertyID, caller.ID, err)
	}
	return created, nil
}

// UpdateBid overwrites the amount of the caller's active bid and
// restamps its placement time. Missing, inactive and foreign bids are
// indistinguishable to the caller.
func (s *BiddingService) UpdateBid(ctx context.Context, bidID int64, caller model.Identity, newAmount decimal.Decimal) (model.Bid, error) {
	if newAmount.Sign() <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", bidderrors.ErrValidation)
	}

	bid, err := s.ownedActiveBid(ctx, bidID, caller, authz.OpUpdateBid)
	if err != nil {
		return model.Bid{}, err
	}

	property, err := s.properties.GetProperty(ctx, bid.PropertyID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: update bid %d: %w", bidID, err)
	}

	now := s.clk.Now()
	if !property.BiddingOpenAt(now) {
		return model.Bid{}, fmt.Errorf("service: update bid %d: %w", bidID, bidderrors.ErrBiddingClosed)
	}

	bid.Amount = newAmount
	bid.TimePlaced = now
	if err := s.bids.UpdateBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to update bid %d: %w", bidID, err)
	}
	return bid, nil
}

// CancelBid deactivates the caller's active bid. Cancellation after the
// window closes is refused so a resolved winner cannot be invalidated.
func (s *BiddingService) CancelBid(ctx context.Context, bidID int64, caller model.Identity) error {
	bid, err := s.ownedActiveBid(ctx, bidID, caller, authz.OpCancelBid)
	if err != nil {
		return err
	}

	property, err := s.properties.GetProperty(ctx, bid.PropertyID)
	if err != nil {
		return fmt.Errorf("service: cancel bid %d: %w", bidID, err)
	}

	if !property.BiddingOpenAt(s.clk.Now()) {
		return fmt.Errorf("service: cancel bid %d: %w", bidID, bidderrors.ErrBiddingClosed)
	}

	bid.IsActive = false
	if err := s.bids.UpdateBid(ctx, bid); err != nil {
		return fmt.Errorf("service: failed to cancel bid %d: %w", bidID, err)
	}
	return nil
}

// ResolveWinner marks the highest active bid on a closed property as
// winning; equal amounts go to the earlier bid. Calling it before the
// window closes, or with no active bids, is a no-op. It is idempotent
// and safe to invoke repeatedly.
func (s *BiddingService) ResolveWinner(ctx context.Context, propertyID int64) (*model.Bid, error) {
	property, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: resolve winner: %w", err)
	}

	if !property.BiddingClosedAt(s.clk.Now()) {
		return nil, nil
	}

	bids, err := s.bids.ListBidsByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: resolve winner for property %d: %w", propertyID, err)
	}

	var winner *model.Bid
	for i := range bids {
		if !bids[i].IsActive {
			continue
		}
		if winner == nil || bids[i].Outbids(*winner) {
			winner = &bids[i]
		}
	}
	if winner == nil {
		return nil, nil
	}

	if err := s.bids.MarkWinningBid(ctx, propertyID, winner.ID); err != nil {
		return nil, fmt.Errorf("service: failed to mark winning bid for property %d: %w", propertyID, err)
	}
	winner.IsWinningBid = true
	return winner, nil
}

// ViewBids returns every bid, active and inactive, on a property the
// caller owns.
func (s *BiddingService) ViewBids(ctx context.Context, propertyID int64, caller model.Identity) ([]model.Bid, error) {
	property, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: view bids: %w", err)
	}

	if !authz.Allowed(caller, authz.OpViewBids, property.OwnerID) {
		return nil, fmt.Errorf("service: view bids for property %d: %w", propertyID, bidderrors.ErrForbidden)
	}

	bids, err := s.bids.ListBidsByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for property %d: %w", propertyID, err)
	}
	return bids, nil
}

// ownedActiveBid loads a bid and verifies it is active and owned by the
// caller. All failure causes collapse into ErrNotFoundOrForbidden so a
// reply never reveals whether someone else's bid exists; the real cause
// is logged internally.
func (s *BiddingService) ownedActiveBid(ctx context.Context, bidID int64, caller model.Identity, op authz.Operation) (model.Bid, error) {
	if !caller.Authenticated() {
		return model.Bid{}, fmt.Errorf("service: %s: %w", op, bidderrors.ErrForbidden)
	}

	bid, err := s.bids.GetBid(ctx, bidID)
	if err != nil {
		if errors.Is(err, bidderrors.ErrBidNotFound) {
			utils.Debug("bid lookup denied", map[string]any{"op": op.String(), "bid_id": bidID, "cause": "not_found"})
			return model.Bid{}, fmt.Errorf("service: %s %d: %w", op, bidID, bidderrors.ErrNotFoundOrForbidden)
		}
		return model.Bid{}, fmt.Errorf("service: %s %d: %w", op, bidID, err)
	}

	if !bid.IsActive || !authz.Allowed(caller, op, bid.BidderID) {
		utils.Debug("bid lookup denied", map[string]any{"op": op.String(), "bid_id": bidID, "cause": "inactive_or_not_owned"})
		return model.Bid{}, fmt.Errorf("service: %s %d: %w", op, bidID, bidderrors.ErrNotFoundOrForbidden)
	}
	return bid, nil
}
