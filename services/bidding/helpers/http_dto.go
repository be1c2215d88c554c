package helpers

import (
	model "property-bidding/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	PropertyID int64  `json:"property_id" binding:"required,gt=0"`
	Amount     string `json:"amount" binding:"required"`
}

type UpdateBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID        int64  `json:"bid_id"`
	PropertyID   int64  `json:"property_id"`
	BidderID     string `json:"bidder_id"`
	BidderName   string `json:"bidder_name"`
	Amount       string `json:"amount"`
	TimePlaced   string `json:"time_placed"`
	IsActive     bool   `json:"is_active"`
	IsWinningBid bool   `json:"is_winning_bid"`
}

// NewBidResponse converts a bid entity into its response shape.
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:        bid.ID,
		PropertyID:   bid.PropertyID,
		BidderID:     bid.BidderID,
		BidderName:   bid.BidderName,
		Amount:       bid.Amount.String(),
		TimePlaced:   bid.TimePlaced.UTC().Format("2006-01-02T15:04:05Z07:00"),
		IsActive:     bid.IsActive,
		IsWinningBid: bid.IsWinningBid,
	}
}

// NewBidResponses converts a slice of bids, never returning nil.
func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		out = append(out, NewBidResponse(bid))
	}
	return out
}
