package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	model "property-bidding/internal/models"
	"property-bidding/services/bidding/helpers"
	"property-bidding/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, propertyID int64, caller model.Identity, amount decimal.Decimal) (model.Bid, error)
	UpdateBid(ctx context.Context, bidID int64, caller model.Identity, newAmount decimal.Decimal) (model.Bid, error)
	CancelBid(ctx context.Context, bidID int64, caller model.Identity) error
	ResolveWinner(ctx context.Context, propertyID int64) (*model.Bid, error)
	ViewBids(ctx context.Context, propertyID int64, caller model.Identity) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := helpers.CurrentIdentity(c)
	bid, err := h.service.PlaceBid(c.Request.Context(), req.PropertyID, caller, amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":     "PlaceBidHandler",
			"property_id": req.PropertyID,
			"bidder_id":   caller.ID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":      bid.ID,
		"property_id": bid.PropertyID,
		"bidder_id":   bid.BidderID,
		"amount":      bid.Amount.String(),
	})
}

// UpdateBidHandler handles PUT /bids/:bid_id
func (h *BiddingHandler) UpdateBidHandler(c *gin.Context) {
	bidID, err := helpers.ParseID(c.Param("bid_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := helpers.CurrentIdentity(c)
	bid, err := h.service.UpdateBid(c.Request.Context(), bidID, caller, amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateBidHandler: failed to update bid", map[string]any{
			"bid_id":    bidID,
			"bidder_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.ID,
		"amount": bid.Amount.String(),
	})
}

// CancelBidHandler handles DELETE /bids/:bid_id
func (h *BiddingHandler) CancelBidHandler(c *gin.Context) {
	bidID, err := helpers.ParseID(c.Param("bid_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := helpers.CurrentIdentity(c)
	if err := h.service.CancelBid(c.Request.Context(), bidID, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelBidHandler: failed to cancel bid", map[string]any{
			"bid_id":    bidID,
			"bidder_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid cancelled successfully")
	helpers.LogSuccess("CancelBidHandler", "bid cancelled successfully", map[string]any{
		"bid_id":    bidID,
		"bidder_id": caller.ID,
	})
}

// ViewBidsHandler handles GET /properties/:property_id/bids
func (h *BiddingHandler) ViewBidsHandler(c *gin.Context) {
	propertyID, err := helpers.ParseID(c.Param("property_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := helpers.CurrentIdentity(c)
	bids, err := h.service.ViewBids(c.Request.Context(), propertyID, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ViewBidsHandler: error retrieving bids", map[string]any{
			"property_id": propertyID,
			"caller_id":   caller.ID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ViewBidsHandler", "bids retrieved successfully", map[string]any{
		"property_id": propertyID,
		"count":       len(bids),
	})
}

// WinningBidHandler handles GET /properties/:property_id/winning. It
// resolves lazily: reading the winner of a closed window performs the
// resolution if nothing else has yet.
func (h *BiddingHandler) WinningBidHandler(c *gin.Context) {
	propertyID, err := helpers.ParseID(c.Param("property_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	winner, err := h.service.ResolveWinner(c.Request.Context(), propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WinningBidHandler: winning bid error", map[string]any{
			"property_id": propertyID,
			"error":       err.Error(),
		})
		return
	}

	if winner == nil {
		utils.JSONResponse(c, http.StatusOK, nil, "no winning bid")
		utils.Info("WinningBidHandler: no winning bid", map[string]any{"property_id": propertyID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(*winner), "winning bid retrieved successfully")
	helpers.LogSuccess("WinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":      winner.ID,
		"property_id": winner.PropertyID,
		"bidder_id":   winner.BidderID,
		"amount":      winner.Amount.String(),
	})
}

// ResolveWinnerHandler handles POST /properties/:property_id/resolve.
// Resolution is idempotent, so the trigger is safe to call
// speculatively.
func (h *BiddingHandler) ResolveWinnerHandler(c *gin.Context) {
	propertyID, err := helpers.ParseID(c.Param("property_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	winner, err := h.service.ResolveWinner(c.Request.Context(), propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResolveWinnerHandler: resolution failed", map[string]any{
			"property_id": propertyID,
			"error":       err.Error(),
		})
		return
	}

	if winner == nil {
		utils.JSONResponse(c, http.StatusOK, nil, "no winner resolved")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(*winner), "winner resolved successfully")
	helpers.LogSuccess("ResolveWinnerHandler", "winner resolved successfully", map[string]any{
		"bid_id":      winner.ID,
		"property_id": winner.PropertyID,
	})
}
