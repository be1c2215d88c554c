package helpers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"property-bidding/internal/bidderrors"
	model "property-bidding/internal/models"
	property "property-bidding/internal/propertyService"
)

// Request/Response DTOs
type PropertyRequest struct {
	Name             string    `json:"name" binding:"required,max=100"`
	Address          string    `json:"address" binding:"required,max=200"`
	Price            string    `json:"price" binding:"required"`
	VideoURL         string    `json:"video_url" binding:"omitempty,url"`
	BiddingStartTime time.Time `json:"bidding_start_time" binding:"required"`
	BiddingEndTime   time.Time `json:"bidding_end_time" binding:"required"`
}

type PropertyResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Price            string `json:"price"`
	VideoURL         string `json:"video_url,omitempty"`
	BiddingStartTime string `json:"bidding_start_time"`
	BiddingEndTime   string `json:"bidding_end_time"`
	OwnerID          string `json:"owner_id"`
}

// ToInput converts the request into the service input, parsing the
// decimal price.
func (r PropertyRequest) ToInput() (property.Input, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return property.Input{}, fmt.Errorf("%w - malformed price %q", bidderrors.ErrValidation, r.Price)
	}
	return property.Input{
		Name:             r.Name,
		Address:          r.Address,
		Price:            price,
		VideoURL:         r.VideoURL,
		BiddingStartTime: r.BiddingStartTime,
		BiddingEndTime:   r.BiddingEndTime,
	}, nil
}

// NewPropertyResponse converts a property entity into its response shape.
func NewPropertyResponse(p model.Property) PropertyResponse {
	return PropertyResponse{
		ID:               p.ID,
		Name:             p.Name,
		Address:          p.Address,
		Price:            p.Price.String(),
		VideoURL:         p.VideoURL,
		BiddingStartTime: p.BiddingStartTime.UTC().Format(time.RFC3339),
		BiddingEndTime:   p.BiddingEndTime.UTC().Format(time.RFC3339),
		OwnerID:          p.OwnerID,
	}
}

// NewPropertyResponses converts a slice of properties, never returning nil.
func NewPropertyResponses(properties []model.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, NewPropertyResponse(p))
	}
	return out
}
