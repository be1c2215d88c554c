package property

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"property-bidding/internal/authz"
	"property-bidding/internal/bidderrors"
	model "property-bidding/internal/models"
	"property-bidding/internal/repository"
)

// Input carries the seller-editable fields of a property listing.
type Input struct {
	Name             string
	Address          string
	Price            decimal.Decimal
	VideoURL         string
	BiddingStartTime time.Time
	BiddingEndTime   time.Time
}

// PropertyService implements owner-scoped listing management for
// sellers.
type PropertyService struct {
	properties repository.PropertyStore
}

// NewPropertyService creates a new PropertyService instance
func NewPropertyService(properties repository.PropertyStore) *PropertyService {
	return &PropertyService{properties: properties}
}

// CreateProperty validates and stores a new listing owned by the
// calling seller.
func (s *PropertyService) CreateProperty(ctx context.Context, caller model.Identity, input Input) (model.Property, error) {
	if !authz.Allowed(caller, authz.OpCreateProperty, "") {
		return model.Property{}, fmt.Errorf("service: create property: %w", bidderrors.ErrForbidden)
	}
	if err := validateInput(input); err != nil {
		return model.Property{}, err
	}

	created, err := s.properties.AddProperty(ctx, model.Property{
		Name:             input.Name,
		Address:          input.Address,
		Price:            input.Price,
		VideoURL:         input.VideoURL,
		BiddingStartTime: input.BiddingStartTime,
		BiddingEndTime:   input.BiddingEndTime,
		OwnerID:          caller.ID,
	})
	if err != nil {
		return model.Property{}, fmt.Errorf("service: failed to create property: %w", err)
	}
	return created, nil
}

// UpdateProperty overwrites the editable fields of a listing the caller
// owns. Not-found and not-owned are both reported as a plain denial so
// sellers cannot probe each other's listing ids.
func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, caller model.Identity, input Input) (model.Property, error) {
	existing, err := s.ownedProperty(ctx, id, caller, authz.OpEditProperty)
	if err != nil {
		return model.Property{}, err
	}
	if err := validateInput(input); err != nil {
		return model.Property{}, err
	}

	existing.Name = input.Name
	existing.Address = input.Address
	existing.Price = input.Price
	existing.VideoURL = input.VideoURL
	existing.BiddingStartTime = input.BiddingStartTime
	existing.BiddingEndTime = input.BiddingEndTime

	if err := s.properties.UpdateProperty(ctx, existing); err != nil {
		return model.Property{}, fmt.Errorf("service: failed to update property %d: %w", id, err)
	}
	return existing, nil
}

// DeleteProperty removes a listing the caller owns; the store cascades
// the delete to its bids.
func (s *PropertyService) DeleteProperty(ctx context.Context, id int64, caller model.Identity) error {
	if _, err := s.ownedProperty(ctx, id, caller, authz.OpDeleteProperty); err != nil {
		return err
	}
	if err := s.properties.RemoveProperty(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete property %d: %w", id, err)
	}
	return nil
}

// GetProperty returns a listing's details for any authenticated caller.
func (s *PropertyService) GetProperty(ctx context.Context, id int64, caller model.Identity) (model.Property, error) {
	if !caller.Authenticated() {
		return model.Property{}, fmt.Errorf("service: get property %d: %w", id, bidderrors.ErrForbidden)
	}
	property, err := s.properties.GetProperty(ctx, id)
	if err != nil {
		return model.Property{}, fmt.Errorf("service: get property %d: %w", id, err)
	}
	return property, nil
}

// ListProperties returns the calling seller's own listings.
func (s *PropertyService) ListProperties(ctx context.Context, caller model.Identity) ([]model.Property, error) {
	if !caller.Authenticated() || caller.Role != model.RoleSeller {
		return nil, fmt.Errorf("service: list properties: %w", bidderrors.ErrForbidden)
	}
	properties, err := s.properties.ListPropertiesByOwner(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list properties for %s: %w", caller.ID, err)
	}
	return properties, nil
}

func (s *PropertyService) ownedProperty(ctx context.Context, id int64, caller model.Identity, op authz.Operation) (model.Property, error) {
	if !caller.Authenticated() {
		return model.Property{}, fmt.Errorf("service: %s %d: %w", op, id, bidderrors.ErrForbidden)
	}
	property, err := s.properties.GetProperty(ctx, id)
	if err != nil {
		return model.Property{}, fmt.Errorf("service: %s %d: %w", op, id, bidderrors.ErrForbidden)
	}
	if !authz.Allowed(caller, op, property.OwnerID) {
		return model.Property{}, fmt.Errorf("service: %s %d: %w", op, id, bidderrors.ErrForbidden)
	}
	return property, nil
}

func validateInput(input Input) error {
	switch {
	case input.Name == "":
		return fmt.Errorf("service: %w - name is required", bidderrors.ErrValidation)
	case len(input.Name) > 100:
		return fmt.Errorf("service: %w - name exceeds 100 characters", bidderrors.ErrValidation)
	case input.Address == "":
		return fmt.Errorf("service: %w - address is required", bidderrors.ErrValidation)
	case len(input.Address) > 200:
		return fmt.Errorf("service: %w - address exceeds 200 characters", bidderrors.ErrValidation)
	case input.Price.Sign() < 0:
		return fmt.Errorf("service: %w - negative price", bidderrors.ErrValidation)
	case input.BiddingStartTime.IsZero() || input.BiddingEndTime.IsZero():
		return fmt.Errorf("service: %w - bidding window is required", bidderrors.ErrValidation)
	case !input.BiddingEndTime.After(input.BiddingStartTime):
		return fmt.Errorf("service: %w - bidding end time must be after start time", bidderrors.ErrValidation)
	}

	if input.VideoURL != "" {
		u, err := url.ParseRequestURI(input.VideoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("service: %w - malformed video url", bidderrors.ErrValidation)
		}
	}
	return nil
}
