package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"property-bidding/internal/bidderrors"
	model "property-bidding/internal/models"
	"property-bidding/utils"
)

// IdentityKey is the gin context key the identity middleware stores the
// caller under.
const IdentityKey = "caller_identity"

// CurrentIdentity returns the caller identity resolved by the identity
// middleware, or the zero (unauthenticated) identity.
func CurrentIdentity(c *gin.Context) model.Identity {
	value, ok := c.Get(IdentityKey)
	if !ok {
		return model.Identity{}
	}
	ident, ok := value.(model.Identity)
	if !ok {
		return model.Identity{}
	}
	return ident
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseAmount parses a decimal money amount from its request string
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w - malformed amount %q", bidderrors.ErrValidation, raw)
	}
	return amount, nil
}

// ParseID parses a numeric path parameter
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w - malformed id %q", bidderrors.ErrValidation, raw)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// ErrNotFoundOrForbidden intentionally maps to 404 so responses never
// reveal whether another bidder's bid exists.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, bidderrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, bidderrors.ErrForbidden):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, bidderrors.ErrNotFoundOrForbidden):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, bidderrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, bidderrors.ErrPropertyNotFound):
		return http.StatusNotFound, "property not found"
	case errors.Is(err, bidderrors.ErrBiddingClosed):
		return http.StatusConflict, "bidding is not open for this property"
	case errors.Is(err, bidderrors.ErrDuplicateActiveBid):
		return http.StatusConflict, "an active bid already exists for this property; update it instead"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
