package bidderrors

import "errors"

// Repository-level errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrBidNotFound      = errors.New("bid not found")
)

// business rule errors
var (
	ErrValidation         = errors.New("invalid input")
	ErrForbidden          = errors.New("operation not permitted")
	ErrBiddingClosed      = errors.New("bidding is not open for this property")
	ErrDuplicateActiveBid = errors.New("bidder already has an active bid for this property")

	// ErrNotFoundOrForbidden deliberately merges "no such bid" and "not
	// your bid" so responses never reveal whether another bidder's bid
	// exists.
	ErrNotFoundOrForbidden = errors.New("bid not found or not owned by caller")
)
