// Package authz maps (identity, role, resource ownership) to an
// allow/deny decision for each lifecycle operation. It is stateless and
// performs no I/O; callers pass in whatever ownership facts the
// decision needs.
package authz

import (
	model "property-bidding/internal/models"
)

// Operation enumerates the gated lifecycle operations.
type Operation int

const (
	OpCreateProperty Operation = iota
	OpEditProperty
	OpDeleteProperty
	OpViewBids
	OpPlaceBid
	OpUpdateBid
	OpCancelBid
)

// String returns the operation name for logging.
func (op Operation) String() string {
	switch op {
	case OpCreateProperty:
		return "create_property"
	case OpEditProperty:
		return "edit_property"
	case OpDeleteProperty:
		return "delete_property"
	case OpViewBids:
		return "view_bids"
	case OpPlaceBid:
		return "place_bid"
	case OpUpdateBid:
		return "update_bid"
	case OpCancelBid:
		return "cancel_bid"
	default:
		return "unknown"
	}
}

// Allowed reports whether caller may perform op against a resource
// owned by ownerID. Operations that create a new resource pass "" as
// ownerID. Unauthenticated callers are denied everything.
func Allowed(caller model.Identity, op Operation, ownerID string) bool {
	if !caller.Authenticated() {
		return false
	}

	switch op {
	case OpCreateProperty:
		return caller.Role == model.RoleSeller
	case OpEditProperty, OpDeleteProperty, OpViewBids:
		return caller.Role == model.RoleSeller && caller.ID == ownerID
	case OpPlaceBid:
		return caller.Role == model.RoleBuyer
	case OpUpdateBid, OpCancelBid:
		return caller.Role == model.RoleBuyer && caller.ID == ownerID
	default:
		return false
	}
}
