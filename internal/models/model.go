package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the coarse permission class attached to a caller by the
// upstream identity provider.
type Role string

const (
	RoleSeller Role = "Seller"
	RoleBuyer  Role = "Buyer"
)

// Valid reports whether the role is one this system knows about.
func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleBuyer
}

// Identity is the pre-validated caller identity threaded into every
// operation. The zero value means "unauthenticated".
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Authenticated reports whether the identity carries a caller ID.
func (i Identity) Authenticated() bool {
	return i.ID != ""
}

// Property represents a real-estate listing a seller has put up for
// bidding. Ids are assigned by the store on creation.
type Property struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	Price            decimal.Decimal `json:"price"`
	VideoURL         string          `json:"video_url,omitempty"`
	BiddingStartTime time.Time       `json:"bidding_start_time"`
	BiddingEndTime   time.Time       `json:"bidding_end_time"`
	OwnerID          string          `json:"owner_id"`
}

// BiddingOpenAt reports whether the bidding window contains t. Both
// endpoints are inclusive.
func (p Property) BiddingOpenAt(t time.Time) bool {
	return !p.BiddingStartTime.After(t) && !p.BiddingEndTime.Before(t)
}

// BiddingClosedAt reports whether the bidding window has elapsed at t.
func (p Property) BiddingClosedAt(t time.Time) bool {
	return p.BiddingEndTime.Before(t)
}

// Bid represents a buyer's bid on a property.
type Bid struct {
	ID           int64           `json:"id"`
	PropertyID   int64           `json:"property_id"`
	BidderID     string          `json:"bidder_id"`
	BidderName   string          `json:"bidder_name"`
	Amount       decimal.Decimal `json:"amount"`
	TimePlaced   time.Time       `json:"time_placed"`
	IsActive     bool            `json:"is_active"`
	IsWinningBid bool            `json:"is_winning_bid"`
}

// Outbids reports whether b beats other under winner-selection rules:
// higher amount wins, equal amounts go to the earlier bid.
func (b Bid) Outbids(other Bid) bool {
	switch b.Amount.Cmp(other.Amount) {
	case 1:
		return true
	case 0:
		return b.TimePlaced.Before(other.TimePlaced)
	default:
		return false
	}
}
