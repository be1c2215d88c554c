package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	model "property-bidding/internal/models"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	seller := model.Identity{ID: "seller-1", Name: "Sam Seller", Role: model.RoleSeller}
	buyer := model.Identity{ID: "buyer-1", Name: "Bea Buyer", Role: model.RoleBuyer}
	anon := model.Identity{}

	tests := []struct {
		name    string
		caller  model.Identity
		op      Operation
		ownerID string
		want    bool
	}{
		{name: "seller_creates_property", caller: seller, op: OpCreateProperty, want: true},
		{name: "buyer_cannot_create_property", caller: buyer, op: OpCreateProperty, want: false},
		{name: "anon_cannot_create_property", caller: anon, op: OpCreateProperty, want: false},

		{name: "owner_edits_property", caller: seller, op: OpEditProperty, ownerID: "seller-1", want: true},
		{name: "non_owner_cannot_edit", caller: seller, op: OpEditProperty, ownerID: "seller-2", want: false},
		{name: "buyer_cannot_edit_even_if_owner_matches", caller: buyer, op: OpEditProperty, ownerID: "buyer-1", want: false},

		{name: "owner_deletes_property", caller: seller, op: OpDeleteProperty, ownerID: "seller-1", want: true},
		{name: "non_owner_cannot_delete", caller: seller, op: OpDeleteProperty, ownerID: "seller-2", want: false},

		{name: "owner_views_bids", caller: seller, op: OpViewBids, ownerID: "seller-1", want: true},
		{name: "non_owner_cannot_view_bids", caller: seller, op: OpViewBids, ownerID: "seller-2", want: false},
		{name: "buyer_cannot_view_bids", caller: buyer, op: OpViewBids, ownerID: "buyer-1", want: false},

		{name: "buyer_places_bid", caller: buyer, op: OpPlaceBid, want: true},
		{name: "seller_cannot_place_bid", caller: seller, op: OpPlaceBid, want: false},
		{name: "anon_cannot_place_bid", caller: anon, op: OpPlaceBid, want: false},

		{name: "bidder_updates_own_bid", caller: buyer, op: OpUpdateBid, ownerID: "buyer-1", want: true},
		{name: "bidder_cannot_update_others_bid", caller: buyer, op: OpUpdateBid, ownerID: "buyer-2", want: false},
		{name: "bidder_cancels_own_bid", caller: buyer, op: OpCancelBid, ownerID: "buyer-1", want: true},
		{name: "bidder_cannot_cancel_others_bid", caller: buyer, op: OpCancelBid, ownerID: "buyer-2", want: false},
		{name: "anon_cannot_cancel", caller: anon, op: OpCancelBid, ownerID: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Allowed(tc.caller, tc.op, tc.ownerID))
		})
	}
}
