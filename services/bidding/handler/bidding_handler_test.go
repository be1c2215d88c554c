package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"property-bidding/internal/bidderrors"
	model "property-bidding/internal/models"
	"property-bidding/services/bidding/helpers"
)

var (
	testBuyer  = model.Identity{ID: "buyer-1", Name: "Bella Buyer", Role: model.RoleBuyer}
	testSeller = model.Identity{ID: "seller-1", Name: "Sam Seller", Role: model.RoleSeller}
	placedAt   = time.Date(2026, time.March, 1, 12, 30, 0, 0, time.UTC)
)

// identityInjector stands in for the identity middleware so handlers
// see an authenticated caller.
func identityInjector(ident model.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.IdentityKey, ident)
		c.Next()
	}
}

func testBid(id int64) model.Bid {
	return model.Bid{
		ID:         id,
		PropertyID: 1,
		BidderID:   testBuyer.ID,
		BidderName: testBuyer.Name,
		Amount:     decimal.RequireFromString("100.50"),
		TimePlaced: placedAt,
		IsActive:   true,
	}
}

func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", identityInjector(testBuyer), handler.PlaceBidHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{PropertyID: 1, Amount: "100.50"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(1), testBuyer, decimal.RequireFromString("100.50")).
					Return(testBid(7), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, float64(7), data["bid_id"])
				require.Equal(t, float64(1), data["property_id"])
				require.Equal(t, "buyer-1", data["bidder_id"])
				require.Equal(t, "100.5", data["amount"])
				require.Equal(t, true, data["is_active"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_property_id",
			requestBody:    helpers.PlaceBidRequest{Amount: "100"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			requestBody:    helpers.PlaceBidRequest{PropertyID: 1},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "malformed_amount",
			requestBody:    helpers.PlaceBidRequest{PropertyID: 1, Amount: "lots"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:        "service_zero_amount",
			requestBody: helpers.PlaceBidRequest{PropertyID: 1, Amount: "0"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(1), testBuyer, decimal.RequireFromString("0")).
					Return(model.Bid{}, bidderrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:        "service_property_not_found",
			requestBody: helpers.PlaceBidRequest{PropertyID: 99, Amount: "100"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(99), testBuyer, decimal.RequireFromString("100")).
					Return(model.Bid{}, bidderrors.ErrPropertyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "property not found",
		},
		{
			name:        "service_bidding_closed",
			requestBody: helpers.PlaceBidRequest{PropertyID: 1, Amount: "100"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(1), testBuyer, decimal.RequireFromString("100")).
					Return(model.Bid{}, bidderrors.ErrBiddingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bidding is not open",
		},
		{
			name:        "service_duplicate_active_bid",
			requestBody: helpers.PlaceBidRequest{PropertyID: 1, Amount: "100"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(1), testBuyer, decimal.RequireFromString("100")).
					Return(model.Bid{}, bidderrors.ErrDuplicateActiveBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "an active bid already exists",
		},
		{
			name:        "service_forbidden",
			requestBody: helpers.PlaceBidRequest{PropertyID: 1, Amount: "100"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(1), testBuyer, decimal.RequireFromString("100")).
					Return(model.Bid{}, bidderrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "operation not permitted",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.PlaceBidRequest{PropertyID: 1, Amount: "100"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), int64(1), testBuyer, decimal.RequireFromString("100")).
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

func TestUpdateBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/bids/:bid_id", identityInjector(testBuyer), handler.UpdateBidHandler)

	tests := []struct {
		name           string
		bidID          string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			bidID:       "7",
			requestBody: helpers.UpdateBidRequest{Amount: "200"},
			mockSetup: func() {
				updated := testBid(7)
				updated.Amount = decimal.RequireFromString("200")
				mockService.EXPECT().
					UpdateBid(gomock.Any(), int64(7), testBuyer, decimal.RequireFromString("200")).
					Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid updated successfully",
		},
		{
			name:           "malformed_bid_id",
			bidID:          "abc",
			requestBody:    helpers.UpdateBidRequest{Amount: "200"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:           "missing_amount",
			bidID:          "7",
			requestBody:    helpers.UpdateBidRequest{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "bid_not_owned_or_missing",
			bidID:       "8",
			requestBody: helpers.UpdateBidRequest{Amount: "200"},
			mockSetup: func() {
				mockService.EXPECT().
					UpdateBid(gomock.Any(), int64(8), testBuyer, decimal.RequireFromString("200")).
					Return(model.Bid{}, bidderrors.ErrNotFoundOrForbidden)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
		{
			name:        "window_closed",
			bidID:       "7",
			requestBody: helpers.UpdateBidRequest{Amount: "200"},
			mockSetup: func() {
				mockService.EXPECT().
					UpdateBid(gomock.Any(), int64(7), testBuyer, decimal.RequireFromString("200")).
					Return(model.Bid{}, bidderrors.ErrBiddingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bidding is not open",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/bids/"+tc.bidID, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestCancelBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/bids/:bid_id", identityInjector(testBuyer), handler.CancelBidHandler)

	tests := []struct {
		name           string
		bidID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success",
			bidID: "7",
			mockSetup: func() {
				mockService.EXPECT().
					CancelBid(gomock.Any(), int64(7), testBuyer).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid cancelled successfully",
		},
		{
			name:           "malformed_bid_id",
			bidID:          "0",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:  "bid_not_owned_or_missing",
			bidID: "8",
			mockSetup: func() {
				mockService.EXPECT().
					CancelBid(gomock.Any(), int64(8), testBuyer).
					Return(bidderrors.ErrNotFoundOrForbidden)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
		{
			name:  "window_closed",
			bidID: "7",
			mockSetup: func() {
				mockService.EXPECT().
					CancelBid(gomock.Any(), int64(7), testBuyer).
					Return(bidderrors.ErrBiddingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bidding is not open",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/bids/"+tc.bidID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestViewBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/properties/:property_id/bids", identityInjector(testSeller), handler.ViewBidsHandler)

	tests := []struct {
		name           string
		propertyID     string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		expectedCount  int
	}{
		{
			name:       "success_two_bids",
			propertyID: "1",
			mockSetup: func() {
				mockService.EXPECT().
					ViewBids(gomock.Any(), int64(1), testSeller).
					Return([]model.Bid{testBid(7), testBid(8)}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			expectedCount:  2,
		},
		{
			name:       "success_no_bids",
			propertyID: "1",
			mockSetup: func() {
				mockService.EXPECT().
					ViewBids(gomock.Any(), int64(1), testSeller).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			expectedCount:  0,
		},
		{
			name:       "not_owner",
			propertyID: "2",
			mockSetup: func() {
				mockService.EXPECT().
					ViewBids(gomock.Any(), int64(2), testSeller).
					Return(nil, bidderrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "operation not permitted",
		},
		{
			name:       "property_not_found",
			propertyID: "99",
			mockSetup: func() {
				mockService.EXPECT().
					ViewBids(gomock.Any(), int64(99), testSeller).
					Return(nil, bidderrors.ErrPropertyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "property not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/properties/"+tc.propertyID+"/bids", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusOK {
				data := resp["data"].([]any)
				require.Len(t, data, tc.expectedCount, "empty lists serialize as [], not null")
			}
		})
	}
}

func TestWinningBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/properties/:property_id/winning", identityInjector(testBuyer), handler.WinningBidHandler)

	t.Run("winner_resolved", func(t *testing.T) {
		winner := testBid(7)
		winner.IsWinningBid = true
		mockService.EXPECT().
			ResolveWinner(gomock.Any(), int64(1)).
			Return(&winner, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/1/winning", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "winning bid retrieved successfully")
		data := resp["data"].(map[string]any)
		require.Equal(t, float64(7), data["bid_id"])
		require.Equal(t, true, data["is_winning_bid"])
	})

	t.Run("no_winner_yet", func(t *testing.T) {
		mockService.EXPECT().
			ResolveWinner(gomock.Any(), int64(1)).
			Return(nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/1/winning", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "no winning bid")
		require.Nil(t, resp["data"])
	})

	t.Run("property_not_found", func(t *testing.T) {
		mockService.EXPECT().
			ResolveWinner(gomock.Any(), int64(99)).
			Return(nil, bidderrors.ErrPropertyNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/99/winning", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResolveWinnerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/properties/:property_id/resolve", identityInjector(testSeller), handler.ResolveWinnerHandler)

	t.Run("winner_resolved", func(t *testing.T) {
		winner := testBid(7)
		winner.IsWinningBid = true
		mockService.EXPECT().
			ResolveWinner(gomock.Any(), int64(1)).
			Return(&winner, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/properties/1/resolve", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "winner resolved successfully")
	})

	t.Run("nothing_to_resolve", func(t *testing.T) {
		mockService.EXPECT().
			ResolveWinner(gomock.Any(), int64(1)).
			Return(nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/properties/1/resolve", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "no winner resolved")
	})
}
