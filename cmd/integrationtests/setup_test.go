package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	bidding "property-bidding/internal/biddingService"
	"property-bidding/internal/clock"
	model "property-bidding/internal/models"
	property "property-bidding/internal/propertyService"
	"property-bidding/internal/repository"
	"property-bidding/internal/server"
)

var (
	sellerIdentity      = model.Identity{ID: "seller-1", Name: "Sam Seller", Role: model.RoleSeller}
	otherSellerIdentity = model.Identity{ID: "seller-2", Name: "Olga Owner", Role: model.RoleSeller}
	buyerIdentity       = model.Identity{ID: "buyer-1", Name: "Bella Buyer", Role: model.RoleBuyer}
	otherBuyerIdentity  = model.Identity{ID: "buyer-2", Name: "Boris Buyer", Role: model.RoleBuyer}

	windowStart = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	windowEnd   = windowStart.Add(24 * time.Hour)
)

// TestEnv bundles the full HTTP stack over the in-memory stores with a
// controllable clock, so tests can open and close bidding windows.
type TestEnv struct {
	Router *gin.Engine
	Clock  *clock.MockClock
	Repo   *repository.MemoryRepo
}

// SetupTestEnv initializes the router with the in-memory repository for
// integration testing. The clock starts inside the default bidding
// window.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	clk := &clock.MockClock{CurrentTime: windowStart.Add(time.Hour)}
	biddingService := bidding.NewBiddingService(repo, repo, clk)
	propertyService := property.NewPropertyService(repo)
	return &TestEnv{
		Router: server.SetupRouter(biddingService, propertyService),
		Clock:  clk,
		Repo:   repo,
	}
}

// ExecuteRequest executes an HTTP request as the given identity and
// returns the response recorder. A zero identity sends no identity
// headers.
func ExecuteRequest(t *testing.T, env *TestEnv, ident model.Identity, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if ident.ID != "" {
		req.Header.Set(server.HeaderUserID, ident.ID)
		req.Header.Set(server.HeaderUserName, ident.Name)
		req.Header.Set(server.HeaderUserRole, string(ident.Role))
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and parses the JSON
// envelope, returning the data payload when present.
func ExecuteRequestAndParse(t *testing.T, env *TestEnv, ident model.Identity, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, env, ident, method, url, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
		}
	}

	data, _ := resp["data"].(map[string]any)
	return data, w
}
