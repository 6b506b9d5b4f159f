package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmaintain/bm/internal/apiclient"
	"github.com/buildmaintain/bm/internal/config"
	"github.com/buildmaintain/bm/internal/types"
)

// fakeAPI is an in-memory stand-in for the platform API, speaking the same
// envelope the real server does.
type fakeAPI struct {
	router    *mux.Router
	srv       *httptest.Server
	listCalls atomic.Int64

	buildings []types.Building
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{router: mux.NewRouter()}
	f.buildings = []types.Building{
		{ID: "b1", Name: "Tower A", Address: "1 Dock Lane", Type: types.BuildingCommercial},
		{ID: "b2", Name: "Towerville", Address: "9 Hill Road", Type: types.BuildingResidential},
	}

	f.router.HandleFunc("/buildings", func(w http.ResponseWriter, r *http.Request) {
		f.listCalls.Add(1)
		writeEnvelope(w, f.buildings, len(f.buildings))
	}).Methods(http.MethodGet)

	f.router.HandleFunc("/buildings", func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		b := types.Building{ID: fmt.Sprintf("b%d", len(f.buildings)+1)}
		if name, ok := fields["name"].(string); ok {
			b.Name = name
		}
		f.buildings = append(f.buildings, b)
		writeEnvelope(w, b, 0)
	}).Methods(http.MethodPost)

	f.router.HandleFunc("/buildings/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		for _, b := range f.buildings {
			if b.ID == id {
				writeEnvelope(w, b, 0)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "building not found"})
	}).Methods(http.MethodGet)

	f.router.HandleFunc("/buildings/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		kept := f.buildings[:0]
		for _, b := range f.buildings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		f.buildings = kept
		writeEnvelope(w, json.RawMessage(`{}`), 0)
	}).Methods(http.MethodDelete)

	f.srv = httptest.NewServer(f.router)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *apiclient.Client {
	return apiclient.New(config.Config{
		APIURL:            f.srv.URL,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
	}, nil)
}

func writeEnvelope(w http.ResponseWriter, data any, count int) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func TestListUnwrapsEnvelope(t *testing.T) {
	f := newFakeAPI(t)
	gw := NewResource[types.Building, types.BuildingForm](f.client(), "/buildings")

	items, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Tower A", items[0].Name)
}

func TestListIsCachedUntilMutation(t *testing.T) {
	f := newFakeAPI(t)
	gw := NewResource[types.Building, types.BuildingForm](f.client(), "/buildings")
	ctx := context.Background()

	_, err := gw.List(ctx)
	require.NoError(t, err)
	_, err = gw.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.listCalls.Load(), "second list should come from cache")

	_, err = gw.CreateFields(ctx, map[string]any{"name": "Annex"})
	require.NoError(t, err)

	items, err := gw.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.listCalls.Load(), "mutation invalidates the cached list")
	assert.Len(t, items, 3)
}

func TestGetNotFoundIsHTTPError(t *testing.T) {
	f := newFakeAPI(t)
	gw := NewResource[types.Building, types.BuildingForm](f.client(), "/buildings")

	_, err := gw.Get(context.Background(), "nope")
	require.Error(t, err)
	var herr *apiclient.HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusNotFound, herr.StatusCode)
	assert.Equal(t, "building not found", herr.Message)
}

func TestEnvelopeFailureIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "duplicate unit"})
	}))
	defer srv.Close()

	client := apiclient.New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second, RequestsPerSecond: 100}, nil)
	gw := NewResource[types.Tenant, types.TenantForm](client, "/tenants")

	_, err := gw.CreateFields(context.Background(), map[string]any{"unit": "4B"})
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.Equal(t, "duplicate unit", err.Error())
}

func TestDeleteInvalidatesCache(t *testing.T) {
	f := newFakeAPI(t)
	gw := NewResource[types.Building, types.BuildingForm](f.client(), "/buildings")
	ctx := context.Background()

	_, err := gw.List(ctx)
	require.NoError(t, err)
	require.NoError(t, gw.Delete(ctx, "b1"))

	items, err := gw.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(2), f.listCalls.Load())
}

func TestBidCreatePostsDefaultedItems(t *testing.T) {
	router := mux.NewRouter()
	var body map[string]json.RawMessage
	bids := []types.Bid{{ID: "bid1", RFQID: "rfq0"}}
	router.HandleFunc("/bids", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, bids, len(bids))
	}).Methods(http.MethodGet)
	router.HandleFunc("/bids", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bids = append(bids, types.Bid{ID: "bid2", RFQID: "rfq1"})
		writeEnvelope(w, bids[len(bids)-1], 0)
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := apiclient.New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second, RequestsPerSecond: 100}, nil)
	gw := NewResource[types.Bid, types.BidForm](client, "/bids")
	ctx := context.Background()

	before, err := gw.List(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	form := types.NewBidForm()
	form.RFQID = "rfq1"
	form.Amount = 150000
	_, err = gw.Create(ctx, form)
	require.NoError(t, err)

	assert.JSONEq(t, `"rfq1"`, string(body["rfqId"]))
	assert.JSONEq(t, `150000`, string(body["amount"]))
	assert.JSONEq(t, `"INR"`, string(body["currency"]))
	assert.JSONEq(t, `30`, string(body["validityPeriod"]))
	assert.Equal(t, "[]", string(body["items"]), "empty item list goes out as [], never null")

	after, err := gw.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2, "create invalidates the cached list and the re-fetch sees the new bid")
}

func TestBidEvaluateHitsActionPath(t *testing.T) {
	router := mux.NewRouter()
	var gotBody types.BidEvaluationForm
	router.HandleFunc("/bids/{id}/evaluate", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, types.Bid{ID: mux.Vars(r)["id"], Status: types.BidUnderEvaluation}, 0)
	}).Methods(http.MethodPut)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := apiclient.New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second, RequestsPerSecond: 100}, nil)
	bids := &Bids{NewResource[types.Bid, types.BidForm](client, "/bids")}

	bid, err := bids.Evaluate(context.Background(), "bid7", types.BidEvaluationForm{
		Score: 82.5, PriceScore: 90, QualityScore: 80, DeliveryScore: 75, Notes: "solid",
	})
	require.NoError(t, err)
	assert.Equal(t, "bid7", bid.ID)
	assert.Equal(t, types.BidUnderEvaluation, bid.Status)
	assert.Equal(t, 82.5, gotBody.Score)
	assert.Equal(t, "solid", gotBody.Notes)
}

func TestUsersListByRole(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "facility_manager", r.URL.Query().Get("role"))
		writeEnvelope(w, []types.User{{ID: "u1", Role: types.RoleFacilityManager}}, 1)
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := apiclient.New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second, RequestsPerSecond: 100}, nil)
	users := &Users{NewResource[types.User, types.UserForm](client, "/users")}

	managers, err := users.ListByRole(context.Background(), types.RoleFacilityManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "u1", managers[0].ID)
}

func TestBOQExportReturnsBytesAndFilename(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/boqs/{id}/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="fitout-boq.xlsx"`)
		_, _ = w.Write([]byte("PK\x03\x04fake-xlsx"))
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := apiclient.New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second, RequestsPerSecond: 100}, nil)
	boqs := &BOQs{NewResource[types.BOQ, types.BOQForm](client, "/boqs")}

	data, name, err := boqs.Export(context.Background(), "boq3")
	require.NoError(t, err)
	assert.Equal(t, "fitout-boq.xlsx", name)
	assert.True(t, len(data) > 4)
}

func TestAuthLogin(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds types.LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "fm@example.com", creds.Email)
		writeEnvelope(w, types.AuthSession{
			User:  types.User{ID: "u1", Email: creds.Email, Role: types.RoleFacilityManager},
			Token: "jwt-token",
		}, 0)
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := apiclient.New(config.Config{APIURL: srv.URL, Timeout: 5 * time.Second, RequestsPerSecond: 100}, nil)
	auth := NewAuth(client)

	session, err := auth.Login(context.Background(), types.LoginCredentials{Email: "fm@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, types.RoleFacilityManager, session.User.Role)
}
