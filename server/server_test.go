package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-saas-server/internal/config"
	"github.com/jrsteele09/go-saas-server/server"
	"github.com/jrsteele09/go-saas-server/store"
	"github.com/stretchr/testify/require"
)

const (
	testPassword = "s3cret-password"
)

// testFixture holds the wired server and helpers for driving it over HTTP.
type testFixture struct {
	t   *testing.T
	srv *server.Server
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	srv, err := server.Bootstrap(config.New(), store.NewMemStore(server.UniqueIndexes()))
	require.NoError(t, err)
	return &testFixture{t: t, srv: srv}
}

// do issues a request against the server mux. A non-empty token is sent as
// a bearer Authorization header; a non-nil body is JSON-encoded.
func (f *testFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	f.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded JSON body into v.
func (f *testFixture) decode(rec *httptest.ResponseRecorder, v any) {
	f.t.Helper()
	require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), v))
}

// signup registers an account and returns its token and account id.
func (f *testFixture) signup(name, email string) (token, userID string) {
	f.t.Helper()

	rec := f.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": testPassword,
	})
	require.Equal(f.t, http.StatusCreated, rec.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"_id"`
		} `json:"user"`
	}
	f.decode(rec, &body)
	require.NotEmpty(f.t, body.Token)
	require.NotEmpty(f.t, body.User.ID)
	return body.Token, body.User.ID
}

// createOrg creates an org as the token holder and returns its id.
func (f *testFixture) createOrg(token, name string) string {
	f.t.Helper()

	rec := f.do(http.MethodPost, "/orgs", token, map[string]string{"name": name, "slug": name})
	require.Equal(f.t, http.StatusCreated, rec.Code)

	var org struct {
		ID string `json:"_id"`
	}
	f.decode(rec, &org)
	require.NotEmpty(f.t, org.ID)
	return org.ID
}

func TestHealthEndpoints(t *testing.T) {
	f := setupTestFixture(t)

	t.Run("root reports app liveness", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			App    string `json:"app"`
			Status string `json:"status"`
		}
		f.decode(rec, &body)
		require.Equal(t, "ok", body.Status)
		require.NotEmpty(t, body.App)
	})

	t.Run("store probe lists collections", func(t *testing.T) {
		f.signup("probe", "probe@example.com")

		rec := f.do(http.MethodGet, "/test", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Status      string   `json:"status"`
			Store       string   `json:"store"`
			Collections []string `json:"collections"`
		}
		f.decode(rec, &body)
		require.Equal(t, "ok", body.Status)
		require.Equal(t, "reachable", body.Store)
		require.Contains(t, body.Collections, "account")
	})
}

func TestSignup(t *testing.T) {
	f := setupTestFixture(t)

	t.Run("response redacts credential material", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/auth/signup", "", map[string]string{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": testPassword,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		f.decode(rec, &body)
		require.NotEmpty(t, body["token"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		require.NotContains(t, user, "password_hash")
		require.NotContains(t, user, "salt")
		require.NotContains(t, user, "password")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/auth/signup", "", map[string]string{
			"name":     "Ada Again",
			"email":    "ada@example.com",
			"password": "another-password",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Detail string `json:"detail"`
		}
		f.decode(rec, &body)
		require.Equal(t, "email already registered", body.Detail)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "no-pass@example.com"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	f := setupTestFixture(t)
	signupToken, _ := f.signup("Grace", "grace@example.com")

	t.Run("valid credentials mint a fresh token", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "grace@example.com",
			"password": testPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Token string `json:"token"`
		}
		f.decode(rec, &body)
		require.NotEmpty(t, body.Token)
		require.NotEqual(t, signupToken, body.Token)

		// Both sessions stay usable concurrently.
		require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/orgs", signupToken, nil).Code)
		require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/orgs", body.Token, nil).Code)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrongPass := f.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "grace@example.com",
			"password": "wrong",
		})
		unknown := f.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": testPassword,
		})
		require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	})
}

func TestAuthRequired(t *testing.T) {
	f := setupTestFixture(t)

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/orgs", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/orgs", "not-a-real-token", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrganizations(t *testing.T) {
	f := setupTestFixture(t)
	ownerToken, _ := f.signup("Owner", "owner@example.com")
	memberToken, memberID := f.signup("Member", "member@example.com")
	outsiderToken, _ := f.signup("Outsider", "outsider@example.com")
	orgID := f.createOrg(ownerToken, "acme")

	t.Run("creator appears as owner member", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/orgs/"+orgID+"/members", ownerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var members []struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		}
		f.decode(rec, &members)
		require.Len(t, members, 1)
		require.Equal(t, "owner", members[0].Role)
	})

	t.Run("owner invites with default member role", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/orgs/"+orgID+"/invite", ownerToken, map[string]string{"user_id": memberID})
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Membership struct {
				Role string `json:"role"`
			} `json:"membership"`
			Existing bool `json:"existing"`
		}
		f.decode(rec, &body)
		require.False(t, body.Existing)
		require.Equal(t, "member", body.Membership.Role)
	})

	t.Run("repeat invite is idempotent and keeps the role", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/orgs/"+orgID+"/invite", ownerToken, map[string]string{
			"user_id": memberID,
			"role":    "admin",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Membership struct {
				Role string `json:"role"`
			} `json:"membership"`
			Existing bool `json:"existing"`
		}
		f.decode(rec, &body)
		require.True(t, body.Existing)
		require.Equal(t, "member", body.Membership.Role)
	})

	t.Run("plain member cannot invite", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/orgs/"+orgID+"/invite", memberToken, map[string]string{"user_id": "someone"})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-member cannot list members", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/orgs/"+orgID+"/members", outsiderToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("member sees the org in their listing", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/orgs", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var listed []struct {
			ID string `json:"_id"`
		}
		f.decode(rec, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, orgID, listed[0].ID)
	})
}

func TestBillingEndpoints(t *testing.T) {
	f := setupTestFixture(t)
	ownerToken, _ := f.signup("Owner", "owner@example.com")
	memberToken, memberID := f.signup("Member", "member@example.com")
	outsiderToken, _ := f.signup("Outsider", "outsider@example.com")
	orgID := f.createOrg(ownerToken, "acme")

	rec := f.do(http.MethodPost, "/orgs/"+orgID+"/invite", ownerToken, map[string]string{"user_id": memberID})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("default plans are seeded", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/plans", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var plans []struct {
			Key string `json:"key"`
		}
		f.decode(rec, &plans)
		keys := make([]string, 0, len(plans))
		for _, p := range plans {
			keys = append(keys, p.Key)
		}
		require.Contains(t, keys, "starter")
		require.Contains(t, keys, "pro")
		require.Contains(t, keys, "scale")
	})

	t.Run("duplicate plan key conflicts", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/plans", ownerToken, map[string]any{
			"key":           "starter",
			"name":          "Starter Again",
			"price_monthly": 5.0,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("subscribe then switch patches the same row", func(t *testing.T) {
		first := f.do(http.MethodPost, "/orgs/"+orgID+"/subscription", ownerToken, map[string]string{"plan_key": "starter"})
		require.Equal(t, http.StatusOK, first.Code)

		var sub struct {
			ID      string `json:"_id"`
			PlanKey string `json:"plan_key"`
		}
		f.decode(first, &sub)
		require.Equal(t, "starter", sub.PlanKey)

		second := f.do(http.MethodPost, "/orgs/"+orgID+"/subscription", ownerToken, map[string]string{"plan_key": "pro"})
		require.Equal(t, http.StatusOK, second.Code)

		var switched struct {
			ID      string `json:"_id"`
			PlanKey string `json:"plan_key"`
		}
		f.decode(second, &switched)
		require.Equal(t, sub.ID, switched.ID)
		require.Equal(t, "pro", switched.PlanKey)
	})

	t.Run("any member reads the subscription", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/orgs/"+orgID+"/subscription", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("member cannot subscribe", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/orgs/"+orgID+"/subscription", memberToken, map[string]string{"plan_key": "scale"})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown plan is 404", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/orgs/"+orgID+"/subscription", ownerToken, map[string]string{"plan_key": "platinum"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("projects are org scoped", func(t *testing.T) {
		created := f.do(http.MethodPost, "/orgs/"+orgID+"/projects", ownerToken, map[string]string{
			"name":        "warehouse",
			"description": "inventory sync",
		})
		require.Equal(t, http.StatusCreated, created.Code)

		listed := f.do(http.MethodGet, "/orgs/"+orgID+"/projects", memberToken, nil)
		require.Equal(t, http.StatusOK, listed.Code)

		var projects []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		}
		f.decode(listed, &projects)
		require.Len(t, projects, 1)
		require.Equal(t, "warehouse", projects[0].Name)
		require.Equal(t, "active", projects[0].Status)

		denied := f.do(http.MethodGet, "/orgs/"+orgID+"/projects", outsiderToken, nil)
		require.Equal(t, http.StatusForbidden, denied.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	f := setupTestFixture(t)
	token, _ := f.signup("Curator", "curator@example.com")

	created := f.do(http.MethodPost, "/categories", token, map[string]string{
		"slug":  "electronics",
		"title": "Electronics",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	created = f.do(http.MethodPost, "/products", token, map[string]any{
		"sku":           "CAM-100",
		"title":         "Trail Camera",
		"category_slug": "electronics",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	t.Run("catalog reads are public", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/categories", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, "/products?q=trail", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []struct {
			SKU string `json:"sku"`
		}
		f.decode(rec, &products)
		require.Len(t, products, 1)
		require.Equal(t, "CAM-100", products[0].SKU)
	})

	t.Run("catalog writes require a token", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/categories", "", map[string]string{"slug": "outdoors"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("offer for unknown product rejected", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/offers", token, map[string]any{
			"product_sku": "NOPE-1",
			"vendor":      "shoply",
			"price":       10.0,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("best price includes shipping", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/offers", token, map[string]any{
			"product_sku": "CAM-100",
			"vendor":      "cheap-base",
			"price":       90.0,
			"shipping":    15.0,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do(http.MethodPost, "/offers", token, map[string]any{
			"product_sku": "CAM-100",
			"vendor":      "free-shipping-co",
			"price":       100.0,
			"shipping":    0.0,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do(http.MethodGet, "/offers/CAM-100", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Items []struct {
				Vendor string `json:"vendor"`
			} `json:"items"`
			Best struct {
				Vendor   string  `json:"vendor"`
				Total    float64 `json:"total"`
				Currency string  `json:"currency"`
			} `json:"best"`
		}
		f.decode(rec, &body)
		require.Len(t, body.Items, 2)
		require.Equal(t, "free-shipping-co", body.Best.Vendor)
		require.Equal(t, 100.0, body.Best.Total)
		require.Equal(t, "USD", body.Best.Currency)
	})

	t.Run("favorites are idempotent per user", func(t *testing.T) {
		first := f.do(http.MethodPost, "/favorites", token, map[string]string{"product_sku": "CAM-100"})
		require.Equal(t, http.StatusCreated, first.Code)

		repeat := f.do(http.MethodPost, "/favorites", token, map[string]string{"product_sku": "CAM-100"})
		require.Equal(t, http.StatusOK, repeat.Code)

		var body struct {
			Existing bool `json:"existing"`
		}
		f.decode(repeat, &body)
		require.True(t, body.Existing)

		listed := f.do(http.MethodGet, "/favorites", token, nil)
		require.Equal(t, http.StatusOK, listed.Code)

		var favorites []struct {
			ProductSKU string `json:"product_sku"`
		}
		f.decode(listed, &favorites)
		require.Len(t, favorites, 1)
		require.Equal(t, "CAM-100", favorites[0].ProductSKU)
	})
}
