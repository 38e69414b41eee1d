package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/pkg/api"
	"adminctl/pkg/models"
)

// newUserServer routes a minimal in-memory user API the way the real server
// lays out its endpoints.
func newUserServer(t *testing.T) *httptest.Server {
	t.Helper()

	users := map[string]models.User{
		"1": {ID: 1, Name: "ada"},
		"2": {ID: 2, Name: "grace"},
	}
	next := int64(3)

	r := mux.NewRouter()
	r.HandleFunc("/api/users", func(w http.ResponseWriter, req *http.Request) {
		out := []models.User{users["1"], users["2"]}
		json.NewEncoder(w).Encode(out)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/users", func(w http.ResponseWriter, req *http.Request) {
		var payload models.CreateUser
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		if payload.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "name is required"})
			return
		}
		u := models.User{ID: next, Name: payload.Name}
		next++
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(u)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		u, ok := users[mux.Vars(req)["id"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(u)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		u, ok := users[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var payload models.UpdateUser
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		if payload.Name != nil {
			u.Name = *payload.Name
		}
		users[id] = u
		json.NewEncoder(w).Encode(u)
	}).Methods(http.MethodPut)

	r.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		if _, ok := users[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(users, id)
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestListUsers(t *testing.T) {
	srv := newUserServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	users, err := c.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ada", users[0].Name)
}

func TestGetUserNotFound(t *testing.T) {
	srv := newUserServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	_, err := c.Users().Get(context.Background(), 42)
	require.Error(t, err)

	var notFound *api.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
	assert.Equal(t, "42", notFound.ID)
}

func TestCreateUser(t *testing.T) {
	srv := newUserServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	u, err := c.Users().Create(context.Background(), models.CreateUser{Name: "lin"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "lin", u.Name)
}

func TestCreateUserValidationError(t *testing.T) {
	srv := newUserServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	_, err := c.Users().Create(context.Background(), models.CreateUser{})
	require.Error(t, err)

	var invalid *api.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "name is required", invalid.Reason)
	assert.Equal(t, http.StatusBadRequest, invalid.Status)
}

func TestUpdateUser(t *testing.T) {
	srv := newUserServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	name := "ada lovelace"
	u, err := c.Users().Update(context.Background(), 1, models.UpdateUser{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "ada lovelace", u.Name)
}

func TestUpdatePayloadOmitsUnsetFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.Product{ID: 1})
	}))
	t.Cleanup(srv.Close)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	price := int64(12)
	_, err := c.Products().Update(context.Background(), 1, models.UpdateProduct{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"price": float64(12)}, body)
}

func TestDeleteUser(t *testing.T) {
	srv := newUserServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	require.NoError(t, c.Users().Delete(context.Background(), 2))

	// A repeated delete of the same id is not absorbed by the client.
	err := c.Users().Delete(context.Background(), 2)
	var notFound *api.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestServerErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	_, err := c.Users().List(context.Background())
	var transport *api.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, http.StatusInternalServerError, transport.Status)
}

func TestConnectionFailureIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	srv.Close()
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	_, err := c.Users().List(context.Background())
	var transport *api.TransportError
	require.ErrorAs(t, err, &transport)
	require.Error(t, transport.Err)
}

func TestTimeoutIsTransport(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	c := api.NewClient(api.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	_, err := c.Users().List(context.Background())
	var transport *api.TransportError
	require.ErrorAs(t, err, &transport)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/", req.URL.Path)
		json.NewEncoder(w).Encode(models.Health{Status: true, Message: "ok"})
	}))
	t.Cleanup(srv.Close)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, h.Status)
	assert.Equal(t, "ok", h.Message)
}

func TestExtraHeadersAreSent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got = req.Header.Get("X-Request-Source")
		json.NewEncoder(w).Encode([]models.User{})
	}))
	t.Cleanup(srv.Close)

	header := http.Header{}
	header.Set("X-Request-Source", "adminctl")
	c := api.NewClient(api.Config{BaseURL: srv.URL, Header: header})

	_, err := c.Users().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "adminctl", got)
}
