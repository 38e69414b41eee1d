package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/pkg/api"
	"adminctl/pkg/models"
)

func newUploadServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/uploads/single", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		file, header, err := req.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)

		json.NewEncoder(w).Encode(map[string]models.StoredFile{"file": {
			Path:        "/uploads/" + header.Filename,
			FileName:    header.Filename,
			Size:        int64(len(content)),
			ContentType: "text/plain",
		}})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/uploads/multiple", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		headers := req.MultipartForm.File["files"]
		stored := make([]models.StoredFile, 0, len(headers))
		for _, h := range headers {
			stored = append(stored, models.StoredFile{
				Path:     "/uploads/" + h.Filename,
				FileName: h.Filename,
				Size:     h.Size,
			})
		}
		json.NewEncoder(w).Encode(map[string][]models.StoredFile{"files": stored})
	}).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestUploadSingle(t *testing.T) {
	srv := newUploadServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	stored, err := c.UploadSingle(context.Background(), "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/notes.txt", stored.Path)
	assert.Equal(t, "notes.txt", stored.FileName)
	assert.Equal(t, int64(5), stored.Size)
}

func TestUploadMultiple(t *testing.T) {
	srv := newUploadServer(t)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	stored, err := c.UploadMultiple(context.Background(), []api.UploadFile{
		{Name: "a.txt", Reader: strings.NewReader("aa")},
		{Name: "b.txt", Reader: strings.NewReader("bbb")},
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "a.txt", stored[0].FileName)
	assert.Equal(t, "b.txt", stored[1].FileName)
}

func TestUploadFailureIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := api.NewClient(api.Config{BaseURL: srv.URL})

	_, err := c.UploadSingle(context.Background(), "x.txt", strings.NewReader("x"))
	var transport *api.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, http.StatusBadGateway, transport.Status)
}
