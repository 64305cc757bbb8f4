package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forestrie/go-merklestore/api"
	"github.com/forestrie/go-merklestore/merkle"
	"github.com/forestrie/go-merklestore/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := testLogger(t)
	c, err := NewCoordinator(log, storage.NewMemStore())
	require.NoError(t, err)
	srv := httptest.NewServer(NewHandler(log, c))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandler_StoreFetch(t *testing.T) {
	srv := newTestServer(t)
	req := storeRequest("0", "1", "2", "3")

	var stored api.StoreResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/store", req, &stored)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, katRoot, stored.Root)

	var fetched api.FetchResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/fetch", api.FetchRequest{FileIndex: 2}, &fetched)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2", fetched.File)
	assert.True(t, merkle.VerifyInclusion(stored.Root, req.Hashes[2], 2, fetched.Proof))

	var byQuery api.FetchResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/fetch?file_index=2", nil, &byQuery)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fetched, byQuery)

	var root RootResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/root", nil, &root)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, RootResponse{Root: katRoot, LeafCount: 4}, root)
}

func TestHandler_Errors(t *testing.T) {
	srv := newTestServer(t)
	status := doJSON(t, http.MethodPost, srv.URL+"/store", storeRequest("0", "1"), nil)
	require.Equal(t, http.StatusOK, status)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantKind   api.ErrorKind
	}{
		{"not padded", http.MethodPost, "/store", storeRequest("a", "b", "c"), http.StatusBadRequest, api.KindInvalidRequest},
		{"out of range", http.MethodGet, "/fetch", api.FetchRequest{FileIndex: 2}, http.StatusNotFound, api.KindIndexOutOfRange},
		{"bad query", http.MethodGet, "/fetch?file_index=-1", nil, http.StatusBadRequest, api.KindInvalidRequest},
		{"no body", http.MethodGet, "/fetch", nil, http.StatusBadRequest, api.KindInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp api.ErrorResponse
			status := doJSON(t, tt.method, srv.URL+tt.path, tt.body, &errResp)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, errResp.Kind)
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestHandler_UnknownFieldsRejected(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/store", "application/json",
		strings.NewReader(`{"files":["a"],"hashes":["x"],"extra":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Healthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
