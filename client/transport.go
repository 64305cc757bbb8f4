package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/forestrie/go-merklestore/api"
)

const defaultHTTPTimeout = 30 * time.Second

// Transport carries requests to a merklestore server
type Transport interface {
	Store(ctx context.Context, req api.StoreRequest) (api.StoreResponse, error)
	Fetch(ctx context.Context, req api.FetchRequest) (api.FetchResponse, error)
}

// Backend is implemented by the server coordinator. Wrapping one with
// NewLocalTransport runs client and server in the same process.
type Backend interface {
	AddFiles(ctx context.Context, req api.StoreRequest) (api.StoreResponse, error)
	FetchFile(ctx context.Context, req api.FetchRequest) (api.FetchResponse, error)
}

type localTransport struct {
	backend Backend
}

func NewLocalTransport(backend Backend) Transport {
	return &localTransport{backend: backend}
}

func (t *localTransport) Store(ctx context.Context, req api.StoreRequest) (api.StoreResponse, error) {
	return t.backend.AddFiles(ctx, req)
}

func (t *localTransport) Fetch(ctx context.Context, req api.FetchRequest) (api.FetchResponse, error) {
	return t.backend.FetchFile(ctx, req)
}

// HTTPTransport talks JSON to the server's /store and /fetch endpoints.
// Errors reported by the server are returned wrapping the matching api
// sentinel.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTransport returns a transport for the server at baseURL. A nil
// client selects a client with a default timeout.
func NewHTTPTransport(baseURL string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTPTransport{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (t *HTTPTransport) Store(ctx context.Context, req api.StoreRequest) (api.StoreResponse, error) {
	var resp api.StoreResponse
	err := t.do(ctx, http.MethodPost, "/store", req, &resp)
	return resp, err
}

func (t *HTTPTransport) Fetch(ctx context.Context, req api.FetchRequest) (api.FetchResponse, error) {
	var resp api.FetchResponse
	err := t.do(ctx, http.MethodGet, "/fetch", req, &resp)
	return resp, err
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %w", ErrTransport, path, err)
	}
	return nil
}

// decodeError restores the error taxonomy from a failed response
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var errResp api.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err != nil || errResp.Kind == "" {
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if sentinel := errResp.Kind.Sentinel(); sentinel != nil {
		return fmt.Errorf("%w: server: %s", sentinel, errResp.Error)
	}
	return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, errResp.Error)
}
