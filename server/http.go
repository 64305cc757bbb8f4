package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklestore/api"
)

const (
	// maxRequestBytes bounds the size of a store request body
	maxRequestBytes = 64 << 20

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// RootResponse is returned by GET /root. LeafCount is the size of the stored
// batch, which includes any padding the client added.
type RootResponse struct {
	Root      string `json:"root"`
	LeafCount uint64 `json:"leaf_count"`
}

// Handler serves a Coordinator over HTTP
type Handler struct {
	log   logger.Logger
	coord *Coordinator
	mux   *http.ServeMux
}

func NewHandler(log logger.Logger, coord *Coordinator) *Handler {
	h := &Handler{log: log, coord: coord, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST /store", h.store)
	h.mux.HandleFunc("GET /fetch", h.fetch)
	h.mux.HandleFunc("GET /root", h.root)
	h.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) store(w http.ResponseWriter, r *http.Request) {
	var req api.StoreRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.coord.AddFiles(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// fetch accepts the index either as the file_index query parameter or as a
// JSON FetchRequest body. The query parameter wins when both are present.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	var req api.FetchRequest

	if q := r.URL.Query().Get("file_index"); q != "" {
		i, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			h.writeError(w, fmt.Errorf("%w: file_index %q: %w", api.ErrInvalidRequest, q, err))
			return
		}
		req.FileIndex = i
	} else if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.coord.FetchFile(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	root, count, err := h.coord.Root(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, RootResponse{Root: root, LeafCount: count})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	kind := api.KindOf(err)
	h.log.Infof("request failed: %s: %v", kind, err)
	h.writeJSON(w, kind.HTTPStatus(), api.ErrorResponse{Error: err.Error(), Kind: kind})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Infof("writing response: %v", err)
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decoding body: %w", api.ErrInvalidRequest, err)
	}
	return nil
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts the
// server down gracefully.
func ListenAndServe(ctx context.Context, log logger.Logger, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Infof("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
