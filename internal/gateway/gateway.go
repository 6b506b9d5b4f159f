// Package gateway translates domain operations into REST calls and unwraps
// the server's response envelope. One typed gateway exists per entity; all
// of them share the generic Resource implementation.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/buildmaintain/bm/internal/apiclient"
)

// listCacheTTL bounds how long a cached list may be served. Mutations
// through the same gateway invalidate the entry immediately; the TTL only
// covers writes made elsewhere.
const listCacheTTL = 30 * time.Second

// envelope is the uniform wrapper every endpoint response uses.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// APIError is a 2xx response whose envelope reports success=false.
type APIError struct {
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return "api reported failure"
	}
	return e.Message
}

// IsAPIError reports whether err is an envelope-level failure.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// call performs one request and unwraps the envelope.
func call[T any](ctx context.Context, c *apiclient.Client, method, path string, in any) (T, error) {
	var env envelope[T]
	var zero T
	if err := c.JSON(ctx, method, path, in, &env); err != nil {
		return zero, err
	}
	if !env.Success {
		return zero, &APIError{Message: env.Message}
	}
	return env.Data, nil
}

// Resource is the generic gateway behind every entity: typed list/get/create
// plus field-level update and delete against a fixed base path.
type Resource[T, F any] struct {
	client *apiclient.Client
	base   string
	cache  *sturdyc.Client[[]T]
}

// NewResource builds a gateway for one collection, e.g. "/buildings".
// Lists are cached with request coalescing so concurrent pages hitting the
// same collection share a single fetch.
func NewResource[T, F any](client *apiclient.Client, base string) *Resource[T, F] {
	return &Resource[T, F]{
		client: client,
		base:   base,
		cache:  sturdyc.New[[]T](1024, 8, listCacheTTL, 10),
	}
}

// List fetches the full collection.
func (r *Resource[T, F]) List(ctx context.Context) ([]T, error) {
	return r.cache.GetOrFetch(ctx, r.base, func(ctx context.Context) ([]T, error) {
		return call[[]T](ctx, r.client, http.MethodGet, r.base, nil)
	})
}

// Get fetches a single record by id.
func (r *Resource[T, F]) Get(ctx context.Context, id string) (T, error) {
	return call[T](ctx, r.client, http.MethodGet, r.base+"/"+id, nil)
}

// Create submits a typed form. Repeating a create call creates a duplicate;
// no idempotency key is used.
func (r *Resource[T, F]) Create(ctx context.Context, form F) (T, error) {
	out, err := call[T](ctx, r.client, http.MethodPost, r.base, form)
	if err == nil {
		r.Invalidate()
	}
	return out, err
}

// CreateFields submits a create from loose dialog fields.
func (r *Resource[T, F]) CreateFields(ctx context.Context, fields map[string]any) (T, error) {
	out, err := call[T](ctx, r.client, http.MethodPost, r.base, fields)
	if err == nil {
		r.Invalidate()
	}
	return out, err
}

// UpdateFields patches a record. Fields omitted from the patch retain their
// server value.
func (r *Resource[T, F]) UpdateFields(ctx context.Context, id string, fields map[string]any) (T, error) {
	out, err := call[T](ctx, r.client, http.MethodPut, r.base+"/"+id, fields)
	if err == nil {
		r.Invalidate()
	}
	return out, err
}

// Delete removes a record. Where the entity carries isActive this is a soft
// delete server-side.
func (r *Resource[T, F]) Delete(ctx context.Context, id string) error {
	_, err := call[json.RawMessage](ctx, r.client, http.MethodDelete, r.base+"/"+id, nil)
	if err == nil {
		r.Invalidate()
	}
	return err
}

// Invalidate drops the cached list so the next List hits the server.
func (r *Resource[T, F]) Invalidate() {
	r.cache.Delete(r.base)
}

// Action targets a sub-resource path like /bids/{id}/evaluate, unwraps the
// same envelope into the entity type, and invalidates the cached list.
func (r *Resource[T, F]) Action(ctx context.Context, method, path string, in any) (T, error) {
	out, err := call[T](ctx, r.client, method, path, in)
	if err == nil {
		r.Invalidate()
	}
	return out, err
}
