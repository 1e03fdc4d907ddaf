package provider

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
)

// Resource is the typed Data Provider for one upstream entity collection.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a client to an entity collection path like "/students".
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// Path returns the upstream collection path.
func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches the full collection, optionally constrained by upstream
// query parameters.
func (r *Resource[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	if err := r.client.do(ctx, http.MethodGet, r.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single record by ID.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new record and returns the upstream's stored version.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update submits changed fields and returns the upstream's stored version.
func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a record upstream.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, nil)
}

// UploadCSV forwards a raw CSV file for server-side import, with contextual
// foreign keys (curriculum, term) as form fields. The gateway never parses
// the uploaded content.
func (r *Resource[T]) UploadCSV(ctx context.Context, filename string, file io.Reader, fields map[string]string) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upload form")
	}
	if _, err := io.Copy(part, file); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "copy upload content")
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "write upload field")
		}
	}
	if err := writer.Close(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "finalize upload form")
	}

	return r.client.roundTrip(ctx, http.MethodPost, r.path+"/import", nil, body, writer.FormDataContentType(), nil)
}
