package apiclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmaintain/bm/internal/config"
)

func testConfig(url string) config.Config {
	return config.Config{APIURL: url, Timeout: 5 * time.Second, RequestsPerSecond: 100}
}

func TestJSONAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), func() (string, bool) { return "tok-123", true })
	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.JSON(context.Background(), http.MethodGet, "/ping", nil, &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, out.OK)
}

func TestJSONOmitsTokenWhenAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), func() (string, bool) { return "", false })
	require.NoError(t, client.JSON(context.Background(), http.MethodGet, "/ping", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestHTTPErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"message":"name already taken"}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), nil)
	err := client.JSON(context.Background(), http.MethodPost, "/buildings", map[string]string{"name": "x"}, nil)
	require.Error(t, err)

	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusUnprocessableEntity, herr.StatusCode)
	assert.Equal(t, "name already taken", herr.Message)
}

func TestUnauthorizedInvokesAuthFailedOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), func() (string, bool) { return "stale", true })
	calls := 0
	client.AuthFailed = func() { calls++ }

	err := client.JSON(context.Background(), http.MethodGet, "/buildings", nil, nil)
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, 1, calls)
}

func TestIsAuthErrorOnlyFor401(t *testing.T) {
	assert.True(t, IsAuthError(&HTTPError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, IsAuthError(&HTTPError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsAuthError(errors.New("boom")))
	assert.False(t, IsAuthError(nil))
}

func TestNetworkErrorOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New(testConfig(srv.URL), nil)
	err := client.JSON(context.Background(), http.MethodGet, "/buildings", nil, nil)
	require.Error(t, err)

	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Contains(t, nerr.URL, "/buildings")
}

func TestParseErrorOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), nil)
	var out map[string]any
	err := client.JSON(context.Background(), http.MethodGet, "/buildings", nil, &out)
	require.Error(t, err)

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestDownloadUsesContentDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="boq-42.xlsx"`)
		_, _ = w.Write([]byte("binary-bytes"))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), nil)
	data, name, err := client.Download(context.Background(), "/boqs/42/export")
	require.NoError(t, err)
	assert.Equal(t, []byte("binary-bytes"), data)
	assert.Equal(t, "boq-42.xlsx", name)
}

func TestUploadSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "site plan", r.FormValue("name"))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "plan.pdf", header.Filename)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), nil)
	err := client.Upload(context.Background(), http.MethodPost, "/documents",
		map[string]string{"name": "site plan"}, "file", "plan.pdf",
		bytes.NewReader([]byte("%PDF-1.4")), nil)
	require.NoError(t, err)
}
