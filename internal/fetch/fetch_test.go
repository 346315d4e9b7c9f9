package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "<html>ok</html>", result.Body)
	assert.Contains(t, result.ContentType, "text/html")
	assert.Equal(t, srv.URL, result.URL)
}

func TestURL_CustomOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "research-bot/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "custom-value", r.Header.Get("X-Custom"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	opts := &Options{
		Timeout:   5 * time.Second,
		UserAgent: "research-bot/1.0",
		Headers:   map[string]string{"X-Custom": "custom-value"},
	}
	result, err := URL(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Body)
}

func TestURL_NonOKStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "/relative/path"} {
		_, err := URL(context.Background(), bad, nil)
		require.Error(t, err, "url: %q", bad)

		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, fetchErr.Message, "invalid URL")
	}
}

func TestURL_ConnectionRefused(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := URL(context.Background(), url, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Error(t, fetchErr.Unwrap())
}

func TestURL_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := URL(ctx, srv.URL, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestError_Messages(t *testing.T) {
	withCause := &Error{URL: "http://x", Message: "HTTP request failed", Cause: errors.New("boom")}
	assert.Contains(t, withCause.Error(), "boom")

	withoutCause := &Error{URL: "http://x", Message: "invalid URL"}
	assert.Equal(t, "fetch error for http://x: invalid URL", withoutCause.Error())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
	assert.NotEmpty(t, opts.Headers["Accept"])
}
