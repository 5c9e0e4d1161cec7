package breach

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBreachesMatchesSuffix(t *testing.T) {
	email := "breached@example.com"
	digest := fmt.Sprintf("%X", sha1.Sum([]byte(email)))
	prefix, suffix := digest[:5], digest[5:]

	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		fmt.Fprintf(w, "0000000000000000000000000000000000A:2\r\n%s:7\r\nFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF:1\r\n", suffix)
	}))
	defer srv.Close()

	svc := NewBreachService(&Config{BaseURL: srv.URL, TimeoutSeconds: 5})
	count, err := svc.LookupBreaches(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	// only the 5-character hash prefix is sent, never the address
	assert.Equal(t, "/"+prefix, requestedPath)
	assert.NotContains(t, requestedPath, "example.com")
}

func TestLookupBreachesNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0000000000000000000000000000000000A:2\r\n")
	}))
	defer srv.Close()

	svc := NewBreachService(&Config{BaseURL: srv.URL, TimeoutSeconds: 5})
	count, err := svc.LookupBreaches(context.Background(), "clean@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLookupBreachesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewBreachService(&Config{BaseURL: srv.URL, TimeoutSeconds: 5})
	_, err := svc.LookupBreaches(context.Background(), "any@example.com")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "503"))
}
