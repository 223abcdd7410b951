package csrf

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newJar(t *testing.T) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return jar
}

func TestToken_FromCookieWithoutNetwork(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	base, _ := url.Parse(srv.URL)
	jar := newJar(t)
	jar.SetCookies(base, []*http.Cookie{{Name: CookieName, Value: "abc123", Path: "/"}})

	source := NewCookieSource(jar, base)
	tok, err := source.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc123", tok)
	require.EqualValues(t, 0, atomic.LoadInt64(&calls), "cookie hit must not touch the network")
}

func TestToken_BootstrapFetchPopulatesJar(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		require.Equal(t, DefaultBootstrapPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"csrfToken":"fresh-token"}`))
	}))
	defer srv.Close()

	base, _ := url.Parse(srv.URL)
	jar := newJar(t)
	source := NewCookieSource(jar, base)

	tok, err := source.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fresh-token", tok)
	require.EqualValues(t, 1, atomic.LoadInt64(&calls))

	// Cookie is now populated; a second resolve is jar-only
	require.Equal(t, "fresh-token", source.CachedToken())
	tok, err = source.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fresh-token", tok)
	require.EqualValues(t, 1, atomic.LoadInt64(&calls), "exactly one bootstrap GET expected")
}

func TestToken_NetworkFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	base, _ := url.Parse(srv.URL)
	source := NewCookieSource(newJar(t), base)

	tok, err := source.Token(context.Background())
	require.NoError(t, err, "a failed fetch degrades, it does not error")
	require.Empty(t, tok)
}

func TestToken_BootstrapErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	base, _ := url.Parse(srv.URL)
	source := NewCookieSource(newJar(t), base)

	tok, err := source.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, tok)
	require.Empty(t, source.CachedToken(), "no cookie written on failure")
}

func TestStaticSource(t *testing.T) {
	s := StaticSource("fixed")
	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fixed", tok)
	require.Equal(t, "fixed", s.CachedToken())
}
