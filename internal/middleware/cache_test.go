package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/config"
)

func TestPayloadCodecRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Add("X-Custom", "a")
	hdr.Add("X-Custom", "b")
	body := []byte(`{"ok":true}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if got := gotHdr.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := gotHdr["X-Custom"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("X-Custom = %v, want [a b]", got)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsTruncatedInput(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, make([]byte, 7)} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload accepted %d bytes", len(bs))
		}
	}
}

func TestCacheKeyDependsOnStrategy(t *testing.T) {
	e := echo.New()
	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/events")
		return c
	}

	base := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	withQ := cacheKeyFrom(base, newCtx("/v1/events?page=2"))
	withoutQ := cacheKeyFrom(base, newCtx("/v1/events"))
	if withQ == withoutQ {
		t.Error("route_query strategy ignored the query string")
	}

	routeOnly := base
	routeOnly.KeyStrategy = "route"
	if cacheKeyFrom(routeOnly, newCtx("/v1/events?page=2")) != cacheKeyFrom(routeOnly, newCtx("/v1/events")) {
		t.Error("route strategy should not vary with the query string")
	}
}

func TestDisabledCacheIsPassthrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Error("next handler was not called")
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Error("disabled cache still set X-Cache")
	}
}
