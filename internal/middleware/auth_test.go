package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventgrounds/campsite-booking/internal/utils"
)

const testSecret = "middleware-test-secret"

func runJWTAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := runJWTAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	rec, _ := runJWTAuth(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 7, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, c := runJWTAuth(t, "Bearer "+at.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if sub, _ := c.Get("user_id").(float64); uint64(sub) != 7 {
		t.Errorf("user_id = %v, want 7", c.Get("user_id"))
	}
	if role, _ := c.Get("role").(string); role != "ADMIN" {
		t.Errorf("role = %v, want ADMIN", c.Get("role"))
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		role    any
		allowed []string
		want    int
	}{
		{"matching role", "ADMIN", []string{"ADMIN"}, http.StatusOK},
		{"one of several", "CUSTOMER", []string{"ADMIN", "CUSTOMER"}, http.StatusOK},
		{"wrong role", "CUSTOMER", []string{"ADMIN"}, http.StatusForbidden},
		{"missing role", nil, []string{"ADMIN"}, http.StatusForbidden},
		{"non-string role", 17, []string{"ADMIN"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}
			next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			if err := RequireRole(tc.allowed...)(next)(c); err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestCurrentUserIDFormats(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want string
	}{
		{"unset", nil, "anon"},
		{"string", "12", "12"},
		{"float64 claim", float64(34), "34"},
		{"uint64", uint64(56), "56"},
		{"empty string", "", "anon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tc.val != nil {
				c.Set("user_id", tc.val)
			}
			if got := currentUserID(c); got != tc.want {
				t.Errorf("currentUserID = %q, want %q", got, tc.want)
			}
		})
	}
}
