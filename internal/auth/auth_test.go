package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIssuer_SignAndParse(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", time.Hour)
	tok, err := iss.Sign("a@x.com", "seller")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Role != "seller" {
		t.Fatalf("claims=%+v", claims)
	}
}

func TestIssuer_RejectsForeignAndExpiredTokens(t *testing.T) {
	t.Parallel()

	other, _ := NewIssuer("other-secret", time.Hour).Sign("a@x.com", "admin")
	if _, err := NewIssuer("test-secret", time.Hour).Parse(other); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}

	expired, _ := NewIssuer("test-secret", -time.Minute).Sign("a@x.com", "admin")
	if _, err := NewIssuer("test-secret", time.Hour).Parse(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("password stored in clear")
	}
	if !CheckPassword(hash, "hunter2") || CheckPassword(hash, "hunter3") {
		t.Fatalf("bcrypt comparison broken")
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	iss := NewIssuer("test-secret", time.Hour)
	admin, _ := iss.Sign("root@x.com", "admin")
	buyer, _ := iss.Sign("b@x.com", "user")

	newRouter := func(enabled bool) *gin.Engine {
		r := gin.New()
		r.GET("/admin", NewGuard(iss, enabled).Require("admin"), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		return r
	}

	cases := []struct {
		name    string
		enabled bool
		header  string
		want    int
	}{
		{"disabled lets anyone in", false, "", http.StatusOK},
		{"missing token", true, "", http.StatusUnauthorized},
		{"garbage token", true, "Bearer nope", http.StatusUnauthorized},
		{"wrong role", true, "Bearer " + buyer, http.StatusForbidden},
		{"admin", true, "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		newRouter(tc.enabled).ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: status=%d, want %d body=%s", tc.name, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestClaimsFrom(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	iss := NewIssuer("test-secret", time.Hour)
	tok, _ := iss.Sign("b@x.com", "user")

	newRouter := func(enabled bool) *gin.Engine {
		r := gin.New()
		r.GET("/me", NewGuard(iss, enabled).Require(), func(c *gin.Context) {
			claims, ok := ClaimsFrom(c)
			if !ok {
				c.String(http.StatusOK, "anonymous")
				return
			}
			c.String(http.StatusOK, claims.Email)
		})
		return r
	}

	for _, tc := range []struct {
		enabled bool
		want    string
	}{
		{false, "anonymous"},
		{true, "b@x.com"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		newRouter(tc.enabled).ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != tc.want {
			t.Fatalf("enabled=%v: status=%d body=%q, want %q", tc.enabled, w.Code, w.Body.String(), tc.want)
		}
	}
}
