package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-memo-backend/internal/config"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		opt    SecurityOptions
		prep   func(c *gin.Context)
		req    func(r *http.Request)
		want   map[string]string
		absent []string
	}{
		{
			name: "baseline only",
			opt:  SecurityOptions{},
			want: map[string]string{
				"X-Content-Type-Options": "nosniff",
				"X-Frame-Options":        "DENY",
				"Referrer-Policy":        "no-referrer",
			},
			absent: []string{"Permissions-Policy", "Cache-Control", "Strict-Transport-Security", "Access-Control-Expose-Headers"},
		},
		{
			name: "policy and no-store",
			opt:  SecurityOptions{NoStore: true, EnablePolicy: true},
			want: map[string]string{
				"X-Permitted-Cross-Domain-Policies": "none",
				"Cache-Control":                     "no-store",
				"Pragma":                            "no-cache",
				"Expires":                           "0",
			},
		},
		{
			name:   "hsts skipped on plain http",
			opt:    SecurityOptions{EnableHSTS: true},
			absent: []string{"Strict-Transport-Security"},
		},
		{
			name: "hsts over tls",
			opt:  SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour},
			req:  func(r *http.Request) { r.TLS = &tls.ConnectionState{} },
			want: map[string]string{"Strict-Transport-Security": "max-age=86400; includeSubDomains; preload"},
		},
		{
			name: "hsts via proxy with default max-age",
			opt:  SecurityOptions{EnableHSTS: true},
			req:  func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "HTTPS") },
			want: map[string]string{"Strict-Transport-Security": "max-age=15552000; includeSubDomains; preload"},
		},
		{
			name: "expose request id",
			prep: func(c *gin.Context) { c.Header(requestIDHeader, "rid-1") },
			want: map[string]string{"Access-Control-Expose-Headers": "X-Request-ID"},
		},
		{
			name: "append to existing expose list",
			prep: func(c *gin.Context) {
				c.Header(requestIDHeader, "rid-2")
				c.Header("Access-Control-Expose-Headers", "Foo")
			},
			want: map[string]string{"Access-Control-Expose-Headers": "Foo, X-Request-ID"},
		},
		{
			name: "no duplicate in expose list",
			prep: func(c *gin.Context) {
				c.Header(requestIDHeader, "rid-3")
				c.Header("Access-Control-Expose-Headers", "X-Request-ID, Foo")
			},
			want: map[string]string{"Access-Control-Expose-Headers": "X-Request-ID, Foo"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			if tc.prep != nil {
				prep := tc.prep
				r.Use(func(c *gin.Context) { prep(c); c.Next() })
			}
			r.Use(SecurityHeaders(tc.opt))
			r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tc.req != nil {
				tc.req(req)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			for k, v := range tc.want {
				if got := w.Header().Get(k); got != v {
					t.Fatalf("%s = %q, want %q", k, got, v)
				}
			}
			for _, k := range tc.absent {
				if got := w.Header().Get(k); got != "" {
					t.Fatalf("unexpected %s = %q", k, got)
				}
			}
		})
	}
}

func TestSecurityOptionsFrom(t *testing.T) {
	opt := SecurityOptionsFrom(config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour})
	if !opt.EnableHSTS || opt.HSTSMaxAge != time.Hour || !opt.NoStore || !opt.EnablePolicy {
		t.Fatalf("unexpected options: %+v", opt)
	}
}
