package server

import (
	"fmt"
	"net/http"

	"github.com/clipnote/clipnote/internal/httputil"
)

type SecurityConfig struct {
	BaseURL string
}

// securityHeaders issues a per-request CSP nonce and the usual hardening
// headers. The player SDK loads from player.vimeo.com and renders inside an
// iframe from the same host, so both get an explicit allowance.
func securityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	strictTransport := cfg.BaseURL != "" && hasHTTPS(cfg.BaseURL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nonce := httputil.GenerateNonce()
			ctx := httputil.ContextWithNonce(r.Context(), nonce)

			w.Header().Set("Referrer-Policy", "no-referrer")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			csp := fmt.Sprintf(
				"default-src 'self'; img-src 'self' data: https://i.vimeocdn.com; script-src 'self' 'nonce-%s' https://player.vimeo.com; style-src 'self' 'nonce-%s'; connect-src 'self'; frame-src https://player.vimeo.com; frame-ancestors 'self';",
				nonce, nonce,
			)
			w.Header().Set("Content-Security-Policy", csp)

			if strictTransport {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasHTTPS(baseURL string) bool {
	return len(baseURL) >= 8 && baseURL[:8] == "https://"
}
