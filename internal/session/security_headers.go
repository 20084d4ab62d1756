package session

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds security headers to all responses.
// scriptURLs are external script locations (animation player, chart assets, analytics);
// their origins are allowed in script-src and connect-src.
func SecurityHeadersMiddleware(scriptURLs ...string) gin.HandlerFunc {
	scriptSrc := "'self' 'unsafe-inline'"
	connectSrc := "'self'"
	seen := make(map[string]bool)
	for _, raw := range scriptURLs {
		origin := extractOrigin(raw)
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		scriptSrc += " " + origin
		connectSrc += " " + origin
	}

	return func(c *gin.Context) {
		// The statistics chart is framed by our own pages only
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Build form-action with explicit host to handle reverse proxy scenarios
		formAction := "'self'"
		if host := c.Request.Host; host != "" {
			formAction = "'self' https://" + host
		}

		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src "+scriptSrc+"; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data: https:; "+
				"font-src 'self'; "+
				"connect-src "+connectSrc+"; "+
				"frame-src 'self'; "+
				"frame-ancestors 'self'; "+
				"form-action "+formAction)

		c.Header("Permissions-Policy",
			"accelerometer=(), "+
				"camera=(), "+
				"geolocation=(), "+
				"gyroscope=(), "+
				"magnetometer=(), "+
				"microphone=(), "+
				"payment=(), "+
				"usb=()")

		c.Next()
	}
}

// extractOrigin extracts the origin (scheme + host) from a URL for CSP
func extractOrigin(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = "https"
	}

	return scheme + "://" + parsed.Host
}

// StrictTransportSecurityMiddleware adds HSTS header for HTTPS-only access.
// Only enable this when serving over HTTPS, as it will break HTTP access.
func StrictTransportSecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
