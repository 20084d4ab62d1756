package http

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// RequestIDMiddleware keeps a well-formed incoming X-Request-ID or generates one,
// and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(rid) {
			rid = uuid.NewString()
		}
		c.Request.Header.Set(RequestIDHeader, rid)
		c.Header(RequestIDHeader, rid)
		c.Set(requestIDContextKey, rid)
		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestIDMiddleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}

// BodySizeLimitMiddleware caps request bodies of form submissions.
func BodySizeLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			switch c.Request.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
			}
		}
		c.Next()
	}
}
