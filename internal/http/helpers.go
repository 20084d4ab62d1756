package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON error body of the service endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest renders the error page with a 400 status.
func respondBadRequest(c *gin.Context, message string) {
	c.HTML(http.StatusBadRequest, "error", gin.H{
		"Title":   "Bad request",
		"Message": message,
	})
}

// respondNotFound renders the error page with a 404 status.
func respondNotFound(c *gin.Context, resource string) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":   "Not found",
		"Message": resource + " not found",
	})
}

// respondInternalError logs the error and renders a generic 500 page.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [request %s]: %v", context, GetRequestID(c), err)
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   "Something went wrong",
		"Message": "internal server error",
	})
}

// --- Parameter Parsing ---

// parseUUIDParam extracts a record ID from URL parameters.
// Responds with a 400 and returns uuid.Nil, false when it is malformed.
func parseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return uuid.Nil, false
	}
	return id, true
}

// redirectSeeOther finishes a POST with a redirect to a GET view.
func redirectSeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
