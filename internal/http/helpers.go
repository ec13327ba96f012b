package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookcafe/internal/database"
	"github.com/mrlokans/bookcafe/internal/middleware"
	"github.com/mrlokans/bookcafe/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is returned by every mutating endpoint.
type SuccessResponse struct {
	Message string `json:"message"`
	ID      *uint  `json:"id,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInvalidBody sends a 400 for a body that failed to decode or validate.
// Validation failures carry a field -> message map in details.
func respondInvalidBody(c *gin.Context, err error) {
	if fields := validation.Errors(err); fields != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    "validation_error",
			Details: fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request body",
		Code:    "invalid_body",
		Details: err.Error(),
	})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, operation string) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"operation":  operation,
		"request_id": middleware.RequestID(c),
	}).Error("Persistence fault")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Unable to " + operation + ". Please try again later.",
	})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondStoreError maps repository errors onto responses. resource is the
// display name used in "not found" messages, operation the phrase used in
// the 500 message.
func respondStoreError(c *gin.Context, err error, resource, operation string) {
	var missing *database.MissingReferenceError
	var constraint *database.ConstraintError

	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	case errors.As(err, &missing):
		respondMissingReference(c, missing)
	case errors.As(err, &constraint):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "constraint violation",
			Code:    string(constraint.Kind),
			Details: constraint.Detail,
		})
	case errors.Is(err, database.ErrConstraintViolation):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "constraint violation",
			Details: err.Error(),
		})
	default:
		respondInternalError(c, err, operation)
	}
}

// respondMissingReference reports an id in the payload that points nowhere.
// Categories are a client error on the book; a missing menu is reported as
// not found.
func respondMissingReference(c *gin.Context, err *database.MissingReferenceError) {
	switch err.Resource {
	case "category":
		respondBadRequest(c, fmt.Sprintf("Category ID %d was not found", err.ID))
	case "menu":
		respondError(c, http.StatusNotFound, fmt.Sprintf("Menu with ID %d not found", err.ID))
	default:
		respondBadRequest(c, err.Error())
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondUpdated sends a 200 OK response naming the updated record.
func respondUpdated(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message, ID: &id})
}

// respondCreated sends a 201 Created response with the new id and optional data.
func respondCreated(c *gin.Context, message string, id uint, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Message: message, ID: &id, Data: data})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
