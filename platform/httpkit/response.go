// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard API response format.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: payload})
}

// OKCount sends a 200 response with a payload and an item count.
func OKCount(c *gin.Context, payload interface{}, count int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: payload, Count: &count})
}

// OKMessage sends a 200 response carrying only a message.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// OKWithMessage sends a 200 response with a message and payload.
func OKWithMessage(c *gin.Context, message string, payload interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: payload})
}

// Created sends a 201 response with a message and payload.
func Created(c *gin.Context, message string, payload interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: payload})
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, Envelope{Success: false, Message: message, Details: details})
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values map via their Kind; anything else is treated as
// unexpected, logged in full, and returns a sanitized 500.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		if domainErr.Kind == apperr.KindInternal {
			logUnexpected(c, err)
		}
		c.JSON(domainErr.HTTPStatus(), Envelope{
			Success: false,
			Message: domainErr.Message,
			Details: domainErr.Details,
		})
		return true
	}

	logUnexpected(c, err)
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "internal server error",
	})
	return true
}

// logUnexpected writes the full error to the request logger before the
// sanitized response goes out. The logger is stashed by RequestLogger.
func logUnexpected(c *gin.Context, err error) {
	value, ok := c.Get(contextLoggerKey)
	if !ok {
		return
	}
	log, ok := value.(*logger.Logger)
	if !ok {
		return
	}
	log.Error("unhandled error",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err.Error(),
	)
}
