package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectpulse/project-api/internal/apperr"
)

// Envelope is the uniform response wrapper. Code mirrors the HTTP status.
type Envelope struct {
	Code    int         `json:"code"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Code:    http.StatusOK,
		Title:   "SUCCESS",
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Code:    http.StatusCreated,
		Title:   "SUCCESS",
		Message: message,
		Data:    data,
	})
}

// Error renders a business error, downgrading anything unrecognized to a
// generic 500 so raw store errors never leak with the wrong shape.
func Error(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Code, Envelope{
		Code:    appErr.Code,
		Title:   appErr.Title,
		Message: appErr.Message,
	})
}
