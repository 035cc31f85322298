package handlers

import (
	"github.com/gin-gonic/gin"

	"vehicle-rental-api/apperr"
)

// respond writes the success envelope.
func respond(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError maps any error onto the failure envelope via apperr.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	body := gin.H{"success": false, "message": appErr.Message}
	if appErr.Errors != nil {
		body["errors"] = appErr.Errors
	}
	c.JSON(appErr.Status, body)
}
