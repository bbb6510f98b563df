package apiutil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the envelope every non-payload response uses.
//
// Example:
//
//	{
//	  "message": "vehicle not found"
//	}
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteMessage writes the standard message envelope with the given status.
func WriteMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// WriteInternalError writes the generic 500 body. Details stay in the logs.
func WriteInternalError(c *gin.Context) {
	WriteMessage(c, http.StatusInternalServerError, "internal server error")
}
