package http

import "github.com/gin-gonic/gin"

// Envelope is the response shape every endpoint uses.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func respondDataMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: true, Message: message})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}
