package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	_ "github.com/itznotaditya/voyant/internal/orchestrator" // imported for swagger type definitions
)

// ChatRequest carries one natural-language travel query.
type ChatRequest struct {
	Message     string         `json:"message" binding:"required"` // The user's query
	Preferences map[string]any `json:"preferences"`                // Optional preferences, e.g. category_filter
}

// handleChat godoc
// @Summary Answer a travel query
// @Description Extracts intent and location from the message, resolves the location, and returns weather and/or ranked places plus a natural-language reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Query message with optional preferences"
// @Success 200 {object} orchestrator.Response
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (app *App) handleChat(c *gin.Context) {
	var req ChatRequest

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := app.orchestrator.ProcessQuery(req.Message, req.Preferences)

	c.JSON(http.StatusOK, resp)
}
