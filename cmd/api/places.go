package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itznotaditya/voyant/internal/places"
)

// GetPlaceDescriptionInput defines the query parameters for the place
// description endpoint
type GetPlaceDescriptionInput struct {
	Name     string `form:"name" binding:"required"` // Place name
	Location string `form:"location"`                // Optional location context, e.g. the city
	Category string `form:"category"`                // Optional category label used in the fallback text
}

// PlaceDescriptionResponse carries a place description.
type PlaceDescriptionResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handleGetPlaceDescription godoc
// @Summary Look up a place description
// @Description Fetch a short description for a place, falling back to a generic sentence when no summary exists
// @Tags places
// @Produce json
// @Param name query string true "Place name" example(Tokyo Tower)
// @Param location query string false "Location context" example(Tokyo)
// @Param category query string false "Category label for the fallback text" example(Museum)
// @Success 200 {object} PlaceDescriptionResponse
// @Failure 400 {object} map[string]string
// @Router /places/description [get]
func (app *App) handleGetPlaceDescription(c *gin.Context) {
	var input GetPlaceDescriptionInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, ok := app.placesService.Describe(input.Name, input.Location)
	if !ok {
		category := input.Category
		if category == "" {
			category = "attraction"
		}
		description = places.FallbackDescription(category)
	}

	c.JSON(http.StatusOK, PlaceDescriptionResponse{
		Name:        input.Name,
		Description: description,
	})
}
