package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itznotaditya/voyant/internal/categories"
)

// CategoryInfo describes one selectable place category.
type CategoryInfo struct {
	Key         string `json:"key" example:"historic"`
	DisplayName string `json:"display_name" example:"Historic Sites"`
}

// handleGetCategories godoc
// @Summary List place categories
// @Description List the category filter keys accepted in chat preferences, with display names
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryInfo
// @Router /categories [get]
func (app *App) handleGetCategories(c *gin.Context) {
	keys := categories.Keys()
	out := make([]CategoryInfo, 0, len(keys))
	for _, k := range keys {
		out = append(out, CategoryInfo{
			Key:         string(k),
			DisplayName: categories.DisplayName(k),
		})
	}
	c.JSON(http.StatusOK, out)
}
