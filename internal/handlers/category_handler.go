package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthwise/internal/category"
)

// CategoryHandler serves the fixed category registry.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the category registry
// @Summary     Get categories
// @Description Get the fixed list of income and expense categories
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       kind query string false "Filter by kind (income, expense)"
// @Success     200 {array} category.Category "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	switch c.Query("kind") {
	case string(category.KindIncome):
		c.JSON(http.StatusOK, gin.H{"categories": category.ByKind(category.KindIncome)})
	case string(category.KindExpense):
		c.JSON(http.StatusOK, gin.H{"categories": category.ByKind(category.KindExpense)})
	default:
		c.JSON(http.StatusOK, gin.H{"categories": category.All()})
	}
}
