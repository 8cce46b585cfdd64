package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthwise/internal/errors"
	"wealthwise/internal/services"
)

// SummaryHandler serves the aggregated dashboard and report views.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary returns the dashboard summary for a month
// @Summary     Get monthly summary
// @Description Get total balance, monthly income and expense, budget warnings, goal progress, and recent transactions
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month to summarize (YYYY-MM, default current)"
// @Success     200 {object} services.Summary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	yearMonth := c.Query("month")
	if yearMonth == "" {
		yearMonth = time.Now().Format("2006-01")
	} else if len(yearMonth) != 7 || yearMonth[4] != '-' {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM"))
		return
	}

	summary, err := h.summaryService.GetSummary(userID, yearMonth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCategoryBreakdown returns expense totals per category
// @Summary     Get category breakdown
// @Description Get all-time expense totals grouped by category, largest first
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategorySlice "Expense totals per category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *SummaryHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.summaryService.GetCategoryBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}
