package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthwise/internal/services"
)

// AdviceHandler serves the AI financial-advice endpoint.
type AdviceHandler struct {
	adviceService services.AdviceServicer
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviceService services.AdviceServicer) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService}
}

// GetAdvice returns AI-generated financial advice
// @Summary     Get financial advice
// @Description Send a snapshot of the user's finances to the AI advisor and return its free-form response. Always returns 200; failures degrade to a fallback message.
// @Tags        advice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Advice text"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /advice [get]
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	advice := h.adviceService.GetAdvice(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
