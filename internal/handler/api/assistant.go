package api

import (
	"net/http"

	"recarma/internal/assistant"
	reqdto "recarma/internal/handler/dto/request"
	resdto "recarma/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	service *assistant.Service
}

func NewAssistantHandler(service *assistant.Service) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// @Summary Chat with assistant
// @Description Ask the platform assistant a free-text question
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChatRequest true "Chat request"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Degradation is handled inside the service: a failing collaborator
	// yields the apology reply, never an error status.
	reply := h.service.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, resdto.ChatResponse{Reply: reply})
}
