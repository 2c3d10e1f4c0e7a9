package api

import (
	"errors"
	"io"
	"net/http"

	resdto "recarma/internal/handler/dto/response"
	"recarma/internal/handler/middleware"
	"recarma/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploaded files are capped to keep the ack path cheap.
const maxDocumentSize = 10 << 20 // 10 MiB

type DocumentHandler struct {
	documentCommands commands.DocumentCommands
}

func NewDocumentHandler(documentCommands commands.DocumentCommands) *DocumentHandler {
	return &DocumentHandler{documentCommands: documentCommands}
}

// @Summary Upload document
// @Description Upload a verification document (RC or insurance copy) for a vehicle
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param vehicleId formData string true "Vehicle ID"
// @Param type formData string true "Document type (RC or INSURANCE)"
// @Param document formData file true "Document file"
// @Success 201 {object} resdto.UploadDocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /documents/upload [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	vehicleID, err := uuid.Parse(c.PostForm("vehicleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	docType := c.PostForm("type")

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Document file is required",
		})
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Document file is too large",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read document file",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxDocumentSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read document file",
		})
		return
	}

	id, err := h.documentCommands.Upload(c.Request.Context(), userID, commands.UploadDocumentParams{
		VehicleID: vehicleID,
		Type:      docType,
		FileName:  fileHeader.Filename,
		Content:   content,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDocumentType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Document type must be RC or INSURANCE",
			})
		case errors.Is(err, commands.ErrEmptyDocument):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Document file is empty",
			})
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			writeUnhandled(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.UploadDocumentResponse{
		ID:      id.String(),
		Message: "Document uploaded",
	})
}
