package handlers

import (
	"net/http"

	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles HTTP requests for transfer operations
type TransferHandler struct {
	transferService service.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService service.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// CreateTransfer handles POST /transfers
// @Summary Record a transfer
// @Description Record a player transfer; unknown from/to team names are created on the fly
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body service.CreateTransferRequest true "Transfer data"
// @Success 201 {object} map[string]interface{} "message and new transfer id"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req service.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transfer, err := h.transferService.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transfer added successfully", "id": transfer.ID})
}

// ListTransfers handles GET /transfers
// @Summary List all transfers
// @Tags transfers
// @Produce json
// @Success 200 {array} service.TransferResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /transfers [get]
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	transfers, err := h.transferService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transfers)
}
