package handlers

import (
	"net/http"
	"strconv"

	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayer handles POST /players
// @Summary Create a new player
// @Description Create a player; the named team is created on the fly if it does not exist
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} map[string]interface{} "message and new player id"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Player added successfully", "id": player.ID})
}

// ListPlayers handles GET /players
// @Summary List all players
// @Description Get all players with their team names
// @Tags players
// @Produce json
// @Success 200 {array} service.PlayerResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Description Get the full player record with the embedded team object
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} service.PlayerDetailResponse
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseID(c, "player")
	if !ok {
		return
	}

	player, err := h.playerService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles PUT /players/:id
// @Summary Update a player
// @Description Apply a partial update; absent fields keep their prior values
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body service.UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := parseID(c, "player")
	if !ok {
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.playerService.Update(id, &req); err != nil {
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

	c.JSON(http.StatusOK, gin.H{"message": "Player updated successfully"})
}

// DeletePlayer handles DELETE /players/:id
// @Summary Delete a player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c, "player")
	if !ok {
		return
	}

	if err := h.playerService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
}

// SearchPlayers handles GET /players/search?query=
// @Summary Search players by name
// @Description Case-insensitive substring match on player name
// @Tags players
// @Produce json
// @Param query query string false "Name substring"
// @Success 200 {array} service.PlayerSearchResult
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /players/search [get]
func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	query := c.Query("query")

	results, err := h.playerService.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// parseID parses the :id path parameter, writing a 400 response on failure.
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return 0, false
	}
	return uint(id), true
}
