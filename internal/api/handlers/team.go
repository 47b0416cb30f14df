package handlers

import (
	"net/http"

	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]interface{} "message and new team id"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Team added successfully", "id": team.ID})
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Apply a partial update; absent fields keep their prior values
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.teamService.Update(id, &req); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team updated successfully"})
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// SearchTeams handles GET /teams/search?query=
// @Summary Search teams by name
// @Description Case-insensitive substring match on team name
// @Tags teams
// @Produce json
// @Param query query string false "Name substring"
// @Success 200 {array} service.TeamResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/search [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	query := c.Query("query")

	teams, err := h.teamService.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}
