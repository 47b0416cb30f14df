package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/mocks"
	"football-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite tests the team HTTP endpoints with a mocked service
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	router      *gin.Engine
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	handler := NewTeamHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/teams", handler.CreateTeam)
	suite.router.GET("/teams", handler.ListTeams)
	suite.router.GET("/teams/search", handler.SearchTeams)
	suite.router.GET("/teams/:id", handler.GetTeam)
	suite.router.PUT("/teams/:id", handler.UpdateTeam)
	suite.router.DELETE("/teams/:id", handler.DeleteTeam)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		suite.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TeamHandlerTestSuite) decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateTeamRequest) (*service.TeamResponse, error) {
			suite.Equal("Liverpool", req.Name)
			return &service.TeamResponse{ID: 7, Name: req.Name}, nil
		})

	w := suite.performJSON(http.MethodPost, "/teams", gin.H{"name": "Liverpool"})

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decodeBody(w)
	suite.Equal("Team added successfully", body["message"])
	suite.Equal(float64(7), body["id"])
}

func (suite *TeamHandlerTestSuite) TestCreateTeamValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "required"))

	w := suite.performJSON(http.MethodPost, "/teams", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	logo := "/static/images/teams/lfc.png"
	suite.mockService.EXPECT().GetAll().Return([]service.TeamResponse{
		{ID: 1, Name: "Liverpool", TeamLogo: &logo},
		{ID: 2, Name: "Arsenal"},
	}, nil)

	w := suite.performJSON(http.MethodGet, "/teams", nil)

	suite.Equal(http.StatusOK, w.Code)
	var teams []service.TeamResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &teams))
	suite.Len(teams, 2)
	suite.Equal(&logo, teams[0].TeamLogo)
}

func (suite *TeamHandlerTestSuite) TestGetTeamNotFound() {
	suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrTeamNotFound)

	w := suite.performJSON(http.MethodGet, "/teams/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("team not found", suite.decodeBody(w)["error"])
}

func (suite *TeamHandlerTestSuite) TestGetTeamInvalidID() {
	w := suite.performJSON(http.MethodGet, "/teams/xyz", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid team ID", suite.decodeBody(w)["error"])
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.mockService.EXPECT().
		Update(uint(3), gomock.Any()).
		Return(&service.TeamResponse{ID: 3, Name: "Arsenal"}, nil)

	w := suite.performJSON(http.MethodPut, "/teams/3", gin.H{"team_logo": "/static/images/teams/afc.png"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Team updated successfully", suite.decodeBody(w)["message"])
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.mockService.EXPECT().Delete(uint(5)).Return(nil)

	w := suite.performJSON(http.MethodDelete, "/teams/5", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Team deleted successfully", suite.decodeBody(w)["message"])
}

func (suite *TeamHandlerTestSuite) TestDeleteTeamNotFound() {
	suite.mockService.EXPECT().Delete(uint(5)).Return(apperrors.ErrTeamNotFound)

	w := suite.performJSON(http.MethodDelete, "/teams/5", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TeamHandlerTestSuite) TestSearchTeams() {
	suite.mockService.EXPECT().Search("mad").Return([]service.TeamResponse{
		{ID: 1, Name: "Real Madrid"},
	}, nil)

	w := suite.performJSON(http.MethodGet, "/teams/search?query=mad", nil)

	suite.Equal(http.StatusOK, w.Code)
	var teams []service.TeamResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &teams))
	suite.Len(teams, 1)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
