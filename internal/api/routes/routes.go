package routes

import (
	"football-roster-backend/internal/api/handlers"
	"football-roster-backend/internal/api/middleware"
	"football-roster-backend/internal/config"
	"football-roster-backend/internal/repository"
	"football-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	transferRepo := repository.NewTransferRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, validator)
	playerService := service.NewPlayerService(playerRepo, teamRepo, validator)
	transferService := service.NewTransferService(transferRepo, playerRepo, validator)
	assetService := service.NewAssetService(playerRepo, service.AssetConfig{
		UploadDir:         cfg.PlayerImagesDir,
		PublicPath:        cfg.PlayerImagesPath,
		AllowedExtensions: cfg.AllowedExtensionList(),
	})

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	transferHandler := handlers.NewTransferHandler(transferService)
	uploadHandler := handlers.NewUploadHandler(assetService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Player routes
	router.POST("/players", playerHandler.CreatePlayer)
	router.GET("/players", playerHandler.ListPlayers)
	router.GET("/players/search", playerHandler.SearchPlayers)
	router.GET("/players/:id", playerHandler.GetPlayer)
	router.PUT("/players/:id", playerHandler.UpdatePlayer)
	router.DELETE("/players/:id", playerHandler.DeletePlayer)

	// Team routes
	router.POST("/teams", teamHandler.CreateTeam)
	router.GET("/teams", teamHandler.ListTeams)
	router.GET("/teams/search", teamHandler.SearchTeams)
	router.GET("/teams/:id", teamHandler.GetTeam)
	router.PUT("/teams/:id", teamHandler.UpdateTeam)
	router.DELETE("/teams/:id", teamHandler.DeleteTeam)

	// Transfer routes
	router.POST("/transfers", transferHandler.CreateTransfer)
	router.GET("/transfers", transferHandler.ListTransfers)

	// Image upload and static assets
	router.POST("/upload_player_image/:id", uploadHandler.UploadPlayerImage)
	router.Static("/static/images", cfg.StaticImagesDir)

	return router
}
