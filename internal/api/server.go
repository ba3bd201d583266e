package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fairwaylabs/society-api/docs"
	v1 "github.com/fairwaylabs/society-api/internal/api/handler/v1"
	"github.com/fairwaylabs/society-api/internal/api/middleware"
	"github.com/fairwaylabs/society-api/internal/config"
	"github.com/fairwaylabs/society-api/internal/repository"
	"github.com/fairwaylabs/society-api/internal/repository/dao"
	"github.com/fairwaylabs/society-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	courseRepo := repository.NewCourseRepository(dao.NewCourseDAO(db))
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))
	scoreRepo := repository.NewScoreRepository(dao.NewScoreDAO(db))

	userSvc := service.NewUserService(userRepo)

	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo), userSvc)
	userHandler := v1.NewUserHandler(userSvc)
	courseHandler := v1.NewCourseHandler(service.NewCourseService(courseRepo))
	tournamentHandler := v1.NewTournamentHandler(
		service.NewTournamentService(tournamentRepo, courseRepo, scoreRepo, userRepo),
		userSvc,
	)
	scoreHandler := v1.NewScoreHandler(
		service.NewScoreService(scoreRepo, tournamentRepo, userRepo),
		userSvc,
	)
	standingsHandler := v1.NewStandingsHandler(service.NewStandingsService(tournamentRepo))

	s.MountHandlers(authHandler, userHandler, courseHandler, tournamentHandler, scoreHandler, standingsHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	courseHandler *v1.CourseHandler,
	tournamentHandler *v1.TournamentHandler,
	scoreHandler *v1.ScoreHandler,
	standingsHandler *v1.StandingsHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.GET("/courses", courseHandler.HandleListCourses)
		protected.GET("/courses/:courseID", courseHandler.HandleGetCourse)

		protected.POST("/tournaments", tournamentHandler.HandleCreateTournament)
		protected.GET("/tournaments", tournamentHandler.HandleListTournaments)
		protected.GET("/tournaments/:tournamentID", tournamentHandler.HandleGetTournament)
		protected.GET("/tournaments/:tournamentID/participants", tournamentHandler.HandleGetParticipants)
		protected.POST("/tournaments/:tournamentID/complete", tournamentHandler.HandleCompleteTournament)

		protected.POST("/tournaments/:tournamentID/scores", scoreHandler.HandleSubmitScore)
		protected.GET("/tournaments/:tournamentID/scores/:userID", scoreHandler.HandleGetScore)
		protected.GET("/tournaments/:tournamentID/leaderboard", scoreHandler.HandleLeaderboard)

		protected.GET("/users/:userID", userHandler.HandleGetUser)
		protected.GET("/users/:userID/handicap-history", userHandler.HandleGetHandicapHistory)
		protected.PUT("/users/:userID/handicap", userHandler.HandleSetHandicap)

		protected.GET("/standings", standingsHandler.HandleGetStandings)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Society Scoring API"
	docs.SwaggerInfo.Description = "Golf society scoring, handicapping and season standings."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
