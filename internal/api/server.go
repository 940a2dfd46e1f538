package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/jglopez/tappedout-api/docs"
	v1 "github.com/jglopez/tappedout-api/internal/api/handler/v1"
	"github.com/jglopez/tappedout-api/internal/api/middleware"
	"github.com/jglopez/tappedout-api/internal/config"
	"github.com/jglopez/tappedout-api/internal/pkg/mailer"
	"github.com/jglopez/tappedout-api/internal/repository"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
	"github.com/jglopez/tappedout-api/internal/service"
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

	clock := service.Clock(time.Now)
	notifier := mailer.New(conf.SMTP)

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	referenceHandler := s.initReferenceHandler(db)
	sportHandler := s.initSportHandler(db)
	categoryHandler := s.initCategoryHandler(db)
	eventHandler := s.initEventHandler(db, clock)
	inscriptionHandler := s.initInscriptionHandler(db, notifier, clock)
	resultHandler := s.initResultHandler(db, notifier, clock)

	s.MountHandlers(authHandler, userHandler, referenceHandler, sportHandler,
		categoryHandler, eventHandler, inscriptionHandler, resultHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	referenceRepo := repository.NewReferenceRepository(dao.NewReferenceDAO(db))
	svc := service.NewAuthService(userRepo, referenceRepo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc)
}

func (s *Server) initReferenceHandler(db *gorm.DB) *v1.ReferenceHandler {
	repo := repository.NewReferenceRepository(dao.NewReferenceDAO(db))
	svc := service.NewReferenceService(repo)

	return v1.NewReferenceHandler(svc)
}

func (s *Server) initSportHandler(db *gorm.DB) *v1.SportHandler {
	repo := repository.NewSportRepository(dao.NewSportDAO(db), dao.NewSportLevelDAO(db))
	svc := service.NewSportService(repo)

	return v1.NewSportHandler(svc)
}

func (s *Server) initCategoryHandler(db *gorm.DB) *v1.CategoryHandler {
	repo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	sportRepo := repository.NewSportRepository(dao.NewSportDAO(db), dao.NewSportLevelDAO(db))
	referenceRepo := repository.NewReferenceRepository(dao.NewReferenceDAO(db))
	svc := service.NewCategoryService(repo, sportRepo, referenceRepo)

	return v1.NewCategoryHandler(svc)
}

func (s *Server) initEventHandler(db *gorm.DB, clock service.Clock) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	sportRepo := repository.NewSportRepository(dao.NewSportDAO(db), dao.NewSportLevelDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewEventService(repo, sportRepo, categoryRepo, clock)

	return v1.NewEventHandler(svc)
}

func (s *Server) initInscriptionHandler(db *gorm.DB, notifier service.Notifier, clock service.Clock) *v1.InscriptionHandler {
	repo := repository.NewInscriptionRepository(dao.NewInscriptionDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewInscriptionService(repo, userRepo, eventRepo, categoryRepo, notifier, clock)

	return v1.NewInscriptionHandler(svc)
}

func (s *Server) initResultHandler(db *gorm.DB, notifier service.Notifier, clock service.Clock) *v1.ResultHandler {
	repo := repository.NewResultRepository(dao.NewResultDAO(db))
	inscriptionRepo := repository.NewInscriptionRepository(dao.NewInscriptionDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewResultService(repo, inscriptionRepo, userRepo, eventRepo, categoryRepo, notifier, clock)

	return v1.NewResultHandler(svc)
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
	referenceHandler *v1.ReferenceHandler,
	sportHandler *v1.SportHandler,
	categoryHandler *v1.CategoryHandler,
	eventHandler *v1.EventHandler,
	inscriptionHandler *v1.InscriptionHandler,
	resultHandler *v1.ResultHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users", userHandler.HandleListUsers)
		authenticated.GET("/users/:userID", userHandler.HandleGetUser)
		authenticated.PUT("/users/:userID", userHandler.HandleUpdateUser)
		authenticated.POST("/users/:userID/password", userHandler.HandleChangePassword)
		authenticated.DELETE("/users/:userID", userHandler.HandleDeleteUser)
		authenticated.GET("/users/:userID/inscriptions", inscriptionHandler.HandleListCompetitorInscriptions)
		authenticated.GET("/users/:userID/results", resultHandler.HandleListCompetitorResults)

		authenticated.GET("/genders", referenceHandler.HandleListGenders)
		authenticated.POST("/genders", referenceHandler.HandleCreateGender)
		authenticated.DELETE("/genders/:genderID", referenceHandler.HandleDeleteGender)
		authenticated.GET("/user-types", referenceHandler.HandleListUserTypes)
		authenticated.POST("/user-types", referenceHandler.HandleCreateUserType)
		authenticated.DELETE("/user-types/:userTypeID", referenceHandler.HandleDeleteUserType)

		authenticated.GET("/sports", sportHandler.HandleListSports)
		authenticated.POST("/sports", sportHandler.HandleCreateSport)
		authenticated.GET("/sports/:sportID", sportHandler.HandleGetSport)
		authenticated.PUT("/sports/:sportID", sportHandler.HandleUpdateSport)
		authenticated.DELETE("/sports/:sportID", sportHandler.HandleDeleteSport)
		authenticated.GET("/sports/:sportID/levels", sportHandler.HandleListLevels)
		authenticated.POST("/sports/:sportID/levels", sportHandler.HandleCreateLevel)
		authenticated.PUT("/levels/:levelID", sportHandler.HandleUpdateLevel)
		authenticated.DELETE("/levels/:levelID", sportHandler.HandleDeleteLevel)

		authenticated.GET("/categories", categoryHandler.HandleListCategories)
		authenticated.POST("/categories", categoryHandler.HandleCreateCategory)
		authenticated.GET("/categories/:categoryID", categoryHandler.HandleGetCategory)
		authenticated.PUT("/categories/:categoryID", categoryHandler.HandleUpdateCategory)
		authenticated.DELETE("/categories/:categoryID", categoryHandler.HandleDeleteCategory)

		authenticated.GET("/events", eventHandler.HandleListEvents)
		authenticated.POST("/events", eventHandler.HandleCreateEvent)
		authenticated.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authenticated.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authenticated.PATCH("/events/:eventID/status", eventHandler.HandleUpdateEventStatus)
		authenticated.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		authenticated.GET("/events/:eventID/categories", eventHandler.HandleListEventCategories)
		authenticated.POST("/events/:eventID/categories", eventHandler.HandleAddEventCategory)
		authenticated.DELETE("/events/:eventID/categories/:categoryID", eventHandler.HandleRemoveEventCategory)
		authenticated.GET("/events/:eventID/categories/:categoryID/winner", resultHandler.HandleGetWinner)
		authenticated.GET("/events/:eventID/inscriptions", inscriptionHandler.HandleListEventInscriptions)
		authenticated.GET("/events/:eventID/inscriptions/paid-count", inscriptionHandler.HandleCountPaidInscriptions)
		authenticated.GET("/events/:eventID/results", resultHandler.HandleListEventResults)

		authenticated.GET("/inscriptions", inscriptionHandler.HandleListInscriptions)
		authenticated.POST("/inscriptions", inscriptionHandler.HandleCreateInscription)
		authenticated.GET("/inscriptions/:inscriptionID", inscriptionHandler.HandleGetInscription)
		authenticated.PUT("/inscriptions/:inscriptionID", inscriptionHandler.HandleUpdateInscription)
		authenticated.DELETE("/inscriptions/:inscriptionID", inscriptionHandler.HandleDeleteInscription)

		authenticated.GET("/results/:resultID", resultHandler.HandleGetResult)
		authenticated.POST("/results", resultHandler.HandleCreateResult)
		authenticated.PUT("/results/:resultID", resultHandler.HandleUpdateResult)
		authenticated.DELETE("/results/:resultID", resultHandler.HandleDeleteResult)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "TappedOut API"
	docs.SwaggerInfo.Description = "REST API for managing sport competition events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
