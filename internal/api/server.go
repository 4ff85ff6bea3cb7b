package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/instruments-rental-api/docs"
	v1 "github.com/vietanh2810/instruments-rental-api/internal/api/handler/v1"
	"github.com/vietanh2810/instruments-rental-api/internal/api/middleware"
	"github.com/vietanh2810/instruments-rental-api/internal/cache"
	"github.com/vietanh2810/instruments-rental-api/internal/config"
	"github.com/vietanh2810/instruments-rental-api/internal/metrics"
	"github.com/vietanh2810/instruments-rental-api/internal/repository"
	"github.com/vietanh2810/instruments-rental-api/internal/repository/dao"
	"github.com/vietanh2810/instruments-rental-api/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Metrics *metrics.Metrics

	userRepo       *repository.UserRepository
	creditsRepo    *repository.CreditsRepository
	instrumentRepo *repository.InstrumentRepository
	catalog        *service.CatalogService
}

// NewServer wires every handler. rdb may be nil, in which case the catalog
// is read straight from Postgres.
func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}
	if conf.Metrics != nil && conf.Metrics.Enabled {
		s.Metrics = metrics.New()
	}

	s.userRepo = repository.NewUserRepository(dao.NewUserDAO(db))
	s.creditsRepo = repository.NewCreditsRepository(dao.NewCreditsDAO(db, conf.Credits.DefaultBalance))
	s.instrumentRepo = s.initInstrumentRepository(db, rdb)
	s.catalog = service.NewCatalogService(s.instrumentRepo)

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	userHandler := s.initUserHandler()
	instrumentHandler := v1.NewInstrumentHandler(s.catalog)
	creditsHandler := s.initCreditsHandler()
	rentalHandler := s.initRentalHandler()
	s.MountHandlers(authHandler, userHandler, instrumentHandler, creditsHandler, rentalHandler)

	return s
}

// SeedCatalog upserts the fixed instrument table.
func (s *Server) SeedCatalog(ctx context.Context) error {
	return s.catalog.Seed(ctx)
}

func (s *Server) initInstrumentRepository(db *gorm.DB, rdb *redis.Client) *repository.InstrumentRepository {
	var instrumentCache repository.InstrumentCache
	if rdb != nil {
		instrumentCache = cache.NewInstrumentCache(rdb, s.Config.Redis.Prefix, s.Config.Redis.TTL)
	}

	return repository.NewInstrumentRepository(dao.NewInstrumentDAO(db), instrumentCache)
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc := service.NewAuthService(s.userRepo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler() *v1.UserHandler {
	svc := service.NewUserService(s.userRepo, s.creditsRepo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initCreditsHandler() *v1.CreditsHandler {
	svc := service.NewCreditsService(s.creditsRepo, s.Metrics)
	handler := v1.NewCreditsHandler(svc)

	return handler
}

func (s *Server) initRentalHandler() *v1.RentalHandler {
	svc := service.NewRentalService(s.instrumentRepo, s.creditsRepo, s.Metrics)
	handler := v1.NewRentalHandler(svc, basePath+"/credits")

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	if s.Metrics != nil {
		s.Router.Use(middleware.RecordDuration(s.Metrics))
	}
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	instrumentHandler *v1.InstrumentHandler,
	creditsHandler *v1.CreditsHandler,
	rentalHandler *v1.RentalHandler,
) {
	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	catalog := s.Router.Group(basePath)
	{
		catalog.GET("/instruments", instrumentHandler.HandleListInstruments)
		catalog.GET("/instruments/:category", instrumentHandler.HandleGetInstrument)
		catalog.GET("/quote", rentalHandler.HandleQuote)
	}

	private := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		private.GET("/users/me", userHandler.HandleGetMe)

		private.GET("/credits", creditsHandler.HandleGetCredits)
		private.POST("/credits", creditsHandler.HandleAddCredits)

		private.POST("/rentals/borrow", rentalHandler.HandleBorrow)
		private.POST("/rentals/checkout", rentalHandler.HandleCheckout)
		private.POST("/rentals/confirm", rentalHandler.HandleConfirm)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	if s.Metrics != nil {
		s.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Instruments Rental API"
	docs.SwaggerInfo.Description = "Rent musical instruments against a credits balance."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
