package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vkhomich/airport-api/docs"
	v1 "github.com/vkhomich/airport-api/internal/api/handler/v1"
	"github.com/vkhomich/airport-api/internal/api/middleware"
	"github.com/vkhomich/airport-api/internal/config"
	"github.com/vkhomich/airport-api/internal/repository"
	"github.com/vkhomich/airport-api/internal/repository/dao"
	"github.com/vkhomich/airport-api/internal/service"
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

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	airportHandler := s.initAirportHandler(db, userSvc)
	routeHandler := s.initRouteHandler(db, userSvc)
	airplaneHandler := s.initAirplaneHandler(db, userSvc)
	crewHandler := s.initCrewHandler(db, userSvc)
	flightHandler := s.initFlightHandler(db, userSvc)
	orderHandler := s.initOrderHandler(db, userSvc)

	s.MountHandlers(
		authHandler,
		userHandler,
		airportHandler,
		routeHandler,
		airplaneHandler,
		crewHandler,
		flightHandler,
		orderHandler,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAirportHandler(db *gorm.DB, userSvc *service.UserService) *v1.AirportHandler {
	airportDAO := dao.NewAirportDAO(db)
	repo := repository.NewAirportRepository(airportDAO)
	svc := service.NewAirportService(repo)
	handler := v1.NewAirportHandler(svc, userSvc)

	return handler
}

func (s *Server) initRouteHandler(db *gorm.DB, userSvc *service.UserService) *v1.RouteHandler {
	routeDAO := dao.NewRouteDAO(db)
	repo := repository.NewRouteRepository(routeDAO)
	airportRepo := repository.NewAirportRepository(dao.NewAirportDAO(db))
	svc := service.NewRouteService(repo, airportRepo)
	handler := v1.NewRouteHandler(svc, userSvc)

	return handler
}

func (s *Server) initAirplaneHandler(db *gorm.DB, userSvc *service.UserService) *v1.AirplaneHandler {
	airplaneDAO := dao.NewAirplaneDAO(db)
	repo := repository.NewAirplaneRepository(airplaneDAO)
	svc := service.NewAirplaneService(repo)
	handler := v1.NewAirplaneHandler(svc, userSvc)

	return handler
}

func (s *Server) initCrewHandler(db *gorm.DB, userSvc *service.UserService) *v1.CrewHandler {
	crewDAO := dao.NewCrewDAO(db)
	repo := repository.NewCrewRepository(crewDAO)
	svc := service.NewCrewService(repo)
	handler := v1.NewCrewHandler(svc, userSvc)

	return handler
}

func (s *Server) initFlightHandler(db *gorm.DB, userSvc *service.UserService) *v1.FlightHandler {
	flightRepo := repository.NewFlightRepository(dao.NewFlightDAO(db))
	routeRepo := repository.NewRouteRepository(dao.NewRouteDAO(db))
	airplaneRepo := repository.NewAirplaneRepository(dao.NewAirplaneDAO(db))
	crewRepo := repository.NewCrewRepository(dao.NewCrewDAO(db))
	svc := service.NewFlightService(flightRepo, routeRepo, airplaneRepo, crewRepo)
	handler := v1.NewFlightHandler(svc, userSvc)

	return handler
}

func (s *Server) initOrderHandler(db *gorm.DB, userSvc *service.UserService) *v1.OrderHandler {
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	flightRepo := repository.NewFlightRepository(dao.NewFlightDAO(db))
	svc := service.NewOrderService(orderRepo, flightRepo)
	handler := v1.NewOrderHandler(svc, userSvc)

	return handler
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
	airportHandler *v1.AirportHandler,
	routeHandler *v1.RouteHandler,
	airplaneHandler *v1.AirplaneHandler,
	crewHandler *v1.CrewHandler,
	flightHandler *v1.FlightHandler,
	orderHandler *v1.OrderHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users/:userID", userHandler.HandleGetUser)

		authenticated.GET("/airports", airportHandler.HandleListAirports)
		authenticated.GET("/airports/:airportID", airportHandler.HandleGetAirport)
		authenticated.POST("/airports", airportHandler.HandleCreateAirport)
		authenticated.PUT("/airports/:airportID", airportHandler.HandleUpdateAirport)
		authenticated.DELETE("/airports/:airportID", airportHandler.HandleDeleteAirport)

		authenticated.GET("/routes", routeHandler.HandleListRoutes)
		authenticated.GET("/routes/:routeID", routeHandler.HandleGetRoute)
		authenticated.POST("/routes", routeHandler.HandleCreateRoute)
		authenticated.PUT("/routes/:routeID", routeHandler.HandleUpdateRoute)
		authenticated.DELETE("/routes/:routeID", routeHandler.HandleDeleteRoute)

		authenticated.GET("/airplane-types", airplaneHandler.HandleListAirplaneTypes)
		authenticated.GET("/airplane-types/:typeID", airplaneHandler.HandleGetAirplaneType)
		authenticated.POST("/airplane-types", airplaneHandler.HandleCreateAirplaneType)
		authenticated.PUT("/airplane-types/:typeID", airplaneHandler.HandleUpdateAirplaneType)
		authenticated.DELETE("/airplane-types/:typeID", airplaneHandler.HandleDeleteAirplaneType)

		authenticated.GET("/airplanes", airplaneHandler.HandleListAirplanes)
		authenticated.GET("/airplanes/:airplaneID", airplaneHandler.HandleGetAirplane)
		authenticated.POST("/airplanes", airplaneHandler.HandleCreateAirplane)
		authenticated.PUT("/airplanes/:airplaneID", airplaneHandler.HandleUpdateAirplane)
		authenticated.DELETE("/airplanes/:airplaneID", airplaneHandler.HandleDeleteAirplane)

		authenticated.GET("/crew", crewHandler.HandleListCrew)
		authenticated.GET("/crew/:crewID", crewHandler.HandleGetCrew)
		authenticated.POST("/crew", crewHandler.HandleCreateCrew)
		authenticated.PUT("/crew/:crewID", crewHandler.HandleUpdateCrew)
		authenticated.DELETE("/crew/:crewID", crewHandler.HandleDeleteCrew)

		authenticated.GET("/flights", flightHandler.HandleListFlights)
		authenticated.GET("/flights/:flightID", flightHandler.HandleGetFlight)
		authenticated.POST("/flights", flightHandler.HandleCreateFlight)
		authenticated.PUT("/flights/:flightID", flightHandler.HandleUpdateFlight)
		authenticated.DELETE("/flights/:flightID", flightHandler.HandleDeleteFlight)

		authenticated.GET("/orders", orderHandler.HandleListOrders)
		authenticated.GET("/orders/:orderID", orderHandler.HandleGetOrder)
		authenticated.POST("/orders", orderHandler.HandleCreateOrder)
		authenticated.DELETE("/orders/:orderID", orderHandler.HandleDeleteOrder)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Airport API"
	docs.SwaggerInfo.Description = "A flight booking API built with Gin."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
