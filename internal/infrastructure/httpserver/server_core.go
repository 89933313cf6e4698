package httpserver

import (
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	customMiddleware "github.com/avatarctic/admin-dashboard/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	AuthService    ports.AuthService
	Users          ports.UserStore
	Products       ports.ProductStore
	UserQuery      ports.UserQuery
	ProductQuery   ports.ProductQuery
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	authSvc        ports.AuthService
	users          ports.UserStore
	products       ports.ProductStore
	userQuery      ports.UserQuery
	productQuery   ports.ProductQuery
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		authSvc:        deps.AuthService,
		users:          deps.Users,
		products:       deps.Products,
		userQuery:      deps.UserQuery,
		productQuery:   deps.ProductQuery,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
