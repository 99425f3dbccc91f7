package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloghive/blog-platform/docs"
	"github.com/bloghive/blog-platform/internal/api/handler"
	"github.com/bloghive/blog-platform/internal/api/middleware"
	"github.com/bloghive/blog-platform/internal/core/ports"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Log    zerolog.Logger
	Tokens ports.TokenService
	Auth   *handler.AuthHandler
	Users  *handler.UserHandler
	Posts  *handler.PostHandler
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Paths match the original API exactly; only the health, metrics, and
// swagger endpoints are additions.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	authGate := middleware.Auth(deps.Tokens, deps.Log)

	// --- Auth routes ---
	e.POST("/signup", deps.Auth.Signup)
	e.POST("/login", deps.Auth.Login)
	e.POST("/forgot-password", deps.Auth.ForgotPassword)
	e.POST("/reset-password", deps.Auth.ResetPassword)

	// --- User routes ---
	e.GET("/users", deps.Users.List)

	// --- Post routes (mutations behind the gate) ---
	e.GET("/posts", deps.Posts.List)
	e.POST("/posts", deps.Posts.Create, authGate)
	e.PUT("/posts/:id", deps.Posts.Update, authGate)
	e.DELETE("/posts/:id", deps.Posts.Delete, authGate)
	e.PUT("/posts/like/:id", deps.Posts.Like, authGate)
	e.PUT("/posts/comment/:id", deps.Posts.Comment, authGate)
	e.GET("/posts/activity/:id", deps.Posts.Activity, authGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
