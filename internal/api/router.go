package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spiconsulting/consultancy-website/internal/api/handler"
	"github.com/spiconsulting/consultancy-website/internal/api/middleware"
	"github.com/spiconsulting/consultancy-website/internal/api/view"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// Deps carries the constructed services and connections the router wires
// into handlers. Everything is dependency-injected; nothing is reached
// through package-level globals.
type Deps struct {
	Auth    ports.AuthService
	Posts   ports.PostService
	Jobs    ports.JobService
	Contact ports.ContactService
	Export  ports.ExportService
	Sitemap ports.SitemapService

	Mongo *mongo.Database
	Redis *redis.Client

	UploadDir     string
	SecureCookies bool
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("website"))
	e.Use(middleware.Session(deps.Auth))

	// --- Handlers ---
	pageHandler := handler.NewPageHandler(deps.Posts, deps.Jobs)
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SecureCookies)
	postHandler := handler.NewPostHandler(deps.Posts)
	jobHandler := handler.NewJobHandler(deps.Jobs)
	contactHandler := handler.NewContactHandler(deps.Contact)
	exportHandler := handler.NewExportHandler(deps.Export)
	sitemapHandler := handler.NewSitemapHandler(deps.Sitemap)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	requireLogin := middleware.RequireLogin()
	requireAdmin := middleware.RequireAdmin()

	// --- Public pages ---
	e.GET("/", pageHandler.Home)
	e.GET("/about", pageHandler.About)
	e.GET("/services", pageHandler.Services)
	e.GET("/for-clients", pageHandler.ForClients)
	e.GET("/for-hire", pageHandler.ForHire)
	e.GET("/terms", pageHandler.Terms)
	e.GET("/privacy", pageHandler.Privacy)
	e.GET("/careers", pageHandler.Careers)
	e.GET("/career/:id", pageHandler.ShowJob)
	e.GET("/blog", pageHandler.Blog)
	e.GET("/post/:id", pageHandler.ShowPost)
	e.GET("/sitemap.xml", sitemapHandler.Sitemap)

	// --- Auth ---
	e.GET("/auth/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/register", authHandler.RegisterPage)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/logout", authHandler.Logout)

	// --- Contact (login required) ---
	e.GET("/contact", contactHandler.Page, requireLogin)
	e.POST("/contact", contactHandler.Submit, requireLogin)

	// --- Admin-only content mutations ---
	e.GET("/create_post", postHandler.CreatePage, requireAdmin)
	e.POST("/create_post", postHandler.Create, requireAdmin)
	e.GET("/post/:id/update", postHandler.UpdatePage, requireAdmin)
	e.POST("/post/:id/update", postHandler.Update, requireAdmin)
	e.POST("/post/:id/delete", postHandler.Delete, requireAdmin)
	e.GET("/create_job", jobHandler.CreatePage, requireAdmin)
	e.POST("/create_job", jobHandler.Create, requireAdmin)
	e.GET("/job/:id/update", jobHandler.UpdatePage, requireAdmin)
	e.POST("/job/:id/update", jobHandler.Update, requireAdmin)
	e.POST("/job/:id/delete", jobHandler.Delete, requireAdmin)

	// --- Admin export ---
	e.GET("/export/download", exportHandler.Download, requireAdmin)

	// --- Uploaded post images ---
	e.Static("/static/post_images", deps.UploadDir)

	// --- Operations ---
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
