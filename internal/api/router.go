package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communityhub/platform-api/internal/api/handler"
	"github.com/communityhub/platform-api/internal/api/middleware"
	"github.com/communityhub/platform-api/internal/auth"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
	"github.com/communityhub/platform-api/internal/core/service"
	mongodb "github.com/communityhub/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/communityhub/platform-api/internal/infrastructure/db/redis"
)

// Deps carries the externally constructed dependencies the router wires into
// handlers. The audit Recorder is the async dispatcher started in main; the
// Store is its read side used by the admin endpoint.
type Deps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Tokens     *auth.TokenService
	Hasher     *auth.Hasher
	Audit      ports.AuditRecorder
	AuditStore ports.AuditRepository
	AuthCfg    service.AuthConfig
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("platform"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(d.DB)
	events := mongodb.NewEventRepository(d.DB)
	regs := mongodb.NewRegistrationRepository(d.DB)
	books := mongodb.NewBookRepository(d.DB)
	doctors := mongodb.NewDoctorRepository(d.DB)
	appts := mongodb.NewAppointmentRepository(d.DB)
	posts := mongodb.NewPostRepository(d.DB)
	limiter := redisdb.NewLoginLimiter(d.Redis)

	authService := service.NewAuthService(users, d.Hasher, d.Tokens, limiter, d.Audit, d.AuthCfg, d.Log)
	eventService := service.NewEventService(events, regs, d.Log)
	bookService := service.NewBookService(books, d.Log)
	clinicService := service.NewClinicService(doctors, appts, d.Log)
	postService := service.NewPostService(posts, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(authService, d.AuditStore)
	eventHandler := handler.NewEventHandler(eventService)
	bookHandler := handler.NewBookHandler(bookService)
	clinicHandler := handler.NewClinicHandler(clinicService)
	postHandler := handler.NewPostHandler(postService)

	authenticated := middleware.Authenticate(d.Tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	userOnly := middleware.RequireRole(domain.RoleUser)
	patientOnly := middleware.RequireRole(domain.RolePatient)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authenticated)
	e.PUT("/me", authHandler.UpdateMe, authenticated)

	// --- Events ---
	e.GET("/events", eventHandler.List)
	e.GET("/events/:id", eventHandler.Get)
	e.POST("/events/:id/registrations", eventHandler.Register, authenticated)
	e.DELETE("/events/:id/registrations", eventHandler.Cancel, authenticated)

	// --- Books ---
	e.GET("/books", bookHandler.List)
	e.POST("/books", bookHandler.Add, authenticated, adminOnly)
	e.POST("/books/:id/borrow", bookHandler.Borrow, authenticated, userOnly)
	e.POST("/books/:id/return", bookHandler.Return, authenticated, userOnly)

	// --- Clinic ---
	e.GET("/doctors", clinicHandler.ListDoctors)
	e.POST("/appointments", clinicHandler.BookAppointment, authenticated, patientOnly)
	e.GET("/appointments", clinicHandler.ListAppointments, authenticated)

	// --- Posts ---
	e.POST("/posts", postHandler.Create, authenticated)
	e.GET("/posts/mine", postHandler.ListMine, authenticated)

	// --- Admin ---
	admin := e.Group("/admin", authenticated, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.ChangeRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/audit", adminHandler.ListAudit)
	admin.POST("/events", eventHandler.Create)
	admin.PUT("/events/:id", eventHandler.Update)
	admin.DELETE("/events/:id", eventHandler.Delete)
	admin.POST("/doctors", clinicHandler.AddDoctor)
	admin.GET("/posts", postHandler.ListAll)
	admin.DELETE("/posts/:id", postHandler.Delete)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
