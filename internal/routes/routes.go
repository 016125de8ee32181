package routes

import (
	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/config"
	"github.com/forestgump22/tutorgo-frontend/internal/genai"
	"github.com/forestgump22/tutorgo-frontend/internal/handlers"
	"github.com/forestgump22/tutorgo-frontend/internal/metrics"
	"github.com/forestgump22/tutorgo-frontend/internal/middleware"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/repository"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	chatws "github.com/forestgump22/tutorgo-frontend/internal/websocket"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, log *zap.Logger) {
	sessionRepo := repository.NewSessionRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)

	backend := api.NewClient(cfg.APIBaseURL)
	generator := genai.NewClient(genai.DefaultBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)

	authService := services.NewAuthService(backend, sessionRepo)
	tutorService := services.NewTutorService(backend)
	availabilityService := services.NewAvailabilityService(backend)
	bookingService := services.NewBookingService(backend)
	paymentService := services.NewPaymentService(backend)
	sessionService := services.NewSessionService(backend)
	linkService := services.NewLinkService(backend, sessionService)
	reviewService := services.NewReviewService(backend, sessionService)
	notificationService := services.NewNotificationService(backend)
	dashboardService := services.NewDashboardService(backend)
	chatService := services.NewChatService(generator, transcriptRepo, log)

	chatHub := chatws.NewHub(log)
	go chatHub.Run()

	authHandler := handlers.NewAuthHandler(authService, cfg.CookieSecure)
	profileHandler := handlers.NewProfileHandler(authService, tutorService)
	tutorHandler := handlers.NewTutorHandler(tutorService, availabilityService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, availabilityService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	sessionHandler := handlers.NewSessionHandler(sessionService, linkService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, tutorService)
	chatHandler := handlers.NewChatHandler(chatService, chatHub)

	app.Use(middleware.Hydrate(authService))
	app.Use(middleware.ChatOwner(cfg.CookieSecure))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Public pages.
	app.Get("/", tutorHandler.HomePage)
	app.Get("/buscar-tutores", tutorHandler.SearchPage)
	app.Get("/tutores/:id", tutorHandler.DetailPage)
	app.Get("/login", middleware.RedirectIfAuthed(), authHandler.LoginPage)
	app.Get("/register", middleware.RedirectIfAuthed(), authHandler.RegisterPage)

	// Signed-in pages.
	requireAuth := middleware.RequireAuth()
	requireStudent := middleware.RequireRole(models.RoleStudent)
	requireTutor := middleware.RequireRole(models.RoleTutor)

	app.Get("/dashboard", requireAuth, dashboardHandler.Page)
	app.Get("/perfil", requireAuth, profileHandler.ProfilePage)
	app.Get("/cambiar-contrasena", requireAuth, profileHandler.ChangePasswordPage)
	app.Get("/eliminar-cuenta", requireAuth, profileHandler.DeleteAccountPage)
	app.Get("/mis-notificaciones", requireAuth, notificationHandler.Page)
	app.Get("/historial-pagos", requireAuth, paymentHandler.HistoryPage)

	app.Get("/mis-tutorias", requireStudent, sessionHandler.MyTutoringsPage)
	app.Get("/checkout/:pagoId", requireStudent, bookingHandler.CheckoutPage)

	app.Get("/mis-clases", requireTutor, sessionHandler.MyClassesPage)
	app.Get("/mi-disponibilidad", requireTutor, availabilityHandler.MySchedulePage)

	// JSON API.
	apiGroup := app.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/register", authHandler.Register)

	users := apiGroup.Group("/users")
	users.Put("/me/profile", requireAuth, profileHandler.UpdateProfile)
	users.Put("/me/password", requireAuth, profileHandler.UpdatePassword)
	users.Delete("/me", requireAuth, profileHandler.DeleteAccount)

	apiGroup.Put("/tutores/me/bio", requireTutor, profileHandler.UpdateBio)

	disponibilidades := apiGroup.Group("/disponibilidades")
	disponibilidades.Post("", requireTutor, availabilityHandler.Add)
	disponibilidades.Delete("/:id", requireTutor, availabilityHandler.Delete)

	apiGroup.Post("/reservas", requireStudent, bookingHandler.Reserve)
	apiGroup.Get("/pagos/:pagoId", requireAuth, paymentHandler.Details)
	apiGroup.Post("/pagos/:pagoId/confirmar", requireStudent, bookingHandler.ConfirmPayment)
	apiGroup.Post("/resenas/sesion/:sesionId", requireStudent, reviewHandler.Create)

	sesiones := apiGroup.Group("/sesiones")
	sesiones.Post("/:id/enlaces", requireTutor, sessionHandler.AddEnlaces)
	sesiones.Delete("/:id/enlaces/:enlaceId", requireTutor, sessionHandler.DeleteEnlace)

	// The assistant works for anonymous visitors too; its owner key comes
	// from the session or the chat cookie.
	ai := apiGroup.Group("/ai")
	ai.Post("", chatHandler.Send)
	ai.Get("/history", chatHandler.History)
	ai.Delete("/history", chatHandler.Clear)
	ai.Put("/open", chatHandler.SetOpen)
	ai.Use("/ws", chatHandler.WebSocketAuth)
	ai.Get("/ws", websocket.New(chatHandler.HandleWebSocket))
}
