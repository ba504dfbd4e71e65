package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/auth"
	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth         *AuthHandler
	Story        *StoryHandler
	Crisis       *CrisisHandler
	Conversation *ConversationHandler
	Health       *HealthHandler
}

// RouterConfig carries the transport settings of the router
type RouterConfig struct {
	AllowedOrigins []string
	// StoryBodyLimit bounds POST /stories, which carries inline images
	StoryBodyLimit   int64
	DefaultBodyLimit int64
}

// Router holds all handlers and creates the chi router
type Router struct {
	handlers   Handlers
	jwtManager *auth.JWTManager
	limiter    *middleware.RateLimiter
	cfg        RouterConfig
	logger     *zap.Logger
}

// NewRouter creates a new router. limiter guards location verification and
// story submission.
func NewRouter(
	handlers Handlers,
	jwtManager *auth.JWTManager,
	limiter *middleware.RateLimiter,
	cfg RouterConfig,
	logger *zap.Logger,
) *Router {
	return &Router{
		handlers:   handlers,
		jwtManager: jwtManager,
		limiter:    limiter,
		cfg:        cfg,
		logger:     logger,
	}
}

// Setup configures and returns the chi router
func (rt *Router) Setup() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(rt.cfg.AllowedOrigins))
	r.Use(chimiddleware.Compress(5))

	// Health endpoints (no auth required)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", rt.handlers.Health.Health)
		r.Get("/ready", rt.handlers.Health.Ready)
		r.Get("/live", rt.handlers.Health.Live)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Story submission carries base64 images and gets its own body limit
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.RequestSize(rt.cfg.StoryBodyLimit))
			r.Use(rt.limiter.Middleware)
			r.Use(middleware.OptionalAuthMiddleware(rt.jwtManager))
			r.Post("/stories", rt.handlers.Story.SubmitStory)
		})

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.RequestSize(rt.cfg.DefaultBodyLimit))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/google", rt.handlers.Auth.GoogleLogin)
				r.Post("/refresh", rt.handlers.Auth.Refresh)
			})

			// Public reads
			r.Get("/stories/crisis/{crisisId}", rt.handlers.Story.GetCrisisStories)
			r.Post("/stories/{storyId}/like", rt.handlers.Story.LikeStory)
			r.Get("/crises", rt.handlers.Crisis.ListActive)
			r.Get("/crises/{crisisId}", rt.handlers.Crisis.Get)

			r.With(rt.limiter.Middleware).Post("/location/verify", rt.handlers.Crisis.VerifyLocation)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(rt.jwtManager))

				r.Get("/me", rt.handlers.Auth.Me)

				r.Route("/conversations", func(r chi.Router) {
					r.Post("/", rt.handlers.Conversation.Start)
					r.Get("/", rt.handlers.Conversation.List)
					r.Get("/{conversationId}/messages", rt.handlers.Conversation.GetMessages)
					r.Post("/{conversationId}/messages", rt.handlers.Conversation.SendMessage)
				})

				// Moderator routes
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(string(domain.RoleModerator)))

					r.Get("/stories/pending", rt.handlers.Story.GetPendingStories)
					r.Post("/stories/{storyId}/moderate", rt.handlers.Story.ModerateStory)
					r.Put("/crises/{crisisId}", rt.handlers.Crisis.Upsert)
				})
			})
		})
	})

	return r
}
