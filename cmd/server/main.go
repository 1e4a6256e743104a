package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusnet/campusnet/internal/config"
	"github.com/campusnet/campusnet/internal/database"
	"github.com/campusnet/campusnet/internal/handlers"
	"github.com/campusnet/campusnet/internal/logging"
	"github.com/campusnet/campusnet/internal/middleware"
	"github.com/campusnet/campusnet/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Server.Debug {
		logger.SetLevel(logging.LevelDebug)
		logging.SetDefaultLevel(logging.LevelDebug)
	}

	logger.Info("Starting CampusNet server...")

	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	logger.Info("Running database migrations...")
	migrator, err := database.NewMigrator(cfg.Database.DSN(), "migrations")
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return fmt.Errorf("running migrations: %w", err)
	}
	_ = migrator.Close()
	logger.Info("Migrations completed")

	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Redis.Addr(),
	})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisDB.Close() }()
	logger.Info("Connected to Redis")

	// Services
	dbAdapter := services.NewPoolAdapter(db.Pool)
	sessionStore := services.NewRedisSessionStore(redisDB.Client)

	userService := services.NewUserService(dbAdapter, cfg.App.AllowedEmailSuffixes)
	authService := services.NewAuthService(dbAdapter, sessionStore)
	emailService := services.NewEmailService(&cfg.Email, dbAdapter, userService)
	uploadService := services.NewUploadService(cfg.Email.BaseURL)
	postService := services.NewPostService(dbAdapter, uploadService, cfg.App.DefaultAvatar)
	likeService := services.NewLikeService(dbAdapter)
	commentService := services.NewCommentService(dbAdapter, cfg.App.DefaultAvatar)
	friendService := services.NewFriendService(dbAdapter, cfg.App.DefaultAvatar)
	suggestionService := services.NewSuggestionService(dbAdapter, cfg.App.DefaultAvatar, cfg.App.SuggestionLimit)
	notificationService := services.NewNotificationService(dbAdapter)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, redisDB)
	authHandler := handlers.NewAuthHandler(userService, authService, emailService, uploadService, cfg.Server.Secure)
	postHandler := handlers.NewPostHandler(postService, likeService, commentService, notificationService)
	friendHandler := handlers.NewFriendHandler(friendService, notificationService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	csrfMiddleware := middleware.NewCSRFMiddleware(cfg.Server.Secure)
	securityHeaders := middleware.NewSecurityHeaders(cfg.Server.Secure)
	cacheControl := middleware.NewCacheControl()
	compress := middleware.NewCompress()
	requestLogger := middleware.NewRequestLogger(logger)
	authRateLimiter := middleware.NewAuthRateLimiter(redisDB.Client)

	requireAuth := authMiddleware.RequireAuth
	limitAuth := authRateLimiter.Middleware

	mux := http.NewServeMux()

	// Health endpoints (no auth, no rate limit)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)

	// Auth endpoints
	mux.Handle("POST /api/auth/register", limitAuth(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", limitAuth(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(authHandler.Logout))
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/auth/profile", requireAuth(http.HandlerFunc(authHandler.CompleteProfile)))
	mux.Handle("POST /api/auth/verify-email", http.HandlerFunc(authHandler.VerifyEmail))
	mux.Handle("POST /api/auth/resend-verification", requireAuth(http.HandlerFunc(authHandler.ResendVerification)))

	// Post endpoints
	mux.Handle("POST /api/posts", requireAuth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /api/posts", requireAuth(http.HandlerFunc(postHandler.List)))
	mux.Handle("DELETE /api/posts/{id}", requireAuth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("POST /api/posts/{id}/like", requireAuth(http.HandlerFunc(postHandler.ToggleLike)))
	mux.Handle("GET /api/posts/{id}/likes", requireAuth(http.HandlerFunc(postHandler.GetLikes)))
	mux.Handle("POST /api/posts/{id}/comments", requireAuth(http.HandlerFunc(postHandler.AddComment)))
	mux.Handle("GET /api/posts/{id}/comments", requireAuth(http.HandlerFunc(postHandler.ListComments)))
	mux.Handle("GET /api/posts/{id}/comments/count", requireAuth(http.HandlerFunc(postHandler.CountComments)))
	mux.Handle("GET /api/users/{id}/posts", requireAuth(http.HandlerFunc(postHandler.ListByUser)))

	// Friend endpoints
	mux.Handle("GET /api/friends", requireAuth(http.HandlerFunc(friendHandler.List)))
	mux.Handle("POST /api/friends/requests", requireAuth(http.HandlerFunc(friendHandler.SendRequest)))
	mux.Handle("PATCH /api/friends/requests/{id}", requireAuth(http.HandlerFunc(friendHandler.Respond)))

	// Suggestion endpoint
	mux.Handle("GET /api/suggestions", requireAuth(http.HandlerFunc(suggestionHandler.List)))

	// Notification endpoints
	mux.Handle("GET /api/notifications", requireAuth(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("GET /api/notifications/unread-count", requireAuth(http.HandlerFunc(notificationHandler.UnreadCount)))
	mux.Handle("PATCH /api/notifications/{id}/read", requireAuth(http.HandlerFunc(notificationHandler.MarkRead)))
	mux.Handle("POST /api/notifications/read-all", requireAuth(http.HandlerFunc(notificationHandler.MarkAllRead)))

	// Image upload
	mux.Handle("POST /api/upload", requireAuth(http.HandlerFunc(uploadHandler.Upload)))

	// Static frontend
	fs := http.FileServer(http.Dir("web/static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))
	mux.Handle("GET /{$}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/static/index.html")
	}))

	// Middleware chain (order matters: outermost first)
	var handler http.Handler = mux
	handler = authMiddleware.Authenticate(handler)
	handler = csrfMiddleware.Protect(handler)
	handler = cacheControl.Apply(handler)
	handler = compress.Apply(handler)
	handler = securityHeaders.Apply(handler)
	handler = requestLogger.Apply(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}
