package main

import (
	"encoding/json"
	"net/http"
	"time"

	database "expenseflow/db"
	"expenseflow/internal/auth"
	"expenseflow/internal/config"
	"expenseflow/internal/finance/application"
	"expenseflow/internal/finance/infrastructure"
	"expenseflow/internal/finance/interfaces"
	"expenseflow/internal/user"

	"github.com/sirupsen/logrus"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authService        auth.Service
	authHandler        *auth.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	analyticsHandler   *interfaces.AnalyticsHandler
}

func NewServer(
	dbService *database.DBService,
	authService auth.Service,
	authHandler *auth.Handler,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	analyticsHandler *interfaces.AnalyticsHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authService:        authService,
		authHandler:        authHandler,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		analyticsHandler:   analyticsHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
		"db":     s.dbService.Health(),
	})
}

func (s *Server) RegisterRoutes() {
	authRequired := s.authService.AuthMiddleware()

	mainRouter := http.NewServeMux()

	// Public routes
	mainRouter.Handle("POST /api/auth/signup", http.HandlerFunc(s.authHandler.HandleSignup))
	mainRouter.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mainRouter.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	mainRouter.Handle("POST /api/auth/forgot-password", http.HandlerFunc(s.authHandler.HandleForgotPassword))
	mainRouter.Handle("POST /api/auth/reset-password", http.HandlerFunc(s.authHandler.HandleResetPassword))
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (session cookie required)
	mainRouter.Handle("GET /api/auth/me", authRequired(http.HandlerFunc(s.authHandler.HandleMe)))
	mainRouter.Handle("DELETE /api/auth/delete-account", authRequired(http.HandlerFunc(s.authHandler.HandleDeleteAccount)))
	mainRouter.Handle("DELETE /api/auth/delete-data", authRequired(http.HandlerFunc(s.authHandler.HandleDeleteData)))

	mainRouter.Handle("GET /api/expenses", authRequired(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	mainRouter.Handle("POST /api/expenses", authRequired(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mainRouter.Handle("PUT /api/expenses", authRequired(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mainRouter.Handle("DELETE /api/expenses", authRequired(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	mainRouter.Handle("GET /api/categories", authRequired(http.HandlerFunc(s.categoryHandler.GetCategories)))
	mainRouter.Handle("POST /api/categories", authRequired(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	mainRouter.Handle("DELETE /api/categories", authRequired(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	mainRouter.Handle("GET /api/analytics/summary", authRequired(http.HandlerFunc(s.analyticsHandler.GetSummary)))
	mainRouter.Handle("GET /api/analytics/trends", authRequired(http.HandlerFunc(s.analyticsHandler.GetMonthlyTrends)))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DBConnString)
	if err != nil {
		logrus.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService, userService, cfg.IsProd)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	analyticsService := application.NewAnalyticsService(transactionRepo)
	analyticsHandler := interfaces.NewAnalyticsHandler(analyticsService, respondJSON, respondError)

	server := NewServer(dbService, authService, authHandler, transactionHandler, categoryHandler, analyticsHandler)
	server.RegisterRoutes()

	logrus.Infof("Server starting on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, loggingMiddleware(server.router)); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}
}
