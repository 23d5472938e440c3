package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/AlexSec-DEV/BlackKeyv2/controllers/admins"
	"github.com/AlexSec-DEV/BlackKeyv2/controllers/auth"
	"github.com/AlexSec-DEV/BlackKeyv2/controllers/users"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for Docker health checks
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "blackkey-api",
		})
	})).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	origins := []string{
		"http://localhost:3000", "http://localhost:5173",
		"http://127.0.0.1:3000", "http://127.0.0.1:5173",
	}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	// catch-all OPTIONS handler for CORS preflight
	r.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// Public endpoints
	r.Handle("/stats", http.HandlerFunc(users.PublicStatsHandler)).Methods(http.MethodGet)

	// Auth endpoints behind a tight per-IP limit
	authLimiter := middleware.NewIPRateLimiter(20, time.Minute)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(authLimiter.Middleware)
	authRouter.Handle("/register", http.HandlerFunc(auth.RegisterHandler)).Methods(http.MethodPost)
	authRouter.Handle("/login", http.HandlerFunc(auth.LoginHandler)).Methods(http.MethodPost)
	authRouter.Handle("/logout", http.HandlerFunc(auth.LogoutHandler)).Methods(http.MethodPost)

	// Authenticated user endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware)
	api.Handle("/profile", http.HandlerFunc(users.ProfileHandler)).Methods(http.MethodGet)
	api.Handle("/profile", http.HandlerFunc(users.UpdateProfileHandler)).Methods(http.MethodPut)
	api.Handle("/profile/image", http.HandlerFunc(users.UploadProfileImageHandler)).Methods(http.MethodPost)

	api.Handle("/investments", http.HandlerFunc(users.CreateInvestmentHandler)).Methods(http.MethodPost)
	api.Handle("/investments/my", http.HandlerFunc(users.MyInvestmentsHandler)).Methods(http.MethodGet)
	api.Handle("/investments/packages", http.HandlerFunc(users.PackagesHandler)).Methods(http.MethodGet)

	api.Handle("/transactions/deposit", http.HandlerFunc(users.DepositHandler)).Methods(http.MethodPost)
	api.Handle("/transactions/withdraw", http.HandlerFunc(users.WithdrawHandler)).Methods(http.MethodPost)
	api.Handle("/transactions/history", http.HandlerFunc(users.TransactionHistoryHandler)).Methods(http.MethodGet)

	api.Handle("/payment/info", http.HandlerFunc(users.PaymentInfoHandler)).Methods(http.MethodGet)

	// Admin endpoints
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuthMiddleware)
	admin.Handle("/users", http.HandlerFunc(admins.ListUsersHandler)).Methods(http.MethodGet)
	admin.Handle("/users/{id:[0-9]+}/block", http.HandlerFunc(admins.BlockUserHandler)).Methods(http.MethodPut)

	admin.Handle("/stats", http.HandlerFunc(admins.PlatformStatsHandler)).Methods(http.MethodGet)
	admin.Handle("/fake-stats", http.HandlerFunc(admins.GetFakeStatsHandler)).Methods(http.MethodGet)
	admin.Handle("/fake-stats", http.HandlerFunc(admins.UpdateFakeStatsHandler)).Methods(http.MethodPut)

	admin.Handle("/deposits", http.HandlerFunc(admins.ListDepositsHandler)).Methods(http.MethodGet)
	admin.Handle("/withdrawals", http.HandlerFunc(admins.ListWithdrawalsHandler)).Methods(http.MethodGet)
	admin.Handle("/transactions/{id:[0-9]+}/resolve", http.HandlerFunc(admins.ResolveTransactionHandler)).Methods(http.MethodPost)

	admin.Handle("/packages", http.HandlerFunc(admins.ListPackagesHandler)).Methods(http.MethodGet)
	admin.Handle("/packages/{type}", http.HandlerFunc(admins.GetPackageHandler)).Methods(http.MethodGet)
	admin.Handle("/packages/{type}", http.HandlerFunc(admins.UpdatePackageHandler)).Methods(http.MethodPut)

	admin.Handle("/payment-info", http.HandlerFunc(admins.ListPaymentInfoHandler)).Methods(http.MethodGet)
	admin.Handle("/payment-info", http.HandlerFunc(admins.UpsertPaymentInfoHandler)).Methods(http.MethodPost)

	admin.Handle("/blocked-ips", http.HandlerFunc(admins.ListBlockedIPsHandler)).Methods(http.MethodGet)
	admin.Handle("/blocked-ips", http.HandlerFunc(admins.BlockIPHandler)).Methods(http.MethodPost)
	admin.Handle("/blocked-ips/{id:[0-9]+}", http.HandlerFunc(admins.UnblockIPHandler)).Methods(http.MethodDelete)

	return r
}
