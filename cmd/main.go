package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/auth"
	"github.com/OpenHorizon/pipeline-api/internal/budget"
	"github.com/OpenHorizon/pipeline-api/internal/communication"
	"github.com/OpenHorizon/pipeline-api/internal/distance"
	"github.com/OpenHorizon/pipeline-api/internal/expense"
	"github.com/OpenHorizon/pipeline-api/internal/export"
	"github.com/OpenHorizon/pipeline-api/internal/grant"
	"github.com/OpenHorizon/pipeline-api/internal/notification"
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/profit"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"github.com/OpenHorizon/pipeline-api/internal/quote"
	"github.com/OpenHorizon/pipeline-api/internal/seed"
	"github.com/OpenHorizon/pipeline-api/internal/user"
	"github.com/OpenHorizon/pipeline-api/internal/utils/db"
	"github.com/OpenHorizon/pipeline-api/internal/vendor"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func migrateAll(conn *gorm.DB) error {
	for _, migrate := range []func(*gorm.DB) error{
		user.Migrate,
		project.Migrate,
		phase.Migrate,
		vendor.Migrate,
		quote.Migrate,
		communication.Migrate,
		expense.Migrate,
		budget.Migrate,
		seed.Migrate,
	} {
		if err := migrate(conn); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := migrateAll(conn); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	// The distance resolver memoizes through Redis when available and
	// falls back to an in-process cache otherwise.
	var cache distance.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = distance.NewRedisCache(addr)
		log.Println("Distance cache: redis at " + addr)
	} else {
		cache = distance.NewMemoryCache()
		log.Println("Distance cache: in-memory")
	}
	resolver := distance.NewResolver(cache)

	mailer := notification.NewMailer()

	userHandler := user.NewHandler(conn)
	projectHandler := project.NewHandler(conn)
	phaseHandler := phase.NewHandler(conn)
	vendorHandler := vendor.NewHandler(conn)
	quoteHandler := quote.NewHandler(conn)
	communicationHandler := communication.NewHandler(conn)
	expenseHandler := expense.NewHandler(conn, mailer)
	budgetHandler := budget.NewHandler(conn)
	grantHandler := grant.NewHandler(conn, resolver)
	profitHandler := profit.NewHandler(conn)
	seedHandler := seed.NewHandler(conn, seed.NewAIService())
	exportHandler := export.NewHandler(conn)

	r := mux.NewRouter()

	r.HandleFunc("/login", userHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	// Projects
	api.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.GetByID).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Update).Methods("PUT")
	api.HandleFunc("/projects/{id}", projectHandler.Delete).Methods("DELETE")
	api.HandleFunc("/projects/{id}/grant", grantHandler.CalculateForProject).Methods("POST")
	api.HandleFunc("/projects/{id}/budget", budgetHandler.GetSummary).Methods("GET")
	api.HandleFunc("/projects/{id}/export", exportHandler.ExportProject).Methods("GET")

	// Phases
	api.HandleFunc("/projects/{id}/phases", phaseHandler.CreateForProject).Methods("POST")
	api.HandleFunc("/projects/{id}/phases", phaseHandler.ListByProject).Methods("GET")
	api.HandleFunc("/phases/{id}", phaseHandler.GetByID).Methods("GET")
	api.HandleFunc("/phases/{id}", phaseHandler.Update).Methods("PUT")
	api.HandleFunc("/phases/{id}", phaseHandler.Delete).Methods("DELETE")

	// Vendors
	api.HandleFunc("/vendors", vendorHandler.Create).Methods("POST")
	api.HandleFunc("/vendors", vendorHandler.List).Methods("GET")
	api.HandleFunc("/vendors/{id}", vendorHandler.GetByID).Methods("GET")
	api.HandleFunc("/vendors/{id}", vendorHandler.Update).Methods("PUT")
	api.HandleFunc("/vendors/{id}", vendorHandler.Delete).Methods("DELETE")

	// Quotes
	api.HandleFunc("/phases/{id}/quotes", quoteHandler.CreateForPhase).Methods("POST")
	api.HandleFunc("/phases/{id}/quotes", quoteHandler.ListByPhase).Methods("GET")
	api.HandleFunc("/vendors/{id}/quotes", quoteHandler.ListByVendor).Methods("GET")
	api.HandleFunc("/quotes/{id}/status", quoteHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc("/quotes/{id}", quoteHandler.Delete).Methods("DELETE")

	// Communications
	api.HandleFunc("/communications", communicationHandler.Create).Methods("POST")
	api.HandleFunc("/phases/{id}/communications", communicationHandler.ListByPhase).Methods("GET")
	api.HandleFunc("/vendors/{id}/communications", communicationHandler.ListByVendor).Methods("GET")
	api.HandleFunc("/communications/{id}", communicationHandler.Delete).Methods("DELETE")

	// Expenses
	api.HandleFunc("/expenses", expenseHandler.Create).Methods("POST")
	api.HandleFunc("/expenses", expenseHandler.List).Methods("GET")
	api.HandleFunc("/expenses/{id}", expenseHandler.GetByID).Methods("GET")
	api.HandleFunc("/expenses/{id}", expenseHandler.Update).Methods("PUT")
	api.HandleFunc("/expenses/{id}", expenseHandler.Delete).Methods("DELETE")

	// Budget alerts
	api.HandleFunc("/projects/{id}/alerts", budgetHandler.CreateAlert).Methods("POST")
	api.HandleFunc("/projects/{id}/alerts", budgetHandler.ListAlerts).Methods("GET")
	api.HandleFunc("/alerts/{id}", budgetHandler.UpdateAlert).Methods("PUT")
	api.HandleFunc("/alerts/{id}", budgetHandler.DeleteAlert).Methods("DELETE")

	// Grant calculator and profit dashboard
	api.HandleFunc("/calculator/grant", grantHandler.Calculate).Methods("POST")
	api.HandleFunc("/dashboard/profit", profitHandler.Dashboard).Methods("GET")

	// Seeds
	api.HandleFunc("/seeds/brainstorm", seedHandler.Brainstorm).Methods("POST")
	api.HandleFunc("/seeds", seedHandler.List).Methods("GET")
	api.HandleFunc("/seeds/{id}", seedHandler.GetByID).Methods("GET")
	api.HandleFunc("/seeds/{id}", seedHandler.Delete).Methods("DELETE")

	// User management, admins only
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/users", userHandler.Create).Methods("POST")
	admin.HandleFunc("/users", userHandler.List).Methods("GET")
	admin.HandleFunc("/users/{id}", userHandler.GetByID).Methods("GET")
	admin.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Println("Listening on http://localhost:" + port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal("Server error: ", err)
	case <-quit:
		log.Println("Shutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Println("Shutdown error: ", err)
	}
}
