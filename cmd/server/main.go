package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"thaovyxe/internal/api"
	"thaovyxe/internal/auth"
	"thaovyxe/internal/repository"
	"thaovyxe/internal/service"
	"thaovyxe/internal/upload"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", ""),
		envOr("DB_HOST", "127.0.0.1"),
		envOr("DB_PORT", "5432"),
		envOr("DB_NAME", "thaovy_xe_hop_dong"),
	)
}

func main() {
	godotenv.Load()

	db, err := sql.Open("postgres", databaseURL())
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	db.SetMaxOpenConns(10)
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	uploadStore, err := upload.NewStore(envOr("UPLOAD_DIR", "uploads"))
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	postRepo := repository.NewPostRepository(db)
	contactRepo := repository.NewContactRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	sender := service.NewSenderService()
	bookingSvc := service.NewBookingService(bookingRepo, sender)
	contentSvc := service.NewContentService(serviceRepo, vehicleRepo, postRepo, contactRepo)
	adminSvc := service.NewAdminService(vehicleRepo, serviceRepo, postRepo, contactRepo, statsRepo)
	accountSvc := service.NewAccountService(userRepo)
	authSvc := service.NewAuthService(userRepo, sessionRepo, sender)
	reportSvc := service.NewReportService(bookingRepo)

	publicHandler := api.NewPublicHandler(contentSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	authHandler := api.NewAuthHandler(authSvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	accountHandler := api.NewAccountHandler(accountSvc)
	reportHandler := api.NewReportHandler(reportSvc)
	uploadHandler := api.NewUploadHandler(uploadStore)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/health", publicHandler.Health).Methods("GET")
	r.HandleFunc("/api/services", publicHandler.ListServices).Methods("GET")
	r.HandleFunc("/api/services/{id}", publicHandler.GetService).Methods("GET")
	r.HandleFunc("/api/vehicles/types", publicHandler.ListVehicleTypes).Methods("GET")
	r.HandleFunc("/api/vehicles/types/{slug}", publicHandler.GetVehicleType).Methods("GET")
	r.HandleFunc("/api/vehicles/available", publicHandler.ListAvailableVehicles).Methods("GET")
	r.HandleFunc("/api/vehicles", publicHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/posts", publicHandler.ListPosts).Methods("GET")
	r.HandleFunc("/api/posts/{id}", publicHandler.GetPost).Methods("GET")
	r.HandleFunc("/api/contacts", publicHandler.SubmitContact).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.Create).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.List).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.GetByID).Methods("GET")
	r.HandleFunc("/api/bookings/{id}/status", bookingHandler.UpdateStatus).Methods("PUT")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/stats", adminHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/bookings/stats", reportHandler.BookingStats).Methods("GET")
	admin.HandleFunc("/bookings/export", reportHandler.ExportBookings).Methods("GET")
	admin.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	admin.HandleFunc("/bookings/{id}/status", bookingHandler.UpdateStatus).Methods("PUT")
	admin.HandleFunc("/bookings/{id}", bookingHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/vehicles", publicHandler.ListVehicles).Methods("GET")
	admin.HandleFunc("/vehicles", adminHandler.CreateVehicle).Methods("POST")
	admin.HandleFunc("/vehicles/{id}", adminHandler.UpdateVehicle).Methods("PUT")
	admin.HandleFunc("/vehicles/{id}", adminHandler.DeleteVehicle).Methods("DELETE")
	admin.HandleFunc("/services", adminHandler.ListServices).Methods("GET")
	admin.HandleFunc("/services", adminHandler.CreateService).Methods("POST")
	admin.HandleFunc("/services/{id}", adminHandler.UpdateService).Methods("PUT")
	admin.HandleFunc("/services/{id}", adminHandler.DeleteService).Methods("DELETE")
	admin.HandleFunc("/posts", adminHandler.ListPosts).Methods("GET")
	admin.HandleFunc("/posts", adminHandler.CreatePost).Methods("POST")
	admin.HandleFunc("/posts/{id}", adminHandler.UpdatePost).Methods("PUT")
	admin.HandleFunc("/posts/{id}", adminHandler.DeletePost).Methods("DELETE")
	admin.HandleFunc("/contacts", adminHandler.ListContacts).Methods("GET")
	admin.HandleFunc("/contacts/{id}/status", adminHandler.UpdateContactStatus).Methods("PUT")
	admin.HandleFunc("/contacts/{id}", adminHandler.DeleteContact).Methods("DELETE")
	admin.HandleFunc("/users", accountHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users", accountHandler.CreateUser).Methods("POST")
	admin.HandleFunc("/users/{id}/toggle-status", accountHandler.ToggleUserStatus).Methods("PUT")
	admin.HandleFunc("/users/{id}", accountHandler.UpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}", accountHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/change-password", accountHandler.ChangePassword).Methods("POST")
	admin.HandleFunc("/upload", uploadHandler.Upload).Methods("POST")

	// Uploaded images
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir))))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := envOr("PORT", "3000")
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(handlers.LoggingHandler(os.Stdout, r))))
}
