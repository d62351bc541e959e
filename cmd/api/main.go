package main

import (
	"context"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/config"
	"github.com/plumeria/retreat-api/internal/domain/admin"
	"github.com/plumeria/retreat-api/internal/domain/booking"
	"github.com/plumeria/retreat-api/internal/domain/catalog"
	"github.com/plumeria/retreat-api/internal/domain/content"
	"github.com/plumeria/retreat-api/internal/domain/enquiry"
	"github.com/plumeria/retreat-api/internal/domain/gallery"
	"github.com/plumeria/retreat-api/internal/middleware"
	"github.com/plumeria/retreat-api/internal/pkg/database"
	"github.com/plumeria/retreat-api/internal/pkg/imaging"
	"github.com/plumeria/retreat-api/internal/pkg/jwt"
	"github.com/plumeria/retreat-api/internal/pkg/mailer"
	"github.com/plumeria/retreat-api/internal/pkg/partner"
	"github.com/plumeria/retreat-api/internal/pkg/password"
	pkgresponse "github.com/plumeria/retreat-api/internal/pkg/response"
	"github.com/plumeria/retreat-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Plumeria Retreat API")

	// Postgres is optional: without it the catalog runs from fixtures
	// and bookings live in memory.
	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	if db != nil {
		defer database.ClosePostgres(db)
	} else {
		log.Warn().Msg("No DATABASE_URL set, running from in-memory fixtures")
	}

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if redisClient != nil {
		defer database.CloseRedis(redisClient)
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AdminJWTTTL)

	// ---------- Storage ----------
	var store storage.Storage
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Storage(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 storage")
		}
		store = s3Store
	} else {
		localStore, err := storage.NewLocalStorage(cfg.MediaDir, cfg.MediaURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create local storage")
		}
		store = localStore
	}

	// ---------- Mailer ----------
	var mailSvc *mailer.Service
	if cfg.SendGridAPIKey != "" {
		mailSvc = mailer.NewService(mailer.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		})
	} else {
		log.Warn().Msg("No SENDGRID_API_KEY set, transactional email disabled")
	}

	// ---------- Repositories ----------
	var catalogRepo catalog.Repository
	var bookingRepo booking.Repository
	var enquiryRepo enquiry.Repository
	var galleryRepo gallery.Repository
	var adminRepo admin.Repository

	if db != nil {
		catalogRepo = catalog.NewRepository(db)
		bookingRepo = booking.NewRepository(db)
		enquiryRepo = enquiry.NewRepository(db)
		galleryRepo = gallery.NewRepository(db)
		adminRepo = admin.NewRepository(db)
	} else {
		catalogRepo = catalog.NewMemoryRepository()
		bookingRepo = booking.NewMemoryRepository()
		enquiryRepo = enquiry.NewMemoryRepository()
		galleryRepo = gallery.NewMemoryRepository()
		adminRepo = bootstrapAdminRepo(cfg)
	}

	// ---------- Services ----------
	catalogSvc := catalog.NewService(catalogRepo, redisClient, cfg.CatalogCacheTTL)

	var coupons booking.CouponValidator
	if cfg.CouponStrategy == "remote" && cfg.PartnerBaseURL != "" {
		partnerClient := partner.NewClient(
			cfg.PartnerBaseURL,
			cfg.PartnerToken,
			time.Duration(cfg.PartnerTimeoutSeconds)*time.Second,
			"plumeria-retreat-api/1.0",
		)
		coupons = booking.NewRemoteCouponValidator(partnerClient)
	} else {
		coupons = booking.NewLocalCouponValidator()
	}

	checker := booking.NewAvailabilityChecker(catalogSvc, bookingRepo)

	feedHub := booking.NewHub(redisClient)
	go feedHub.Run()
	defer feedHub.Stop()

	var confirmations booking.ConfirmationSender
	var acks enquiry.AckSender
	if mailSvc != nil {
		confirmations = mailSvc
		acks = mailSvc
	}

	bookingSvc := booking.NewService(bookingRepo, catalogSvc, coupons, checker, feedHub, confirmations)
	gallerySvc := gallery.NewService(galleryRepo, store, imaging.NewProcessor(imaging.DefaultConfig()))
	adminSvc := admin.NewService(adminRepo, jwtService)

	enquirySvc := enquiry.NewService(enquiryRepo, acks)

	// ---------- Handlers ----------
	catalogHandler := catalog.NewHandler(catalogSvc)
	bookingHandler := booking.NewHandler(bookingSvc, feedHub, cfg.AllowedOrigins)
	contentHandler := content.NewHandler()
	galleryHandler := gallery.NewHandler(gallerySvc)
	enquiryHandler := enquiry.NewHandler(enquirySvc)
	adminHandler := admin.NewHandler(adminSvc)

	adminAuth := admin.AuthMiddleware(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	// WebSocket endpoint (before Compress)
	r.Get("/ws/bookings", func(w http.ResponseWriter, r *http.Request) {
		adminAuth(http.HandlerFunc(bookingHandler.Feed)).ServeHTTP(w, r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})
	r.Handle("/debug/vars", expvar.Handler())

	if cfg.S3Bucket == "" {
		// Serve uploads from disk when no object storage is configured
		fs := http.StripPrefix(cfg.MediaURL+"/", http.FileServer(http.Dir(cfg.MediaDir)))
		r.Get(cfg.MediaURL+"/*", func(w http.ResponseWriter, r *http.Request) {
			fs.ServeHTTP(w, r)
		})
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.Compress(5))

		catalogHandler.Register(r)
		bookingHandler.Register(r)
		galleryHandler.Register(r)
		enquiryHandler.Register(r)

		r.Mount("/content", contentHandler.Routes())
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Mount("/", adminHandler.Routes(adminAuth))
		r.Mount("/bookings", bookingHandler.AdminRoutes(adminAuth))
		r.Mount("/gallery", galleryHandler.AdminRoutes(adminAuth))
		r.Mount("/enquiries", enquiryHandler.AdminRoutes(adminAuth))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}

// bootstrapAdminRepo builds the single-admin repository for fixtures
// mode. Without ADMIN_PASSWORD the admin API stays locked.
func bootstrapAdminRepo(cfg *config.Config) admin.Repository {
	pwd := cfg.AdminPassword
	if pwd == "" {
		log.Warn().Msg("No ADMIN_PASSWORD set, admin login disabled in fixtures mode")
		pwd = "disabled-" + time.Now().Format(time.RFC3339Nano)
	}
	hash, err := password.Hash(pwd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash bootstrap admin password")
	}
	return admin.NewMemoryRepository(cfg.AdminEmail, "Administrator", hash)
}
