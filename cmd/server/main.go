package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftroast/backend/internal/config"
	"github.com/craftroast/backend/internal/handler"
	"github.com/craftroast/backend/internal/logging"
	"github.com/craftroast/backend/internal/mailer"
	"github.com/craftroast/backend/internal/repository"
	"github.com/craftroast/backend/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load configuration", "error", err)
	}

	db, err := repository.Open(cfg.DatabasePath)
	if err != nil {
		logging.Fatal("open database", "error", err, "path", cfg.DatabasePath)
	}
	defer db.Close()

	smtpMailer, err := mailer.NewSMTPMailer(mailer.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		Sender:    cfg.SenderEmail,
		Recipient: cfg.NotifyEmail,
		Timeout:   cfg.SMTPTimeout,
	})
	if err != nil {
		logging.Fatal("configure mailer", "error", err)
	}

	contactRepo := repository.NewSQLiteContactRepository(db)
	subscriptionRepo := repository.NewSQLiteSubscriptionRepository(db)
	inquiryRepo := repository.NewSQLiteInquiryRepository(db)

	contactService := service.NewContactService(contactRepo, smtpMailer)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, smtpMailer)
	inquiryService := service.NewInquiryService(inquiryRepo, smtpMailer)

	h := handler.New(db, cfg.AllowedOrigins)
	contactHandler := handler.NewContactHandler(contactService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	pageHandler := handler.NewPageHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/page", pageHandler.Lookup)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/subscribe", subscriptionHandler.Subscribe)
	mux.HandleFunc("POST /api/inquiry", inquiryHandler.Submit)
	mux.HandleFunc("/", h.NotFound)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout: 10 * time.Second,
		// Must outlast the SMTP send timeout or slow relays would cut
		// off the response mid-request.
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
