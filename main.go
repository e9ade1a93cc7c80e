package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/excelerateanalytics/website/pkg/api"
	"github.com/excelerateanalytics/website/pkg/clients/airtable"
	"github.com/excelerateanalytics/website/pkg/clients/mailgun"
	"github.com/excelerateanalytics/website/pkg/clients/smtp"
	"github.com/excelerateanalytics/website/pkg/clients/twilio"
	"github.com/excelerateanalytics/website/pkg/config"
	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/mailer"
	"github.com/excelerateanalytics/website/pkg/middleware"
	"github.com/excelerateanalytics/website/pkg/services"
	"github.com/excelerateanalytics/website/pkg/views"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("error loading .env file", logger.Error(err))
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	sender, err := newSender(cfg, log)
	if err != nil {
		log.Error("error creating mail sender", logger.Error(err))
		os.Exit(1)
	}

	// Initialize services
	dispatcher := services.NewDispatcher(sender, services.DispatcherConfig{
		SenderEmail:    cfg.Mail.SenderEmail,
		RecipientEmail: cfg.Mail.RecipientEmail,
		Contact:        cfg.Contact,
	}, time.Now, log)

	var opts []services.IntakeOption
	if cfg.Twilio.Enabled() {
		sms := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, log)
		opts = append(opts, services.WithSMSAlert(sms, cfg.Twilio.OwnerPhone))
		log.Info("owner sms alerts enabled")
	}
	if cfg.Airtable.Enabled() {
		leads := airtable.NewClient(cfg.Airtable.APIKey, cfg.Airtable.BaseID, log)
		opts = append(opts, services.WithLeadLog(leads, cfg.Airtable.LeadsTable))
		log.Info("airtable lead log enabled", slog.String("table", cfg.Airtable.LeadsTable))
	}
	intakeService := services.NewIntakeService(dispatcher, cfg.Contact, log, opts...)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))
	router.StaticFS("/static", http.FS(views.Static()))

	handlers := api.NewHandlers(intakeService, cfg.Contact, log)
	handlers.Register(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", slog.String("port", cfg.Port), slog.String("mail_provider", cfg.Mail.Provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting server", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down", logger.Error(err))
	}
}

func newSender(cfg *config.Config, log *slog.Logger) (mailer.Sender, error) {
	if cfg.Mail.Provider == "mailgun" {
		return mailgun.NewClient(cfg.Mail.MailgunDomain, cfg.Mail.MailgunAPIKey, log)
	}

	return smtp.NewClient(smtp.Config{
		Host:     cfg.Mail.SMTPServer,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SenderEmail,
		Password: cfg.Mail.SenderPassword,
		Timeout:  cfg.Mail.SMTPTimeout,
	}, log), nil
}
