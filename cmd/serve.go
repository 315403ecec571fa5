package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/chatbot"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/server"
)

//nolint:gochecknoglobals // Cobra boilerplate
var servePort string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	Long: `Run the portfolio web server. Settings come from the environment and an
optional .env file; see PORT, CONTACT_DELIVERY and DATABASE_PATH.

Example:
  portfolio serve
  portfolio serve --port 3000 --content content.yaml`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (default from PORT)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	var portfolio content.Portfolio
	portfolio, err = content.Load(cfg.ContentFile)
	if err != nil {
		err = errors.Wrap(err, "failed to load portfolio content")
		return err
	}

	opts := server.Options{
		Portfolio: portfolio,
		Chat: chatbot.NewService(
			chatbot.NewMatcher(portfolio),
			cfg.ChatSessionTTL,
			chatbot.RandomDelay(cfg.ChatMinDelay, cfg.ChatMaxDelay),
		),
		Contact:              contact.NewService(newSender(cfg)),
		Metrics:              metrics.New(),
		ContactRatePerMinute: cfg.ContactRatePerMinute,
	}

	if cfg.AnalyticsEnabled {
		store, openErr := analytics.Open(cfg.DatabasePath)
		if openErr != nil {
			logrus.WithError(openErr).Warn("visitor analytics disabled")
		} else {
			defer store.Close()
			opts.Analytics = store
			retention := analytics.StartRetention(store, cfg.AnalyticsRetentionMonths)
			defer retention.Stop()
			logrus.Info("privacy-conscious visitor tracking enabled")
		}
	}

	var srv *server.Server
	srv, err = server.New(opts)
	if err != nil {
		return err
	}
	httpServer := srv.HTTPServer(cfg.Port)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-done:
	case err = <-serveErr:
		if err != nil {
			err = errors.Wrap(err, "server stopped")
			return err
		}
	}

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = httpServer.Shutdown(ctx)
	if err != nil {
		err = errors.Wrap(err, "server shutdown")
	}
	return err
}

func newSender(cfg config.Config) contact.Sender {
	if cfg.ContactDelivery == config.DeliverySMTP {
		return contact.NewSMTPSender(contact.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPass,
			To:       cfg.ContactToEmail,
		})
	}
	if cfg.FormRelayAccessKey == "" {
		logrus.Warn("FORM_RELAY_ACCESS_KEY not set, contact submissions will fail")
	}
	return contact.NewRelaySender(cfg.FormRelayURL, cfg.FormRelayAccessKey)
}
