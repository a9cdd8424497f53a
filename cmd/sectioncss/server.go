// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/auth"
	"github.com/thatcatcamp/sectioncss/internal/backup"
	"github.com/thatcatcamp/sectioncss/internal/config"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"github.com/thatcatcamp/sectioncss/internal/db"
	"github.com/thatcatcamp/sectioncss/internal/handlers"
	"github.com/thatcatcamp/sectioncss/internal/metrics"
	"github.com/thatcatcamp/sectioncss/internal/middleware"
	"github.com/thatcatcamp/sectioncss/internal/theme"
	"github.com/thatcatcamp/sectioncss/internal/tls"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the HTTP server that serves /styles.css and the admin customizer",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := initSystemDB(); err != nil {
			return err
		}
		log, err := initLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := ensureJWTSecret(log); err != nil {
			return err
		}

		mt := metrics.New()
		sheet, err := loadStylesheet(log)
		if err != nil {
			return err
		}
		manager, err := openManager(ctx, log, mt, sheet)
		if err != nil {
			return err
		}

		h := handlers.New(manager, sheet, handlers.WithLogger(log), handlers.WithMetrics(mt))
		r, err := newRouter(ctx, h, mt, log)
		if err != nil {
			return err
		}

		if config.GetBool("theme.watch") {
			path := config.GetString("theme.path")
			err := theme.Watch(ctx, path, log, func(t *theme.Theme, err error) {
				reloadTheme(log, mt, manager, h, t, err)
			})
			if err != nil {
				log.Warn("Theme watching disabled", zap.String("path", path), zap.Error(err))
			}
		}

		var backupsDone <-chan struct{}
		if interval := config.GetDuration("backup.interval"); interval > 0 {
			bm, err := newBackupManager(log)
			if err != nil {
				return err
			}
			backupsDone = backup.NewScheduler(bm, customizer.NewDBBackend(db.GetDB()), interval).Start(ctx)
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			return err
		}

		addr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}
		if tlsCfg.Enabled {
			server.Addr = fmt.Sprintf(":%s", tlsCfg.Port)
			if server.TLSConfig, err = tlsCfg.ServerConfig(); err != nil {
				return err
			}
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("Starting server",
				zap.String("addr", server.Addr),
				zap.Bool("tls", tlsCfg.Enabled),
				zap.Int("sections", len(sheet.Sections())),
			)
			if tlsCfg.Enabled {
				errCh <- server.ListenAndServeTLS("", "")
				return
			}
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
		}

		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
		if backupsDone != nil {
			<-backupsDone
		}
		return err
	},
}

// ensureJWTSecret replaces the shipped placeholder with a random secret
// unless one comes from the environment
func ensureJWTSecret(log *zap.Logger) error {
	if os.Getenv("SECTIONCSS_JWT_SECRET") != "" {
		return nil
	}
	if s := config.GetString("auth.jwt_secret"); s != "" && s != auth.PlaceholderSecret {
		return nil
	}

	secret, err := auth.GenerateSecret()
	if err != nil {
		return err
	}
	if err := config.Set("auth.jwt_secret", secret); err != nil {
		return err
	}
	log.Info("Generated a new JWT secret", zap.String("config", config.Path()))
	return nil
}

func newRouter(ctx context.Context, h *handlers.Handlers, mt *metrics.Metrics, log *zap.Logger) (*gin.Engine, error) {
	if !log.Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	if !config.GetBool("server.behind_proxy") {
		if err := r.SetTrustedProxies(nil); err != nil {
			return nil, err
		}
	}

	r.GET("/styles.css", h.StylesheetHandler)
	r.GET("/health", h.HealthHandler)
	r.GET("/metrics", gin.WrapH(mt.Handler()))

	attempts := config.GetInt("auth.login_attempts_per_minute")
	if attempts <= 0 {
		attempts = 5
	}
	loginRateLimiter := middleware.NewRateLimiter(ctx, attempts, time.Minute)

	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.IPAllowlistMiddleware(config.GetStringSlice("admin.allowed_ips"), log),
		middleware.SecurityHeadersMiddleware(),
		middleware.CSRFMiddleware(),
	)
	{
		adminGroup.GET("/login", h.LoginFormHandler)
		adminGroup.POST("/login", middleware.RateLimitMiddleware(loginRateLimiter, auth.LoginPath), h.LoginHandler)

		adminGroup.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin/customize")
		})

		protected := adminGroup.Group("/")
		protected.Use(auth.RequireAdmin())
		{
			protected.POST("/logout", h.LogoutHandler)
			protected.GET("/customize", h.CustomizeFormHandler)
			protected.POST("/customize", h.CustomizeSaveHandler)
			protected.GET("/api/settings", h.SettingsAPIHandler)
			protected.GET("/api/history", h.HistoryAPIHandler)
		}
	}

	return r, nil
}

// reloadTheme swaps in a rebuilt stylesheet. A theme that fails to load
// keeps the previous stylesheet in service.
func reloadTheme(log *zap.Logger, mt *metrics.Metrics, manager *customizer.Manager, h *handlers.Handlers, t *theme.Theme, err error) {
	if err != nil {
		mt.RecordReload(err)
		log.Error("Theme reload failed, keeping previous theme", zap.Error(err))
		return
	}

	sheet, berr := t.Build(log)
	if berr != nil {
		log.Warn("Theme has problems", zap.Error(berr))
	}

	manager.Reregister(func(r *customizer.Manager) {
		sheet.Register(r)
	})
	h.SetStylesheet(sheet)
	mt.RecordReload(nil)
	log.Info("Theme reloaded", zap.Int("sections", len(sheet.Sections())))
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
