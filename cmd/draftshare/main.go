package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/draftshare/draftshare/internal/backup"
	"github.com/draftshare/draftshare/internal/config"
	"github.com/draftshare/draftshare/internal/db"
	"github.com/draftshare/draftshare/internal/handler"
	"github.com/draftshare/draftshare/internal/intercept"
	"github.com/draftshare/draftshare/internal/job"
	"github.com/draftshare/draftshare/internal/middleware"
	"github.com/draftshare/draftshare/internal/render"
	"github.com/draftshare/draftshare/internal/repo"
	"github.com/draftshare/draftshare/internal/schedule"
	"github.com/draftshare/draftshare/internal/service"
	"github.com/draftshare/draftshare/internal/store"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "draftshare",
		Short: "draftshare backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run draftshare server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
	)

	userRepo := repo.NewUserRepo(conn)
	docRepo := repo.NewDocumentRepo(conn)
	optionRepo := repo.NewOptionRepo(conn)

	shareStore := store.NewOptionStore(optionRepo)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), time.Hour*time.Duration(cfg.JWTTTLHours))
	documentService := service.NewDocumentService(docRepo)
	shareService := service.NewShareService(shareStore, documentService)

	interceptor := intercept.New(shareService)
	renderer := render.New(cfg.RenderCache.Size, time.Duration(cfg.RenderCache.TTLMinutes)*time.Minute)

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService),
		Documents: handler.NewDocumentHandler(documentService),
		Shares:    handler.NewShareHandler(shareService, documentService, []byte(cfg.NonceSecret), cfg.PublicURL),
		Public:    handler.NewPublicHandler(documentService, interceptor, renderer),
		JWTSecret: []byte(cfg.JWTSecret),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.CORS(nil),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if cfg.Purge.Enable {
		retention := time.Duration(cfg.Purge.RetentionDays) * 24 * time.Hour
		if err := scheduler.AddJob(job.NewSharePurgeJob(shareService, retention), cfg.Purge.Cron); err != nil {
			return err
		}
	}
	if cfg.Backup.Enable {
		uploader := backup.NewS3Uploader(cfg.Backup.S3)
		if err := scheduler.AddJob(job.NewStoreBackupJob(shareStore, uploader), cfg.Backup.Cron); err != nil {
			return err
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
