// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"

	"github.com/thatcatcamp/sectioncss/internal/backup"
	"github.com/thatcatcamp/sectioncss/internal/config"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"github.com/thatcatcamp/sectioncss/internal/db"
	"github.com/thatcatcamp/sectioncss/internal/logging"
	"github.com/thatcatcamp/sectioncss/internal/metrics"
	"github.com/thatcatcamp/sectioncss/internal/section"
	"github.com/thatcatcamp/sectioncss/internal/theme"
	"go.uber.org/zap"
)

// initSystemDB loads the config and opens the settings database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

func initLogger() (*zap.Logger, error) {
	return logging.New(logging.Config{
		Level: config.GetString("log.level"),
		File:  config.GetString("log.file"),
	})
}

// loadStylesheet reads the configured theme, writing the starter theme on
// first use. Unknown families are logged and skipped.
func loadStylesheet(log *zap.Logger) (*section.Stylesheet, error) {
	path := config.GetString("theme.path")
	if err := theme.WriteStarter(path); err != nil {
		return nil, err
	}

	t, err := theme.Load(path)
	if err != nil {
		return nil, err
	}

	sheet, err := t.Build(log)
	if err != nil {
		log.Warn("Theme has problems", zap.String("path", path), zap.Error(err))
	}
	return sheet, nil
}

// openManager builds the database-backed settings store with every section
// of sheet registered
func openManager(ctx context.Context, log *zap.Logger, mt *metrics.Metrics, sheet *section.Stylesheet) (*customizer.Manager, error) {
	m := customizer.NewManager(customizer.NewDBBackend(db.GetDB()),
		customizer.WithLogger(log),
		customizer.WithMetrics(mt),
	)
	if err := m.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	sheet.Register(m)
	return m, nil
}

// newBackupManager reads the backup.* keys. A configured bucket adds an S3
// copy of every snapshot.
func newBackupManager(log *zap.Logger) (*backup.Manager, error) {
	m := backup.NewManager(config.GetString("backup.path"), config.GetInt("backup.keep"), log)

	bucket := config.GetString("backup.s3.bucket")
	if bucket == "" {
		return m, nil
	}
	remote, err := backup.NewS3Uploader(backup.S3Config{
		Bucket:    bucket,
		Prefix:    config.GetString("backup.s3.prefix"),
		Region:    config.GetString("backup.s3.region"),
		Endpoint:  config.GetString("backup.s3.endpoint"),
		AccessKey: config.GetString("backup.s3.access_key"),
		SecretKey: config.GetString("backup.s3.secret_key"),
	})
	if err != nil {
		return nil, err
	}
	m.Remote = remote
	return m, nil
}

// bootstrap is the common start of every command that touches settings
func bootstrap(ctx context.Context) (*zap.Logger, *section.Stylesheet, *customizer.Manager, error) {
	if err := initSystemDB(); err != nil {
		return nil, nil, nil, err
	}
	log, err := initLogger()
	if err != nil {
		return nil, nil, nil, err
	}
	sheet, err := loadStylesheet(log)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := openManager(ctx, log, nil, sheet)
	if err != nil {
		return nil, nil, nil, err
	}
	return log, sheet, m, nil
}
