package main

import (
	"context"
	"embed"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/klmnkv/sudoku-server/internal/app"
	"github.com/klmnkv/sudoku-server/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

var log = logrus.New()

func setupLogging() {
	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		return
	}

	log.SetFormatter(&logrus.JSONFormatter{})

	logDir := config.LogDir()
	if logDir == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filepath.Join(logDir, "sudoku-server.log"),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		log.Fatal("unable to create file log hook: ", err)
	}
	log.AddHook(hook)
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	setupLogging()

	if err := app.New(log, migrations).Start(ctx); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
