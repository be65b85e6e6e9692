package main

import (
	"errors"
	"ipecho/internal/bootstrap"
	"ipecho/internal/config"
	"ipecho/internal/logger"
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.MustLoad(os.Args[1:], os.Stdout)
	if err != nil {
		if errors.Is(err, config.ErrExit) {
			return
		}
		log.Fatalf("Failed to load configuration: %s", err)
	}

	zl, err := logger.New(conf.LogLevel(), conf.LogFormat())
	if err != nil {
		log.Fatalf("Failed to create logger: %s", err)
	}
	defer func() {
		_ = zl.Sync()
	}()

	app := bootstrap.New(conf, zl)
	if err = app.Run(); err != nil {
		zl.Errorw("application error", "error", err)
		_ = zl.Sync()
		log.Fatalf("Application error: %s", err)
	}
}
