package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rimatec/vistoria/app"
	"github.com/rimatec/vistoria/config"
	"github.com/rimatec/vistoria/database"
	"github.com/rimatec/vistoria/log"
	"github.com/rimatec/vistoria/mailer"
	"github.com/rimatec/vistoria/recipients"
	"github.com/rimatec/vistoria/routes"
	"github.com/rimatec/vistoria/uploads"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	store := recipients.Store{Path: cfg.EmailsFile}
	if err := store.Bootstrap(); err != nil {
		log.Fatal("main.recipients.bootstrap:", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("main.uploads.mkdir:", err)
	}

	app := app.App{
		DB:         db,
		Config:     cfg,
		Recipients: store,
		Uploads:    uploads.Saver{Dir: cfg.UploadDir},
		Notifier:   mailer.NewSMTP(cfg.SMTP),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
