package app

import (
	"database/sql"

	"github.com/rimatec/vistoria/config"
	"github.com/rimatec/vistoria/mailer"
	"github.com/rimatec/vistoria/recipients"
	"github.com/rimatec/vistoria/uploads"
)

type App struct {
	*sql.DB
	config.Config
	Recipients recipients.Store
	Uploads    uploads.Saver
	Notifier   mailer.Notifier
}
