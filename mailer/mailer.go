// Package mailer delivers vistoria notification emails over an
// authenticated SMTP relay.
package mailer

import (
	"crypto/tls"
	"strings"

	mail "github.com/go-mail/mail"
	"github.com/pkg/errors"
	"github.com/rimatec/vistoria/config"
	"github.com/rimatec/vistoria/log"
	"github.com/rimatec/vistoria/model"
)

// Notifier sends the notification for one recorded vistoria. Delivery
// is synchronous: the caller blocks until the relay accepts or refuses
// the message.
type Notifier interface {
	Send(v model.Vistoria, attachments []string, recipients []string) error
}

type SMTP struct {
	cfg config.SMTP
}

func NewSMTP(cfg config.SMTP) SMTP {
	return SMTP{cfg}
}

// Subject builds the notification subject line from the condo name.
func Subject(v model.Vistoria) string {
	return "Nova Vistoria - " + v.Condominio
}

// Body renders the plain-text body: one "label: value" line per field,
// in form order, empty values included.
func Body(v model.Vistoria) string {
	values := v.Values()
	lines := make([]string, len(model.Fields))
	for i, f := range model.Fields {
		lines[i] = f.Label + ": " + values[i]
	}
	return strings.Join(lines, "\n")
}

func (s SMTP) Send(v model.Vistoria, attachments []string, recipients []string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", Subject(v))
	m.SetBody("text/plain", Body(v))
	for _, path := range attachments {
		m.Attach(path)
	}

	d := mail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{ServerName: s.cfg.Host}

	log.Debugf("mail.send: %d recipient(s), %d attachment(s)", len(recipients), len(attachments))
	err := d.DialAndSend(m)
	return errors.Wrap(err, "smtp send")
}
