package config

import (
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Addr       string
	DBUrl      string
	EmailsFile string
	UploadDir  string
	SMTP       SMTP
	Debug      bool
}

type SMTP struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func ParseFlags() (cfg Config, err error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", envUint("PORT", 10000), "listen port number (default $PORT or 10000)")
	flag.StringVar(&cfg.DBUrl, "db-url", envOr("DB_URL", "vistorias.db"), "path to SQLite3 DB file (default vistorias.db)")
	flag.StringVar(&cfg.EmailsFile, "emails-file", envOr("EMAILS_FILE", "emails.txt"), "path to the recipient list file (default emails.txt)")
	flag.StringVar(&cfg.UploadDir, "upload-dir", envOr("UPLOAD_DIR", "uploads"), "directory for uploaded attachments (default uploads)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	cfg.SMTP = SMTP{
		Host: envOr("SMTP_HOST", "smtp.gmail.com"),
		Port: int(envUint("SMTP_PORT", 587)),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
	}
	cfg.SMTP.From = envOr("SMTP_FROM", cfg.SMTP.User)

	err = cfg.SMTP.validate()
	return
}

// validate reports every missing SMTP setting at once instead of one
// per restart.
func (s SMTP) validate() error {
	var errs *multierror.Error
	if s.User == "" {
		errs = multierror.Append(errs, errors.New("missing variable SMTP_USER"))
	}
	if s.Pass == "" {
		errs = multierror.Append(errs, errors.New("missing variable SMTP_PASS"))
	}
	return errs.ErrorOrNil()
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(n)
}
