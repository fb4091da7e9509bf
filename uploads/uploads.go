// Package uploads persists the attachment files of a vistoria
// submission.
package uploads

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Slots are the fixed attachment fields of the survey form, in the
// order their files are saved and attached to the notification email.
var Slots = []string{"croqui", "planilha", "mapa"}

type Saver struct {
	Dir string
}

// SaveAll copies each supplied slot file into the upload directory and
// returns the saved paths in slot order. Missing or unnamed files are
// skipped. A file with the same name as an earlier upload is
// overwritten.
func (s Saver) SaveAll(r *http.Request) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var saved []string
	for _, slot := range Slots {
		file, header, err := r.FormFile(slot)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return saved, errors.Wrapf(err, "read upload %q", slot)
		}

		name := SanitizeFilename(header.Filename)
		if name == "" {
			file.Close()
			continue
		}

		path := filepath.Join(s.Dir, name)
		err = writeFile(path, file)
		file.Close()
		if err != nil {
			return saved, errors.Wrapf(err, "save upload %q", slot)
		}
		saved = append(saved, path)
	}
	return saved, nil
}

// SanitizeFilename reduces an uploaded filename to its base name,
// neutralizing directory traversal sequences. Returns "" for names
// that carry no usable file name at all.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}

func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}
