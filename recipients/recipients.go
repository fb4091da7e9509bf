// Package recipients manages the notification recipient list, a plain
// text file with one email address per line.
//
// The store is deliberately stateless: callers reload from disk on
// every request, so a list edited by another process is picked up
// immediately. The price is a load-mutate-save race between concurrent
// writers (last save wins); that is an accepted limitation of the
// flat-file design.
package recipients

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultAddress seeds the list when no backing file exists yet.
const DefaultAddress = "mdu@rimatecnologia.com.br"

type Store struct {
	Path string
}

// Load reads the list from disk: one address per line, trimmed, blank
// lines skipped. A missing file is an empty list, not an error.
func (s Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read recipients file")
	}

	var list []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			list = append(list, line)
		}
	}
	return list, nil
}

// Save overwrites the backing file with the given list.
func (s Store) Save(list []string) error {
	err := os.WriteFile(s.Path, []byte(strings.Join(list, "\n")), 0644)
	return errors.Wrap(err, "write recipients file")
}

// Add appends address if not already present and persists the list.
// Reports whether the address was newly added.
func (s Store) Add(address string) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	for _, a := range list {
		if a == address {
			return false, nil
		}
	}
	list = append(list, address)
	return true, s.Save(list)
}

// Remove drops the first exact match of address, if any, and persists
// the list. Reports whether anything was removed; removing an absent
// address is not an error.
func (s Store) Remove(address string) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	for i, a := range list {
		if a == address {
			list = append(list[:i], list[i+1:]...)
			return true, s.Save(list)
		}
	}
	return false, nil
}

// Bootstrap seeds the list with the default address when the backing
// file is absent or empty. Called once at process start.
func (s Store) Bootstrap() error {
	list, err := s.Load()
	if err != nil {
		return err
	}
	if len(list) > 0 {
		return nil
	}
	return s.Save([]string{DefaultAddress})
}
