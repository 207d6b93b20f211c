package repository

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

const (
	counterFile = "serial_counter.txt"
	auditLayout = "2006-01-02T15:04:05"
)

// fileStore keeps the global serial counter in one small file and the audit
// trail in serials_<year>.log next to it.
type fileStore struct {
	dir string
}

func NewFileStore(dir string) *fileStore {
	return &fileStore{dir: dir}
}

func (s *fileStore) ReadCounter() (int64, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, counterFile))
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse counter: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative counter %d", n)
	}
	return n, nil
}

// WriteCounter replaces the counter atomically via rename.
func (s *fileStore) WriteCounter(n int64) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, counterFile+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.WriteString(strconv.FormatInt(n, 10)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(s.dir, counterFile))
}

func (s *fileStore) AppendAudit(entries []model.SerialAudit) error {
	if len(entries) == 0 {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	byYear := make(map[int][]model.SerialAudit)
	for _, e := range entries {
		byYear[e.At.Year()] = append(byYear[e.At.Year()], e)
	}

	for year, list := range byYear {
		if err := s.appendYear(year, list); err != nil {
			return err
		}
	}
	return nil
}

func (s *fileStore) appendYear(year int, entries []model.SerialAudit) error {
	path := filepath.Join(s.dir, fmt.Sprintf("serials_%d.log", year))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, e := range entries {
		fmt.Fprintf(w, "%s;%s;%s;usr=%s\n", e.At.Format(auditLayout), e.ModelCode, e.Serial, e.User)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ReadAudit returns the raw lines of a year's log.
func (s *fileStore) ReadAudit(year int) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fmt.Sprintf("serials_%d.log", year)))
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}
