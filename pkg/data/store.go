package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// Store reads and writes the whole list as a single JSON array.
// There is no locking: concurrent writers race and the last one wins.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the list file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the list without opening the file for writing. A missing or
// empty file yields an empty list.
func (s *Store) Load() (List, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("list file does not exist", "path", s.path)
		return List{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer f.Close()

	list, err := s.decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	s.logger.Debug("loaded list", "path", s.path, "count", len(list))
	return list, nil
}

// Handle is an open read/write list file, ready for a full rewrite.
type Handle struct {
	file   *os.File
	logger *slog.Logger
}

// Open opens the list file for read/write, creating it if absent, and
// loads its content.
func (s *Store) Open() (*Handle, List, error) {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open list: %w", err)
	}

	list, err := s.decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	s.logger.Debug("loaded list", "path", s.path, "count", len(list))
	return &Handle{file: f, logger: s.logger}, list, nil
}

// Save truncates the file and writes list in full. A crash mid-write can
// leave the file corrupt.
func (h *Handle) Save(list List) error {
	if list == nil {
		list = List{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	if err := h.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate list: %w", err)
	}
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind list: %w", err)
	}
	if _, err := h.file.Write(payload); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	h.logger.Debug("saved list", "path", h.file.Name(), "count", len(list))
	return nil
}

func (h *Handle) Close() error {
	return h.file.Close()
}

// decode parses the list. Records that fail Validate are kept as they are
// and logged as warnings.
func (s *Store) decode(r io.Reader) (List, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return List{}, nil
	}

	var list List
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse list: %w", err)
	}
	if list == nil {
		list = List{}
	}
	for i, anime := range list {
		if err := anime.Validate(); err != nil {
			s.logger.Warn("invalid anime in list", "path", s.path, "index", i, "name", anime.Name, "error", err)
		}
	}
	return list, nil
}
