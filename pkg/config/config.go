// Package config resolves where the anime list lives and how the CLI logs.
package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// EnvFileName overrides the default list location when no flag is given.
	EnvFileName     = "ANILIST_FILE"
	DefaultFileName = "anilist.json"
)

var ErrNoFileName = errors.New("file name not found")

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

type Config struct {
	FileName string
	Verbose  bool
}

// Resolve picks the list file: explicit flag, then $ANILIST_FILE, then
// anilist.json in the home directory.
func Resolve(fileName string, verbose bool) (*Config, error) {
	cfg := &Config{FileName: fileName, Verbose: verbose}
	if cfg.FileName == "" {
		cfg.FileName = os.Getenv(EnvFileName)
	}
	if cfg.FileName == "" {
		home, err := userHomeDir()
		if err != nil || home == "" {
			return nil, ErrNoFileName
		}
		cfg.FileName = filepath.Join(home, DefaultFileName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate requires a file name that is not an existing directory.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.FileName,
			validation.Required.ErrorObject(
				validation.NewError("validation_file_name_required", ErrNoFileName.Error())),
			validation.By(notDirectory),
		),
	)
}

func notDirectory(value interface{}) error {
	path, _ := value.(string)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.New("is a directory")
	}
	return nil
}

// Logger returns a text logger on w: warnings by default, debug when verbose.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
