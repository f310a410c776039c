// Package journal records every board-changing move to a rotating JSON log so
// that finished games can be replayed by hand.
package journal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Config struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func (c Config) Enabled() bool {
	return c.File != ""
}

type Journal struct {
	log *logrus.Logger
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// Discard returns a journal that drops every entry.
func Discard() *Journal {
	return &Journal{log: newLogger()}
}

func New(c Config) (*Journal, error) {
	if !c.Enabled() {
		return Discard(), nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open journal %s: %w", c.File, err)
	}
	log := newLogger()
	log.AddHook(hook)
	return &Journal{log: log}, nil
}

// NewWithWriter journals to w; used where rotation is not wanted.
func NewWithWriter(w io.Writer, formatter logrus.Formatter) *Journal {
	log := newLogger()
	log.SetOutput(w)
	log.SetFormatter(formatter)
	return &Journal{log: log}
}

func (j *Journal) Session(id string) *logrus.Entry {
	return j.log.WithField("session_id", id)
}
