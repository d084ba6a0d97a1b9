// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package history persists the line editor's history to a file.
package history

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

const filePerm = 0o600

var (
	// ErrNoHistory is returned by Load when there is no history file yet. An empty one is created.
	ErrNoHistory = errors.New("no previous history")
	// ErrLoad is returned when the history file exists but cannot be read.
	ErrLoad = errors.New("failed to load history")
	// ErrSave is returned when the history file cannot be written.
	ErrSave = errors.New("failed to save history")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Recorder is the part of a line editor that holds history, e.g. *liner.State.
type Recorder interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// Store reads and writes one history file.
type Store struct {
	fs    afero.Fs
	path  string
	limit int
}

// New returns a Store for path keeping at most limit entries on save, 0 means no limit.
func New(path string, limit int) *Store {
	return &Store{
		fs:    FsFactory(),
		path:  path,
		limit: limit,
	}
}

// Path returns the history file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the history file into r and returns the number of entries read.
// When the file does not exist it is created empty and ErrNoHistory is returned.
func (s *Store) Load(r Recorder) (int, error) {
	f, err := s.fs.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
			return 0, errors.Join(ErrLoad, err)
		}

		if err := afero.WriteFile(s.fs, s.path, nil, filePerm); err != nil {
			return 0, errors.Join(ErrLoad, err)
		}

		return 0, ErrNoHistory
	}

	if err != nil {
		return 0, errors.Join(ErrLoad, err)
	}

	defer f.Close() //nolint:errcheck

	n, err := r.ReadHistory(f)
	if err != nil {
		return n, errors.Join(ErrLoad, err)
	}

	return n, nil
}

// Save writes the history held by r to the file, keeping only the newest entries.
func (s *Store) Save(r Recorder) error {
	var buf bytes.Buffer

	if _, err := r.WriteHistory(&buf); err != nil {
		return errors.Join(ErrSave, err)
	}

	if err := afero.WriteFile(s.fs, s.path, s.trim(buf.Bytes()), filePerm); err != nil {
		return errors.Join(ErrSave, err)
	}

	return nil
}

// trim keeps the last limit lines of data. Lines may be of any length.
func (s *Store) trim(data []byte) []byte {
	if s.limit <= 0 || len(data) == 0 {
		return data
	}

	lines := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
	if len(lines) <= s.limit {
		return data
	}

	out := bytes.Join(lines[len(lines)-s.limit:], []byte("\n"))

	return append(out, '\n')
}
