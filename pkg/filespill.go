// Package pkg provides utilities shared by the hygiene checks.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// FileSpill buffers items of type T in a temporary gob file so large
// collections do not have to stay in memory.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(f func(index uint64, item T) error) error
	// Close releases the file and deletes it.
	Close() error
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
	closed  bool
}

// NewFileSpill creates a spill file in dir, or in the OS temp dir when dir is empty.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	file, err := os.CreateTemp(dir, "hygiene-spill-*.gob")
	if err != nil {
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

func (f *fileSpill[T]) Path() string {
	return f.path
}

func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errSpillClosed
	}

	if err := f.encoder.Encode(item); err != nil {
		return fmt.Errorf("encode item %d: %w", f.length, err)
	}

	f.length++

	return nil
}

// Range decodes the items in append order. A callback error stops the range
// and is returned unchanged.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errSpillClosed
	}

	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind spill: %w", err)
	}

	// Appends continue at the end once the range is done.
	defer func() {
		if _, err := f.file.Seek(0, io.SeekEnd); err != nil {
			slog.Error("failed to seek spill end", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(f.file)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode item %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	closeErr := f.file.Close()
	removeErr := os.Remove(f.path)

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return errors.Join(closeErr, removeErr)
}

var errSpillClosed = errors.New("filespill is closed")
