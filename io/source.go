// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"io"
	"iter"
	"os"
)

// Source supplies numbered lines of assembly text.
type Source interface {
	// Lines returns an iterator of (line number, text), numbered from 1.
	Lines() iter.Seq2[int, string]
	// Err returns the read error that ended the last iteration, if any.
	Err() error
	// Close releases the source. Closing more than once is harmless.
	Close() error
}

// LineSource reads lines from an io.Reader. If the reader can seek, each
// call to Lines() rewinds it and reads the lines again.
type LineSource struct {
	Name string // Name used in error messages.

	input  io.Reader
	closer io.Closer
	read   bool
	err    error
}

var _ Source = (*LineSource)(nil)

// NewSource creates a source reading from input. The source does not
// close input.
func NewSource(input io.Reader) *LineSource {
	return &LineSource{Name: "-", input: input}
}

// OpenSource opens the file at path as a source.
func OpenSource(path string) (src *LineSource, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = &ErrSource{Name: path, Err: err}
		return
	}

	src = &LineSource{Name: path, input: file, closer: file}
	return
}

// Rewind restarts the source from its first line.
func (src *LineSource) Rewind() (err error) {
	if !src.read {
		return
	}

	seeker, ok := src.input.(io.Seeker)
	if !ok {
		return
	}

	_, err = seeker.Seek(0, io.SeekStart)
	if err != nil {
		err = &ErrSource{Name: src.Name, Err: err}
		return
	}

	src.read = false
	return
}

// Lines returns an iterator over the numbered lines of the source.
func (src *LineSource) Lines() iter.Seq2[int, string] {
	return func(yield func(lineno int, text string) bool) {
		src.err = src.Rewind()
		if src.err != nil {
			return
		}
		if src.input == nil {
			src.err = &ErrSource{Name: src.Name, Err: os.ErrClosed}
			return
		}

		src.read = true
		scanner := bufio.NewScanner(src.input)
		lineno := 0
		for scanner.Scan() {
			lineno++
			if !yield(lineno, scanner.Text()) {
				return
			}
		}

		err := scanner.Err()
		if err != nil {
			src.err = &ErrSource{Name: src.Name, Err: err}
		}
	}
}

// Err returns the error that ended the last call to Lines().
func (src *LineSource) Err() error {
	return src.err
}

// Close closes the underlying file, if the source opened it.
func (src *LineSource) Close() (err error) {
	src.input = nil
	if src.closer == nil {
		return
	}

	err = src.closer.Close()
	src.closer = nil
	if err != nil {
		err = &ErrSource{Name: src.Name, Err: err}
	}

	return
}
