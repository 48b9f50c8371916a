// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// Sink consumes encoded words, one per line. Nothing becomes visible at
// the destination until Commit succeeds.
type Sink interface {
	// Emit appends one word.
	Emit(word string) error
	// Commit finalizes every emitted word.
	Commit() error
	// Close releases the sink, discarding output that was not committed.
	// Closing more than once is harmless.
	Close() error
}

// WriterSink holds words in memory and writes them to an io.Writer on Commit.
type WriterSink struct {
	Name string // Name used in error messages.

	output io.Writer
	words  []string
	done   bool
}

var _ Sink = (*WriterSink)(nil)

// NewSink creates a sink writing to output. The sink does not close output.
func NewSink(output io.Writer) *WriterSink {
	return &WriterSink{Name: "-", output: output}
}

// Emit appends a word to the pending output.
func (ws *WriterSink) Emit(word string) (err error) {
	if ws.done {
		err = ErrSinkClosed
		return
	}

	ws.words = append(ws.words, word)
	return
}

// Commit writes all pending words to the output.
func (ws *WriterSink) Commit() (err error) {
	if ws.done {
		err = ErrSinkClosed
		return
	}
	ws.done = true

	writer := bufio.NewWriter(ws.output)
	for _, word := range ws.words {
		_, err = writer.WriteString(word + "\n")
		if err != nil {
			break
		}
	}
	if err == nil {
		err = writer.Flush()
	}
	ws.words = nil

	if err != nil {
		err = &ErrSink{Name: ws.Name, Err: err}
	}

	return
}

// Close discards any pending words.
func (ws *WriterSink) Close() (err error) {
	ws.done = true
	ws.words = nil
	return
}

// FileSink writes words to a temporary file beside Path, which replaces
// Path on Commit.
type FileSink struct {
	Path string // Final output path.

	file   *os.File
	writer *bufio.Writer
	done   bool
}

var _ Sink = (*FileSink)(nil)

// CreateSink creates a sink for the file at path.
func CreateSink(path string) (fs *FileSink, err error) {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		err = &ErrSink{Name: path, Err: err}
		return
	}

	fs = &FileSink{
		Path:   path,
		file:   file,
		writer: bufio.NewWriter(file),
	}

	return
}

// Emit writes a word to the temporary file.
func (fs *FileSink) Emit(word string) (err error) {
	if fs.done {
		err = ErrSinkClosed
		return
	}

	_, err = fs.writer.WriteString(word + "\n")
	if err != nil {
		err = &ErrSink{Name: fs.Path, Err: err}
	}

	return
}

// Commit flushes the temporary file and renames it to Path.
func (fs *FileSink) Commit() (err error) {
	if fs.done {
		err = ErrSinkClosed
		return
	}

	defer func() {
		if err != nil {
			fs.Close()
			err = &ErrSink{Name: fs.Path, Err: err}
		}
	}()

	err = fs.writer.Flush()
	if err != nil {
		return
	}

	err = fs.file.Chmod(0o644)
	if err != nil {
		return
	}

	err = fs.file.Close()
	if err != nil {
		return
	}

	err = os.Rename(fs.file.Name(), fs.Path)
	if err != nil {
		return
	}

	fs.done = true

	return
}

// Close removes the temporary file unless the sink was committed.
func (fs *FileSink) Close() (err error) {
	if fs.done {
		return
	}
	fs.done = true

	fs.file.Close()
	err = os.Remove(fs.file.Name())
	if err != nil && !os.IsNotExist(err) {
		err = &ErrSink{Name: fs.Path, Err: err}
		return
	}

	err = nil
	return
}
