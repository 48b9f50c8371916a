package io

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	ErrSourceUnavailable = errors.New(f("source unavailable"))
	ErrSinkUnavailable   = errors.New(f("sink unavailable"))
	ErrSinkClosed        = errors.New(f("sink closed"))
)

// ErrSource reports a failure to open or read a line source.
type ErrSource struct {
	Name string
	Err  error
}

func (err *ErrSource) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}

func (err *ErrSource) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ErrSink reports a failure to create, write or finalize a sink.
type ErrSink struct {
	Name string
	Err  error
}

func (err *ErrSink) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrSink) Unwrap() error {
	return err.Err
}

func (err *ErrSink) Is(target error) bool {
	return target == ErrSinkUnavailable
}
