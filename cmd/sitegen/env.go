package main

import (
	"io"
	"os"
	"time"
)

// Environment holds the process dependencies commands use, so tests can
// swap them.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// since reports the time elapsed from start on the environment clock.
func (e *Environment) since(start time.Time) time.Duration {
	return e.Now().Sub(start)
}
