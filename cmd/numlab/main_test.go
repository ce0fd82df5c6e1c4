package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/numlab/internal/report"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func partialReport() *report.Report {
	r := report.New("jacobi-eigen", "matrix", "Jacobi rotation")
	r.Section("Input")
	r.Printf("A is not symmetric")
	return r
}

func TestRenderFailureKeepsDriverError(t *testing.T) {
	runErr := errors.New("jacobi-eigen: matrix is not symmetric")

	var buf bytes.Buffer
	err := renderFailure(&buf, partialReport(), runErr)
	if !errors.Is(err, runErr) {
		t.Errorf("expected driver error, got %v", err)
	}
	if !strings.Contains(buf.String(), "A is not symmetric") {
		t.Errorf("partial output not rendered: %q", buf.String())
	}
}

func TestRenderFailureReportsRenderError(t *testing.T) {
	runErr := errors.New("jacobi-eigen: matrix is not symmetric")

	err := renderFailure(failingWriter{}, partialReport(), runErr)
	if !errors.Is(err, runErr) {
		t.Errorf("expected driver error to be wrapped, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected render error in message, got %v", err)
	}
}

func TestRenderFailureWithoutOutput(t *testing.T) {
	runErr := errors.New("unknown driver: nope")

	var buf bytes.Buffer
	if err := renderFailure(&buf, nil, runErr); err != runErr {
		t.Errorf("expected %v, got %v", runErr, err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
