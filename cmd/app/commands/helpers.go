// Package commands contains CLI command implementations for the application.
package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/sealbox/internal/app"
)

// maxInputSize bounds what encrypt and decrypt read from stdin.
const maxInputSize = 1 << 20

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// readInput returns value when set and otherwise reads everything from r.
func readInput(value string, r io.Reader) ([]byte, error) {
	if value != "" {
		return bytes.TrimSpace([]byte(value)), nil
	}
	if r == nil {
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) > maxInputSize {
		return nil, fmt.Errorf("input exceeds %d bytes", maxInputSize)
	}
	return bytes.TrimSpace(data), nil
}
