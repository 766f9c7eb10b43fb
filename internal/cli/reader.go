package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// FrozenSuffix marks a line of an item file as frozen.
const FrozenSuffix = "!frozen"

// NonBlockingReader provides context-aware input reading that can be interrupted.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadString reads a string until delimiter, respecting context cancellation.
func (r *NonBlockingReader) ReadString(ctx context.Context, delim byte) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString(delim)
		resultCh <- result{value: value, err: err}
	}()

	// The reading goroutine keeps running after cancellation until the
	// underlying read returns.
	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}

// ReadLine reads a line, respecting context cancellation. A final line
// without a newline is returned without error.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	line, err := r.ReadString(ctx, '\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadItems parses an item list: one name per line, blank lines and lines
// starting with # ignored, a trailing !frozen marks the item frozen.
// allFrozen marks every item frozen.
func ReadItems(ctx context.Context, r io.Reader, allFrozen bool) ([]engine.BatchItem, error) {
	reader := NewNonBlockingReader(r)

	var items []engine.BatchItem
	for {
		line, err := reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read items: %w", err)
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		frozen := allFrozen
		if rest, ok := cutSuffixFold(line, FrozenSuffix); ok {
			line = strings.TrimSpace(rest)
			frozen = true
		}
		if line == "" {
			continue
		}

		items = append(items, engine.BatchItem{Name: line, IsFrozen: frozen})
	}
}

func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) || !strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}
