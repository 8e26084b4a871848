package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{
			name:   "with custom writer",
			writer: &bytes.Buffer{},
		},
		{
			name:   "with nil writer",
			writer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer, "Analysis")
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.WasInterrupted())
		})
	}
}

func TestInterrupt_CancelsContext(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Scrape")

	ctx := handler.HandleInterrupts(context.Background())

	select {
	case <-ctx.Done():
		t.Fatal("Context should not be canceled initially")
	default:
	}

	handler.Interrupt()

	<-ctx.Done()
	assert.True(t, handler.WasInterrupted())
	assert.Contains(t, output.String(), "Scrape interrupted!")
	assert.Contains(t, output.String(), "keep running on the server")
}

func TestInterrupt_MessageShownOnce(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Analysis")
	_ = handler.HandleInterrupts(context.Background())

	handler.Interrupt()
	handler.Interrupt()

	assert.Equal(t, 1, strings.Count(output.String(), "Analysis interrupted!"))
}

func TestParentCancel_CountsAsInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Analysis")

	parent, cancel := context.WithCancel(context.Background())
	ctx := handler.HandleInterrupts(parent)
	cancel()
	<-ctx.Done()
	handler.Stop()

	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, strings.Count(output.String(), "Analysis interrupted!"))
}

func TestInterrupt_Signal(t *testing.T) {
	for i := 0; i < 20; i++ {
		output := &syncBuffer{}
		handler := NewInterruptHandler(output, "Scrape")

		parent, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		ctx := handler.HandleInterrupts(parent)
		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
		<-ctx.Done()
		handler.Stop()
		stop()

		require.True(t, handler.WasInterrupted(), "run %d", i)
		assert.Equal(t, 1, strings.Count(output.String(), "Scrape interrupted!"))
	}
}

func TestStop_ReleasesWithoutInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Scrape")

	ctx := handler.HandleInterrupts(context.Background())
	handler.Stop()
	<-ctx.Done()
	handler.Stop()

	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}
