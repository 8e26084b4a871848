package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler cancels a long-running command on SIGINT or SIGTERM and
// tells the operator what happens to work already sent.
type InterruptHandler struct {
	writer      io.Writer
	cancelFunc  context.CancelFunc
	done        chan struct{}
	operation   string
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler for the named operation.
func NewInterruptHandler(writer io.Writer, operation string) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	return &InterruptHandler{
		writer:    writer,
		operation: operation,
	}
}

// HandleInterrupts returns a context that is canceled on the first signal.
// Cancellation of parent counts as an interruption too: callers usually
// listen for the same signals, and whichever sees it first wins. Signal
// handling stops once the returned context is done.
func (h *InterruptHandler) HandleInterrupts(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	h.cancelFunc = cancel
	h.done = make(chan struct{})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(h.done)
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			h.Interrupt()
		case <-ctx.Done():
			if parent.Err() != nil {
				h.Interrupt()
			}
		}
	}()

	return ctx
}

// Interrupt cancels the context as if a signal had arrived. The message is
// written once.
func (h *InterruptHandler) Interrupt() {
	h.mu.Lock()
	if !h.interrupted {
		h.interrupted = true
		h.showInterruptMessage()
	}
	h.mu.Unlock()

	if h.cancelFunc != nil {
		h.cancelFunc()
	}
}

func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n\n" + FormatWarning(fmt.Sprintf("%s interrupted!", h.operation)) +
		"\n" + FormatInfo("Requests already sent keep running on the server.") + "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// Stop releases the signal handler and waits until it has settled, so that
// WasInterrupted is final afterwards. Stopping is not an interruption.
func (h *InterruptHandler) Stop() {
	if h.cancelFunc == nil {
		return
	}
	h.cancelFunc()
	<-h.done
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
