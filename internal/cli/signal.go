package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SignalError is the cancellation cause recorded when an OS signal stops a command.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("interrupted by %s", e.Signal)
}

// SignalContext is cancelled on SIGINT or SIGTERM, or when Cancel is called.
type SignalContext struct {
	context.Context
	cancel context.CancelCauseFunc
}

// NewSignalContext starts listening for signals until the context is done.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return &SignalContext{Context: ctx, cancel: cancel}
}

// Cancel releases the signal listener.
func (sc *SignalContext) Cancel() {
	sc.cancel(nil)
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	var se *SignalError
	if errors.As(context.Cause(sc.Context), &se) {
		return se.Signal
	}
	return nil
}
