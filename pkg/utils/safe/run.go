package safe

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Run executes handler synchronously and converts a panic into an error
//
// Behavior:
//   - Returns the handler's error unchanged
//   - Recovers from panics, logs them with a stack trace and returns them as an error
//
// Run is the failure boundary of a single unit of work: nothing raised inside
// handler unwinds past it.
func Run(ctx context.Context, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("panic in handler",
				"recover", r,
				"stack", string(stack))
			err = goerr.New(fmt.Sprintf("panic: %v", r), goerr.V("recover", r))
		}
	}()

	return handler(ctx)
}
