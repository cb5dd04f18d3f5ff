package main

import "fmt"

// WrapOperationError wraps err as "failed to <operation>: <err>".
// Returns nil when err is nil so call sites can wrap unconditionally.
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// WrapOperationErrorf is WrapOperationError with a formatted operation name,
// e.g. WrapOperationErrorf("read outline %s", err, path).
func WrapOperationErrorf(format string, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("failed to %s: %w", msg, err)
}
