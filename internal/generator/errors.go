package generator

import (
	"fmt"
	"time"
)

// SerializationError reports a schema snapshot that could not be encoded to
// canonical JSON.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize OpenAPI schema to JSON: %v; ensure the schema contains only JSON-serializable values", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

// FilesystemError reports an IO or permission problem around the output
// directory, marker file, or temp input file.
type FilesystemError struct {
	Msg   string
	Cause error
}

func (e *FilesystemError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file system error: %s: %v", e.Msg, e.Cause)
	}
	return "file system error: " + e.Msg
}

func (e *FilesystemError) Unwrap() error { return e.Cause }

// ExternalToolError reports a generator process that exited non-zero.
type ExternalToolError struct {
	ExitCode int
	Stderr   string // truncated excerpt
}

func (e *ExternalToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("client generation failed (exit %d): %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("client generation failed (exit %d)", e.ExitCode)
}

// TimeoutError reports a generator run that exceeded its wall-clock bound.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("client generation timed out after %s", e.Limit)
}
