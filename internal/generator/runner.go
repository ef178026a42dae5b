package generator

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes the external generator command.
type Runner interface {
	// Run executes name with args under ctx, returning captured stdout
	// and stderr. The error is whatever the execution produced; stderr is
	// valid even when err is non-nil.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner runs the command as a real subprocess.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
