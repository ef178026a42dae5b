// Package generator implements the change-gated client generation cycle: it
// hashes the host application's OpenAPI document and re-runs the external
// openapi-generator-cli only when the document changed since the last
// successful run.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apibridge/tsgen/internal/config"
	"github.com/apibridge/tsgen/internal/platform"
	"github.com/apibridge/tsgen/internal/schema"
)

const (
	// GeneratorTimeout bounds a single generator run.
	GeneratorTimeout = 120 * time.Second

	// MarkerFileName is the digest marker kept next to the generated client.
	MarkerFileName = ".schema.hash"

	// stderrExcerptLimit caps how much generator stderr reaches the user.
	stderrExcerptLimit = 500
)

// Invoker runs one generation cycle per dev-server reload. Zero values are
// filled with real collaborators by New; options swap them out for tests.
type Invoker struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer

	resolve  func(string) (schema.Provider, error)
	lookPath func(string) (string, error)
	sleep    func(time.Duration)
	runner   Runner
	platform platform.Platform
	timeout  time.Duration
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(inv *Invoker) { inv.log = log }
}

// WithOutput sets the writer for human-readable status lines.
func WithOutput(w io.Writer) Option {
	return func(inv *Invoker) { inv.out = w }
}

// WithRunner sets the subprocess runner.
func WithRunner(r Runner) Option {
	return func(inv *Invoker) { inv.runner = r }
}

// WithResolver sets the locator resolution function.
func WithResolver(f func(string) (schema.Provider, error)) Option {
	return func(inv *Invoker) { inv.resolve = f }
}

// WithLookPath sets the executable lookup function.
func WithLookPath(f func(string) (string, error)) Option {
	return func(inv *Invoker) { inv.lookPath = f }
}

// WithSleep sets the debounce sleep function.
func WithSleep(f func(time.Duration)) Option {
	return func(inv *Invoker) { inv.sleep = f }
}

// WithTimeout overrides the generator wall-clock bound.
func WithTimeout(d time.Duration) Option {
	return func(inv *Invoker) { inv.timeout = d }
}

// WithPlatform overrides host platform detection.
func WithPlatform(p platform.Platform) Option {
	return func(inv *Invoker) { inv.platform = p }
}

// New creates an Invoker for the given configuration.
func New(cfg *config.Config, opts ...Option) *Invoker {
	inv := &Invoker{
		cfg:      cfg,
		log:      slog.Default(),
		out:      os.Stdout,
		resolve:  schema.Resolve,
		lookPath: exec.LookPath,
		sleep:    time.Sleep,
		runner:   execRunner{},
		platform: platform.Current(),
		timeout:  GeneratorTimeout,
	}
	for _, o := range opts {
		o(inv)
	}
	return inv
}

// Run executes one full cycle: debounce, dependency probe, change-gated
// generation. It never returns an error; every failure is reduced to a
// single diagnostic line so the host server starts regardless of outcome.
func (inv *Invoker) Run(ctx context.Context) {
	log := inv.log.With("run_id", uuid.NewString())

	inv.Debounce()
	if !inv.CheckDependencies() {
		return
	}
	if err := inv.generate(ctx, log); err != nil {
		fmt.Fprintf(inv.out, "Generation Error: %v\n", err)
		log.Error("client generation failed", "error", err)
	}
}

// Debounce sleeps briefly so a rapid burst of file saves settles into a
// single generation cycle.
func (inv *Invoker) Debounce() {
	if inv.cfg.DebounceSeconds > 0 {
		inv.sleep(time.Duration(inv.cfg.DebounceSeconds * float64(time.Second)))
	}
}

// CheckDependencies verifies npx and java resolve on the search path. When a
// tool is missing it writes per-platform install guidance and returns false;
// the caller skips generation for this cycle and the server still starts.
func (inv *Invoker) CheckDependencies() bool {
	var missing []string
	if _, err := inv.lookPath("npx"); err != nil {
		missing = append(missing, "node")
	}
	if _, err := inv.lookPath("java"); err != nil {
		missing = append(missing, "java")
	}
	if len(missing) == 0 {
		return true
	}

	fmt.Fprintln(inv.out, "TypeScript Client Generation Failed: Missing Dependencies")
	for _, tool := range missing {
		switch tool {
		case "node":
			fmt.Fprintln(inv.out, "  [Node.js missing]")
			inv.log.Warn("Node.js (npx) is not installed")
		case "java":
			fmt.Fprintln(inv.out, "  [Java JRE missing]")
			inv.log.Warn("Java JRE is not installed")
		}
		if g := platform.Guidance(tool, inv.platform); g != "" {
			fmt.Fprintln(inv.out, "    "+g)
		}
	}
	fmt.Fprintln(inv.out, strings.Repeat("-", 30))
	return false
}

func (inv *Invoker) generate(ctx context.Context, log *slog.Logger) error {
	if !inv.cfg.Enabled() {
		log.Debug("client generation skipped: TSGEN_API or TSGEN_OUTPUT_DIR not configured")
		return nil
	}

	outputDir, err := filepath.Abs(inv.cfg.OutputDir)
	if err != nil {
		return &FilesystemError{Msg: "resolving output directory", Cause: err}
	}
	markerPath := filepath.Join(outputDir, MarkerFileName)

	log.Debug("loading API", "locator", inv.cfg.APILocator)
	provider, err := inv.resolve(inv.cfg.APILocator)
	if err != nil {
		return err
	}

	doc, err := provider.OpenAPISchema()
	if err != nil {
		return fmt.Errorf("fetching OpenAPI schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return err
	}

	canonical, err := CanonicalJSON(doc)
	if err != nil {
		return err
	}
	digest := Digest(canonical)

	if !changed(markerPath, digest) {
		log.Debug("schema unchanged, skipping generation")
		return nil
	}
	return inv.runGenerator(ctx, log, canonical, outputDir, markerPath, digest)
}

func (inv *Invoker) runGenerator(ctx context.Context, log *slog.Logger, canonical []byte, outputDir, markerPath, digest string) error {
	if err := checkParentWritable(outputDir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "tsgen-*.json")
	if err != nil {
		return &FilesystemError{Msg: "creating temp schema file", Cause: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(canonical); err != nil {
		tmp.Close()
		return &FilesystemError{Msg: "writing temp schema file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &FilesystemError{Msg: "closing temp schema file", Cause: err}
	}

	args := append([]string{"openapi-generator-cli"}, inv.cfg.GeneratorArgsOrDefault()...)
	args = append(args, "-o", outputDir, "-i", tmpPath)

	fmt.Fprintf(inv.out, "Generating Client to %s...\n", outputDir)
	log.Info("running openapi-generator-cli", "output_dir", outputDir)

	runCtx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	stdout, stderr, runErr := inv.runner.Run(runCtx, "npx", args...)
	if runErr != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return &TimeoutError{Limit: inv.timeout}
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &ExternalToolError{ExitCode: exitCode, Stderr: excerpt(stderr)}
	}
	if len(stdout) > 0 {
		log.Debug("generator output", "stdout", string(stdout))
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return &FilesystemError{Msg: "creating output directory", Cause: err}
	}
	if err := os.WriteFile(markerPath, []byte(digest), 0o644); err != nil {
		return &FilesystemError{Msg: "writing digest marker", Cause: err}
	}

	fmt.Fprintln(inv.out, "Client generation successful.")
	log.Info("TypeScript client generation completed successfully")
	return nil
}

// checkParentWritable verifies the parent of the output directory exists and
// is writable before any process is spawned.
func checkParentWritable(outputDir string) error {
	parent := filepath.Dir(outputDir)

	info, err := os.Stat(parent)
	if err != nil {
		return &FilesystemError{Msg: "output directory parent does not exist: " + parent, Cause: err}
	}
	if !info.IsDir() {
		return &FilesystemError{Msg: "output directory parent is not a directory: " + parent}
	}

	probe, err := os.CreateTemp(parent, ".tsgen-probe-*")
	if err != nil {
		return &FilesystemError{Msg: "output directory parent is not writable: " + parent, Cause: err}
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// excerpt trims generator stderr to a short human-readable excerpt.
func excerpt(stderr []byte) string {
	s := strings.TrimSpace(string(stderr))
	if len(s) > stderrExcerptLimit {
		s = s[:stderrExcerptLimit]
	}
	return s
}
