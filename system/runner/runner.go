package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/parse"

	"github.com/go-audio/wav"
)

// Runner runs the Praat analysis scripts.
type Runner struct {
	resolver  Resolver
	executor  Executor
	scriptDir string
	log       *slog.Logger
}

type Option func(*Runner)

func WithResolver(r Resolver) Option {
	return func(rr *Runner) { rr.resolver = r }
}

func WithExecutor(e Executor) Option {
	return func(r *Runner) { r.executor = e }
}

// WithScriptDir runs the scripts found in dir instead of the shipped ones.
func WithScriptDir(dir string) Option {
	return func(r *Runner) { r.scriptDir = dir }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// New creates a Runner. By default Praat is found with DefaultResolver
// and run with an ExecExecutor.
func New(opts ...Option) *Runner {
	r := &Runner{
		resolver:  DefaultResolver(),
		scriptDir: os.Getenv(ScriptsEnv),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.executor == nil {
		r.executor = &ExecExecutor{Logger: r.log}
	}
	return r
}

// OutputPath replaces the extension of wavPath by suffix.
func OutputPath(wavPath, suffix string) string {
	return strings.TrimSuffix(wavPath, filepath.Ext(wavPath)) + suffix
}

// ValidateWAV checks that path holds a readable WAV file.
func ValidateWAV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAudio, err)
	}
	defer f.Close()
	d := wav.NewDecoder(f)
	d.ReadInfo()
	if !d.IsValidFile() {
		return fmt.Errorf("%w: %s", ErrInvalidAudio, path)
	}
	return nil
}

// Formant writes a Formant object for wavPath to out, or next to
// wavPath if out is empty, and returns its path.
func (r *Runner) Formant(ctx context.Context, wavPath, out string, p FormantParams) (string, error) {
	if out == "" {
		out = OutputPath(wavPath, ".Formant")
	}
	return out, r.run(ctx, formantScript, wavPath, out, p.args()...)
}

// Pitch writes the pitch of wavPath as a Matrix object.
func (r *Runner) Pitch(ctx context.Context, wavPath, out string, p PitchParams) (string, error) {
	if out == "" {
		out = OutputPath(wavPath, ".Matrix")
	}
	return out, r.run(ctx, pitchScript, wavPath, out, p.args()...)
}

// TextGrid writes a TextGrid of the silences of wavPath.
func (r *Runner) TextGrid(ctx context.Context, wavPath, out string) (string, error) {
	if out == "" {
		out = OutputPath(wavPath, ".TextGrid")
	}
	return out, r.run(ctx, textGridScript, wavPath, out)
}

// VoiceReport writes a voice report of wavPath between start and end.
func (r *Runner) VoiceReport(ctx context.Context, wavPath, out string, start, end float64, p PitchParams) (string, error) {
	if out == "" {
		out = OutputPath(wavPath, "-voice_report.txt")
	}
	args := append(floatArgs(start, end), p.args()...)
	return out, r.run(ctx, reportScript, wavPath, out, args...)
}

// FormantPath is where MakeFormants writes the Formant object of key.
func FormantPath(wavPath, key string) string {
	return OutputPath(wavPath, "-"+key+".Formant")
}

// MakeFormants writes one Formant object per key, using the parameters
// of ps for that key. Without keys every key of ps and DefaultKey are
// used. It returns the paths written.
func (r *Runner) MakeFormants(ctx context.Context, wavPath string, ps ParamSet, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		keys = ps.Keys()
	}
	var res []string
	for _, k := range keys {
		p, err := ps.Get(k)
		if err != nil {
			return res, err
		}
		out, err := r.Formant(ctx, wavPath, FormantPath(wavPath, k), p)
		if err != nil {
			return res, err
		}
		res = append(res, out)
	}
	return res, nil
}

// FindFormant reads the Formant object MakeFormants wrote for key,
// falling back to the one for DefaultKey.
func FindFormant(wavPath, key string, opts ...parse.ParseOption) (*ir.Formant, error) {
	path := FormantPath(wavPath, key)
	if _, err := os.Stat(path); err != nil {
		path = FormantPath(wavPath, DefaultKey)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.Formant(f, opts...)
}

func (r *Runner) run(ctx context.Context, script, wavPath, out string, args ...string) error {
	if err := ValidateWAV(wavPath); err != nil {
		return err
	}
	praat, err := r.resolver.Resolve()
	if err != nil {
		return &ExternalToolError{Tool: "praat", Script: script, Err: err}
	}
	dir := r.scriptDir
	if dir == "" {
		if dir, err = extractScripts(); err != nil {
			return &ExternalToolError{Tool: praat, Script: script, Err: err}
		}
	}
	scriptPath := filepath.Join(dir, script)
	args = append([]string{wavPath, out}, args...)
	r.log.Info("running praat", "script", script, "wav", wavPath, "out", out)
	cmdArgs := append([]string{"--run", scriptPath}, args...)
	if err := r.executor.Run(ctx, praat, cmdArgs...); err != nil {
		return &ExternalToolError{Tool: praat, Script: scriptPath, Args: args, Err: err}
	}
	if _, err := os.Stat(out); err != nil {
		return &ExternalToolError{Tool: praat, Script: scriptPath, Args: args, Err: fmt.Errorf("%w: %s", ErrNoOutput, out)}
	}
	return nil
}
