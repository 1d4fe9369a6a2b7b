package runner

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/signadot/praat-format/debug"
)

// Executor runs an external command to completion.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecExecutor runs commands with os/exec. Lines of standard output are
// logged at INFO level, lines of standard error at WARN level.
type ExecExecutor struct {
	Logger *slog.Logger
}

func (e *ExecExecutor) Run(ctx context.Context, name string, args ...string) error {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}
	if debug.Exec() {
		debug.Logf("exec %s %q\n", name, args)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	var wg sync.WaitGroup
	wg.Add(2)
	go logLines(&wg, stdout, func(s string) { log.Info(s, "cmd", name) })
	go logLines(&wg, stderr, func(s string) { log.Warn(s, "cmd", name) })
	wg.Wait()
	return cmd.Wait()
}

func logLines(wg *sync.WaitGroup, r io.Reader, f func(string)) {
	defer wg.Done()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f(sc.Text())
	}
}
