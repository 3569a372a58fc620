package reveal

import (
	"errors"
	"os/exec"

	"github.com/lumipallolabs/rms/internal/logging"
)

// Launcher starts helper processes without waiting for them
type Launcher interface {
	// Start launches name with args as a child of the calling process.
	Start(name string, args ...string) error
	// StartDetached launches name with args decoupled from the caller's
	// lifetime (own session / process group).
	StartDetached(name string, args ...string) error
}

// ExecLauncher is the os/exec backed Launcher
type ExecLauncher struct{}

func (ExecLauncher) Start(name string, args ...string) error {
	return start(exec.Command(name, args...))
}

func (ExecLauncher) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = detachAttr()
	return start(cmd)
}

func start(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	logging.Reveal.Debug().
		Str("cmd", cmd.Path).
		Strs("args", cmd.Args[1:]).
		Int("pid", cmd.Process.Pid).
		Msg("started")

	// Reap in the background so the caller never blocks and no zombie is left
	go reap(cmd)
	return nil
}

func reap(cmd *exec.Cmd) {
	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		logging.Reveal.Debug().Int("pid", cmd.Process.Pid).Msg("exited")
	case errors.As(err, &exitErr):
		logging.Reveal.Warn().
			Int("pid", cmd.Process.Pid).
			Int("code", exitErr.ExitCode()).
			Str("cmd", cmd.Path).
			Msg("helper exited with failure")
	default:
		logging.Reveal.Warn().Err(err).Str("cmd", cmd.Path).Msg("wait failed")
	}
}
