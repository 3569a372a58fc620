package reveal

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumipallolabs/rms/internal/logging"
)

func TestExecLauncherMissingBinary(t *testing.T) {
	var l ExecLauncher
	err := l.Start("rms-no-such-helper-binary")
	require.Error(t, err)

	var execErr *exec.Error
	assert.ErrorAs(t, err, &execErr)

	assert.Error(t, l.StartDetached("rms-no-such-helper-binary"))
}

func lookupShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestExecLauncherDoesNotWait(t *testing.T) {
	sh := lookupShell(t)
	var l ExecLauncher

	start := time.Now()
	require.NoError(t, l.Start(sh, "-c", "sleep 2"))
	require.NoError(t, l.StartDetached(sh, "-c", "sleep 2"))
	assert.Less(t, time.Since(start), time.Second, "launching must not wait for the helper")
}

// sessionID reads the session id (field 6) from a /proc/<pid>/stat line
func sessionID(t *testing.T, stat string) string {
	t.Helper()
	// comm is parenthesised and may hold spaces
	i := strings.LastIndexByte(stat, ')')
	require.GreaterOrEqual(t, i, 0, "malformed stat: %q", stat)
	fields := strings.Fields(stat[i+1:])
	require.GreaterOrEqual(t, len(fields), 4, "malformed stat: %q", stat)
	// state ppid pgrp session
	return fields[3]
}

func TestExecLauncherDetachedGetsOwnSession(t *testing.T) {
	sh := lookupShell(t)
	self, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		t.Skip("no /proc")
	}

	out := filepath.Join(t.TempDir(), "stat")
	script := "cat /proc/$$/stat > " + out + ".tmp && mv " + out + ".tmp " + out

	var l ExecLauncher
	require.NoError(t, l.StartDetached(sh, "-c", script))

	var child []byte
	require.Eventually(t, func() bool {
		child, err = os.ReadFile(out)
		return err == nil && len(child) > 0
	}, 5*time.Second, 20*time.Millisecond)

	assert.NotEqual(t, sessionID(t, string(self)), sessionID(t, string(child)))
}

func TestExecLauncherStartStaysInSession(t *testing.T) {
	sh := lookupShell(t)
	self, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		t.Skip("no /proc")
	}

	out := filepath.Join(t.TempDir(), "stat")
	script := "cat /proc/$$/stat > " + out + ".tmp && mv " + out + ".tmp " + out

	var l ExecLauncher
	require.NoError(t, l.Start(sh, "-c", script))

	var child []byte
	require.Eventually(t, func() bool {
		child, err = os.ReadFile(out)
		return err == nil && len(child) > 0
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, sessionID(t, string(self)), sessionID(t, string(child)))
}

// lockedBuffer is written by reaper goroutines while the test reads it
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestExecLauncherLogsExitStatus(t *testing.T) {
	sh := lookupShell(t)
	var logs lockedBuffer
	logging.SetOutput(&logs)
	t.Cleanup(logging.Disable)

	var l ExecLauncher
	require.NoError(t, l.Start(sh, "-c", "exit 3"))

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "helper exited with failure")
	}, 5*time.Second, 20*time.Millisecond)

	out := logs.String()
	assert.Contains(t, out, `"code":3`)
	assert.Contains(t, out, `"component":"reveal"`)
}

// missingLauncher runs a binary that doesn't exist
type missingLauncher struct{}

func (missingLauncher) Start(string, ...string) error {
	return ExecLauncher{}.Start("rms-no-such-helper-binary")
}

func (missingLauncher) StartDetached(string, ...string) error {
	return ExecLauncher{}.StartDetached("rms-no-such-helper-binary")
}

func TestRevealSpawnFailureFromExec(t *testing.T) {
	r := New("linux", WithLauncher(missingLauncher{}))
	err := r.Reveal("/home/u/doc.txt")
	assert.ErrorIs(t, err, ErrSpawn)

	var execErr *exec.Error
	assert.ErrorAs(t, err, &execErr)
}
