package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/pagescout/internal/tuitest"
)

func TestViewerSearchSession(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	fixture := filepath.Join(cmdDir, "testdata", "sample.txt")
	binary := buildBinary(t, cmdDir)

	steps := []tuitest.Step{tuitest.Wait(time.Second), tuitest.Press(tuitest.KeyRight), tuitest.Wait(300 * time.Millisecond)}
	steps = append(steps, tuitest.Press([]byte("/")))
	steps = append(steps, tuitest.Type("needle")...)
	steps = append(steps,
		tuitest.Press(tuitest.KeyEnter),
		tuitest.Wait(500*time.Millisecond),
		tuitest.Press([]byte("q")),
	)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-file", "", fixture},
		Dir:     cmdDir,
		Width:   100,
		Height:  20,
		Steps:   steps,
		Timeout: 10 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.ExitCode)

	out := rec.Output()
	assert.Contains(t, out, "sample.txt - Page 1 of 2")
	assert.Contains(t, out, "The first page talks about the weather.")
	assert.Contains(t, out, "sample.txt - Page 2 of 2")
	assert.Contains(t, out, "Search: needle")
	assert.Contains(t, out, `Match 1 of 1 for "needle"`)
}

func TestViewerStartPage(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{
			binary, "--no-alt-screen", "--page", "2",
			"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-file", "",
			filepath.Join(cmdDir, "testdata", "sample.txt"),
		},
		Dir:   cmdDir,
		Width: 100,
		Steps: []tuitest.Step{
			tuitest.Wait(time.Second),
			tuitest.Press(tuitest.KeyCtrlC),
		},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Output(), "sample.txt - Page 2 of 2")
	assert.NotContains(t, rec.Output(), "Page 1 of 2")
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime caller unavailable")
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "pagescout-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build CLI:\n%s", output)
	return binPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
