package mkdir

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/mkd/internal/model"
)

// recordingReporter keeps every outcome it receives so tests can inspect
// what the Runner reported and in which order.
type recordingReporter struct {
	outcomes []model.Outcome
}

func (r *recordingReporter) Report(outcome model.Outcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingReporter) kinds() []model.OutcomeKind {
	kinds := make([]model.OutcomeKind, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		kinds = append(kinds, o.Kind)
	}
	return kinds
}

// newTestRunner returns a Runner working inside a fresh temp directory,
// with relative paths resolved against it.
func newTestRunner(t *testing.T) (*Runner, *recordingReporter, string) {
	t.Helper()

	dir := t.TempDir()
	chdir(t, dir)

	rep := &recordingReporter{}
	runner := NewRunner(rep)
	// os.Getwd may report a symlink-resolved temp path on some platforms.
	runner.Getwd = fixedWorkdir(dir)
	return runner, rep, dir
}

// TestRun_MixedOutcomes covers the scenario of one path succeeding and a
// second one failing because its parent is missing: the run still finishes
// without a fatal error.
func TestRun_MixedOutcomes(t *testing.T) {
	runner, rep, dir := newTestRunner(t)

	err := runner.Run(context.Background(), &model.Request{Paths: []string{"a", "b/c"}})
	require.NoError(t, err, "per-path failures must not be fatal")

	assert.Equal(t, []model.OutcomeKind{model.OutcomeSuccess, model.OutcomeNotFound}, rep.kinds())
	assert.DirExists(t, filepath.Join(dir, "a"))
	assert.NoDirExists(t, filepath.Join(dir, "b"))

	assert.Equal(t, "a", rep.outcomes[0].Path)
	assert.Equal(t, dir+"/a", rep.outcomes[0].Resolved)
	assert.Equal(t, "b/c", rep.outcomes[1].Path)
	assert.Error(t, rep.outcomes[1].Err)
}

func TestRun_ParentsCreatesChain(t *testing.T) {
	runner, rep, dir := newTestRunner(t)

	err := runner.Run(context.Background(), &model.Request{
		Paths:   []string{"x/y/z"},
		Parents: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []model.OutcomeKind{model.OutcomeSuccess}, rep.kinds())
	assert.DirExists(t, filepath.Join(dir, "x", "y", "z"))
}

// TestRun_ExistingDirectory checks the asymmetry between single-level and
// recursive creation of a directory that is already there.
func TestRun_ExistingDirectory(t *testing.T) {
	t.Run("single level reports already exists", func(t *testing.T) {
		runner, rep, dir := newTestRunner(t)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "existing"), 0o755))

		require.NoError(t, runner.Run(context.Background(), &model.Request{Paths: []string{"existing"}}))
		assert.Equal(t, []model.OutcomeKind{model.OutcomeAlreadyExists}, rep.kinds())
	})

	t.Run("parents treats it as success", func(t *testing.T) {
		runner, rep, dir := newTestRunner(t)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "existing"), 0o755))

		require.NoError(t, runner.Run(context.Background(), &model.Request{
			Paths:   []string{"existing"},
			Parents: true,
		}))
		assert.Equal(t, []model.OutcomeKind{model.OutcomeSuccess}, rep.kinds())
	})
}

func TestRun_AbsolutePath(t *testing.T) {
	runner, rep, _ := newTestRunner(t)
	target := filepath.Join(t.TempDir(), "abs")

	require.NoError(t, runner.Run(context.Background(), &model.Request{Paths: []string{target}}))
	require.Len(t, rep.outcomes, 1)
	assert.Equal(t, target, rep.outcomes[0].Resolved)
	assert.DirExists(t, target)
}

func TestRun_AppliesMode(t *testing.T) {
	runner, rep, dir := newTestRunner(t)

	require.NoError(t, runner.Run(context.Background(), &model.Request{
		Paths: []string{"private", "shared"},
		Mode:  "755",
	}))
	assert.Equal(t, []model.OutcomeKind{model.OutcomeSuccess, model.OutcomeSuccess}, rep.kinds())

	for _, name := range []string{"private", "shared"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm(), name)
	}
}

// TestRun_AppliesModeToExistingDirectory verifies the mode is applied even
// when the directory was already there.
func TestRun_AppliesModeToExistingDirectory(t *testing.T) {
	runner, rep, dir := newTestRunner(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "existing"), 0o755))

	require.NoError(t, runner.Run(context.Background(), &model.Request{
		Paths: []string{"existing"},
		Mode:  "0700",
	}))
	assert.Equal(t, []model.OutcomeKind{model.OutcomeAlreadyExists}, rep.kinds())

	info, err := os.Stat(filepath.Join(dir, "existing"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

// TestRun_InvalidModeIsFatal verifies an unparsable mode aborts before any
// directory is created.
func TestRun_InvalidModeIsFatal(t *testing.T) {
	runner, rep, dir := newTestRunner(t)

	err := runner.Run(context.Background(), &model.Request{
		Paths: []string{"first", "second"},
		Mode:  "abc",
	})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInvalidMode, cliErr.Code)

	assert.Empty(t, rep.outcomes)
	assert.NoDirExists(t, filepath.Join(dir, "first"))
	assert.NoDirExists(t, filepath.Join(dir, "second"))
}

// TestRun_ModeApplyFailureIsFatal verifies that when the mode cannot be
// applied (here: the directory was never created) the run stops and later
// paths are not touched.
func TestRun_ModeApplyFailureIsFatal(t *testing.T) {
	runner, rep, dir := newTestRunner(t)

	err := runner.Run(context.Background(), &model.Request{
		Paths: []string{"missing/child", "later"},
		Mode:  "755",
	})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitModeApplyFailed, cliErr.Code)

	assert.Equal(t, []model.OutcomeKind{model.OutcomeNotFound}, rep.kinds())
	assert.NoDirExists(t, filepath.Join(dir, "later"))
}

func TestRun_WorkdirFailureIsFatal(t *testing.T) {
	runner, rep, _ := newTestRunner(t)
	runner.Getwd = func() (string, error) {
		return "", errors.New("getwd: no such file or directory")
	}

	err := runner.Run(context.Background(), &model.Request{Paths: []string{"a"}})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitWorkdirUnavailable, cliErr.Code)
	assert.Empty(t, rep.outcomes)
}

func TestRun_CancelledContext(t *testing.T) {
	runner, rep, dir := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, &model.Request{Paths: []string{"a"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, rep.outcomes)
	assert.NoDirExists(t, filepath.Join(dir, "a"))
}

func TestRun_Debugf(t *testing.T) {
	runner, _, dir := newTestRunner(t)

	var lines []string
	runner.Debugf = func(format string, args ...interface{}) {
		lines = append(lines, format)
	}

	require.NoError(t, runner.Run(context.Background(), &model.Request{
		Paths: []string{"traced"},
		Mode:  "750",
	}))
	assert.Len(t, lines, 2)
	assert.DirExists(t, filepath.Join(dir, "traced"))
}
