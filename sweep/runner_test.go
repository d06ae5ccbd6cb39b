package sweep_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/seqio"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleTask is a one-point grid used by most runner tests.
var singleTask = sweep.Grid{KStart: 3, KEnd: 3, RemoveStart: 0, RemoveEnd: 0}

// TestRunner_ValidateMissingOutputDir verifies the fail-fast check: no
// output directory, nothing dispatched.
func TestRunner_ValidateMissingOutputDir(t *testing.T) {
	r := &sweep.Runner{
		Assembler: []string{"true"},
		OutputDir: filepath.Join(t.TempDir(), "absent"),
	}

	err := r.Run(context.Background(), singleTask)
	assert.ErrorIs(t, err, sweep.ErrNoOutputDir)
}

// TestRunner_ValidateEmptyAssembler verifies an empty argv is rejected.
func TestRunner_ValidateEmptyAssembler(t *testing.T) {
	r := &sweep.Runner{OutputDir: t.TempDir()}
	assert.ErrorIs(t, r.Validate(), sweep.ErrNoAssembler)
}

// TestRunner_WritesReportFiles verifies a successful sweep captures each
// invocation's stdout into the per-task report file.
func TestRunner_WritesReportFiles(t *testing.T) {
	dir := t.TempDir()
	r := &sweep.Runner{
		// echo prints its arguments: <sequence_file> <k> <pct>
		Assembler:    []string{"echo"},
		SequenceFile: "genome.txt",
		OutputDir:    dir,
		Workers:      2,
	}
	grid := sweep.Grid{
		KStart: 3, KEnd: 4, KStep: 1,
		RemoveStart: 0, RemoveEnd: 10, RemoveStep: 10,
	}

	require.NoError(t, r.Run(context.Background(), grid))

	for _, task := range grid.Tasks() {
		path := seqio.ReportPath(dir, task.K, task.RemovePercent)
		content, err := os.ReadFile(path)
		require.NoError(t, err, "report for %+v must exist", task)
		assert.Contains(t, string(content), "genome.txt", "stdout captured")
	}
}

// TestRunner_FirstFailureInTaskOrder verifies every task still runs and
// the first failure (in task order) is the one returned.
func TestRunner_FirstFailureInTaskOrder(t *testing.T) {
	dir := t.TempDir()
	r := &sweep.Runner{
		// false exits 1 for every invocation.
		Assembler:    []string{"false"},
		SequenceFile: "genome.txt",
		OutputDir:    dir,
		Workers:      3,
	}
	grid := sweep.Grid{
		KStart: 3, KEnd: 5, KStep: 1,
		RemoveStart: 0, RemoveEnd: 0,
	}

	err := r.Run(context.Background(), grid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k=3", "first task's failure wins")
}

// TestRunner_SiblingsSurviveOneFailure verifies a failing task does not
// cancel its siblings: their reports are still written.
func TestRunner_SiblingsSurviveOneFailure(t *testing.T) {
	dir := t.TempDir()
	r := &sweep.Runner{
		// sh -c 'test $2 != 4 && echo ok' fails only for k=4.
		Assembler:    []string{"sh", "-c", `test "$2" != 4 && echo "run $2"`, "sweep-test"},
		SequenceFile: "genome.txt",
		OutputDir:    dir,
		Workers:      1,
	}
	grid := sweep.Grid{
		KStart: 3, KEnd: 5, KStep: 1,
		RemoveStart: 0, RemoveEnd: 0,
	}

	err := r.Run(context.Background(), grid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k=4")

	// k=3 ran before the failure, k=5 after it; both reports exist.
	for _, k := range []int{3, 5} {
		_, statErr := os.Stat(seqio.ReportPath(dir, k, 0))
		assert.NoError(t, statErr, "sibling k=%d must have completed", k)
	}
}

// TestRunner_Timeout verifies the per-task deadline surfaces ErrTimeout.
func TestRunner_Timeout(t *testing.T) {
	dir := t.TempDir()
	r := &sweep.Runner{
		// The shell ignores the appended task arguments ($0 onward).
		Assembler:    []string{"sh", "-c", "sleep 5", "sweep-test"},
		SequenceFile: "genome.txt",
		OutputDir:    dir,
		Timeout:      50 * time.Millisecond,
	}

	err := r.Run(context.Background(), singleTask)
	assert.ErrorIs(t, err, sweep.ErrTimeout)
}
