// Package sweep defines the Grid, Task, and Runner types.
package sweep

import (
	"errors"
	"time"
)

const (
	// DefaultWorkers is the worker-pool size when Runner.Workers is 0.
	DefaultWorkers = 4

	// DefaultTimeout is the per-task deadline when Runner.Timeout is 0.
	DefaultTimeout = 600 * time.Second
)

var (
	// ErrNoOutputDir indicates the configured output directory does not
	// exist. Nothing is dispatched in that case.
	ErrNoOutputDir = errors.New("sweep: output directory does not exist")

	// ErrNoAssembler indicates the runner was given an empty assembler
	// command line.
	ErrNoAssembler = errors.New("sweep: assembler command is empty")

	// ErrBadGrid indicates a parameter range that cannot be expanded.
	ErrBadGrid = errors.New("sweep: invalid parameter grid")

	// ErrTimeout indicates one task exceeded the per-task deadline.
	ErrTimeout = errors.New("sweep: task deadline exceeded")
)

// Task is one (k, removal-percentage) assembly invocation.
type Task struct {
	// K is the k-mer length passed to the assembler.
	K int

	// RemovePercent is the k-mer removal percentage passed to the
	// assembler.
	RemovePercent float64
}

// Grid describes the parameter ranges of a sweep. All bounds are
// inclusive.
type Grid struct {
	KStart, KEnd, KStep                int
	RemoveStart, RemoveEnd, RemoveStep float64
}

// DefaultGrid returns the reference sweep ranges: k from 3 to 10 step 1,
// removal from 0% to 30% step 10.
func DefaultGrid() Grid {
	return Grid{
		KStart: 3, KEnd: 10, KStep: 1,
		RemoveStart: 0, RemoveEnd: 30, RemoveStep: 10,
	}
}

// Runner executes a sweep.
type Runner struct {
	// Assembler is the argv prefix of the external assembler; each task
	// appends <sequence_file> <k> <removal_percentage>.
	Assembler []string

	// SequenceFile is the path handed to every invocation.
	SequenceFile string

	// OutputDir receives one output_k<K>_missing<P>.txt per task. Must
	// exist before Run is called.
	OutputDir string

	// Workers bounds the number of concurrent invocations.
	// 0 means DefaultWorkers.
	Workers int

	// Timeout is the per-task wall-clock deadline. 0 means
	// DefaultTimeout.
	Timeout time.Duration

	// Progress draws a terminal progress bar over completed tasks.
	Progress bool
}
