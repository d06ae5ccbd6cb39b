package sweep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/cheggaaa/pb/v3"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/seqio"
)

// Validate checks the runner configuration without dispatching anything:
// the assembler argv must be non-empty and the output directory must
// already exist (the reference driver refuses to create it).
func (r *Runner) Validate() error {
	if len(r.Assembler) == 0 {
		return ErrNoAssembler
	}
	info, err := os.Stat(r.OutputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNoOutputDir, r.OutputDir)
	}

	return nil
}

// Run expands grid and executes every task on a bounded worker pool.
//
// All tasks run to completion regardless of sibling failures; each
// failure is logged when observed, and after the pool drains Run
// returns the first error in task order (nil if every task succeeded).
// Cancelling ctx stops the remaining child processes.
func (r *Runner) Run(ctx context.Context, grid Grid) error {
	// 1. Fail fast on configuration problems
	if err := r.Validate(); err != nil {
		return err
	}
	if err := grid.Validate(); err != nil {
		return err
	}

	tasks := grid.Tasks()
	if len(tasks) == 0 {
		return nil
	}

	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var bar *pb.ProgressBar
	if r.Progress {
		bar = pb.Full.Start(len(tasks))
	}

	// 2. Bounded pool over a task-index queue; results land in a slice
	//    indexed by task so collection order is deterministic.
	failures := make([]error, len(tasks))
	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				task := tasks[i]
				if err := r.runTask(ctx, task); err != nil {
					failures[i] = err
					log.Printf("sweep: k=%d missing=%.2f%%: %v", task.K, task.RemovePercent, err)
				}
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}
	for i := range tasks {
		queue <- i
	}
	close(queue)
	wg.Wait()
	if bar != nil {
		bar.Finish()
	}

	// 3. Report the first failure in task order
	for i, err := range failures {
		if err != nil {
			return fmt.Errorf("sweep: k=%d missing=%g%%: %w",
				tasks[i].K, tasks[i].RemovePercent, err)
		}
	}

	return nil
}

// runTask executes one assembler invocation under the per-task deadline
// and writes its stdout to the task's report file.
func (r *Runner) runTask(ctx context.Context, task Task) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append([]string{}, r.Assembler[1:]...)
	args = append(args,
		r.SequenceFile,
		strconv.Itoa(task.K),
		strconv.FormatFloat(task.RemovePercent, 'f', -1, 64),
	)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(tctx, r.Assembler[0], args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(tctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w (limit %s)", ErrTimeout, timeout)
	}
	if err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("assembler failed: %w: %s", err, msg)
		}

		return fmt.Errorf("assembler failed: %w", err)
	}

	out := seqio.ReportPath(r.OutputDir, task.K, task.RemovePercent)
	if err := os.WriteFile(out, stdout.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
