// Package sweep drives robustness experiments: it fans a grid of
// (k, removal-percentage) pairs out over a bounded worker pool, running
// one external assembler process per pair and collecting the per-run
// reports into an output directory.
//
// What:
//
//   - Grid: the parameter ranges and their expansion into Tasks.
//   - Runner: the pool configuration (assembler argv, sequence file,
//     output directory, worker count, per-task deadline) and Run, which
//     dispatches every task, waits for all of them, and returns the
//     first failure observed in task order.
//
// Why:
//   - Each assembly run is an independent, fully isolated unit of work:
//     process isolation means no shared state crosses invocations, and a
//     crash in one run cannot corrupt its siblings.
//
// Semantics:
//
//   - A failing task is logged when observed and does NOT cancel
//     siblings: every dispatched task runs to completion, then Run
//     returns the first error in task order. (Run-to-completion,
//     report-first-error — matching a ThreadPoolExecutor submit/result
//     loop.)
//   - The per-task deadline is enforced through context cancellation of
//     the child process — a cooperative, portable mechanism, not a hard
//     interrupt.
//
// Errors:
//
//   - ErrNoOutputDir — the output directory does not exist (checked
//     before anything is dispatched).
//   - ErrNoAssembler — the runner has an empty assembler argv.
//   - ErrBadGrid    — a range that cannot be expanded (non-positive step
//     with a non-empty span).
//   - ErrTimeout    — one task exceeded the per-task deadline.
package sweep
