// Command kasm assembles sequences from k-mers and sweeps assembly
// robustness across k-mer lengths and coverage-loss percentages.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/assembly"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/debruijn"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/seqio"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/sweep"
)

const version = "1.0.0"

func assembleCommand() *cobra.Command {
	var (
		linear   bool
		validate bool
		seed     int64
		outDir   string
		dotFile  string
	)

	cmd := &cobra.Command{
		Use:   "assemble <sequence_file> <k> [removal_percentage]",
		Short: "reconstruct a sequence from its k-mers and score the result",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := seqio.ReadSequence(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid k %q: %w", args[1], err)
			}
			removal := 0.0
			if len(args) == 3 {
				removal, err = strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("invalid removal percentage %q: %w", args[2], err)
				}
			}

			opts := []assembly.Option{assembly.WithRemoval(removal)}
			if linear {
				opts = append(opts, assembly.WithLinear())
			}
			if validate {
				opts = append(opts, assembly.WithValidation())
			}
			if seed != 0 {
				opts = append(opts, assembly.WithRand(rand.New(rand.NewSource(seed))))
			}

			log.Printf("sequence length %d, k=%d, removing %.2f%% of k-mers", len(seq), k, removal)

			if dotFile != "" {
				if err := writeDOT(seq, k, !linear, dotFile); err != nil {
					return err
				}
			}

			report, err := assembly.Run(seq, k, opts...)
			if err != nil {
				return err
			}
			if _, err := report.WriteTo(os.Stdout); err != nil {
				return err
			}
			if outDir != "" {
				path := seqio.ReportPath(outDir, k, removal)
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create report %s: %w", path, err)
				}
				defer f.Close()
				if _, err := report.WriteTo(f); err != nil {
					return fmt.Errorf("write report %s: %w", path, err)
				}
				log.Printf("report written to %s", path)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&linear, "linear", false, "treat the sequence as linear (no wrap-around, no rotation search)")
	cmd.Flags().BoolVar(&validate, "validate", false, "fail on non-Eulerian k-mer graphs instead of best-effort assembly")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the k-mer removal RNG (0 = time-based)")
	cmd.Flags().StringVar(&outDir, "out", "", "also write the report to <out>/output_k<K>_missing<P>.txt")
	cmd.Flags().StringVar(&dotFile, "dot", "", "write the de Bruijn graph to this file in Graphviz DOT format")

	return cmd
}

// writeDOT renders the pre-traversal graph; assembly consumes its own
// copy, so the export rebuilds one from scratch.
func writeDOT(seq string, k int, cyclic bool, path string) error {
	var countOpts []kmer.Option
	if cyclic {
		countOpts = append(countOpts, kmer.WithCyclic())
	}
	g := debruijn.Build(kmer.Count(seq, k, countOpts...))
	dot, err := g.DOT("debruijn")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write DOT %s: %w", path, err)
	}
	log.Printf("graph written to %s", path)

	return nil
}

func fromKmersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-kmers <kmers_file>",
		Short: "reconstruct a sequence from a k-mer list (one per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := seqio.ReadKmers(args[0])
			if err != nil {
				return err
			}
			genome := assembly.RunKmers(ms)
			fmt.Printf("Reconstructed genome length: %d\n", len(genome))
			fmt.Printf("Reconstructed genome: %s\n", genome)

			return nil
		},
	}
}

func fromReadsCommand() *cobra.Command {
	var maxOverlap int

	cmd := &cobra.Command{
		Use:   "from-reads <reads_file>",
		Short: "reassemble a sequence from overlapping reads (one per line)",
		Long: `from-reads greedily merges the read whose suffix best overlaps
another read's prefix, repeating until a single contig remains or no
pair overlaps. It is the consumer for the output of kasm reads.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reads, err := seqio.ReadReads(args[0])
			if err != nil {
				return err
			}
			log.Printf("merging %d reads, overlaps capped at %d symbols", len(reads), maxOverlap)
			genome := assembly.MergeReads(reads, maxOverlap)
			fmt.Printf("Assembled genome length: %d\n", len(genome))
			fmt.Printf("Assembled genome: %s\n", genome)

			return nil
		},
	}

	cmd.Flags().IntVar(&maxOverlap, "max-overlap", 4, "largest suffix/prefix overlap considered when merging")

	return cmd
}

func readsCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "reads <sequence_file> <output_file>",
		Short: "break a sequence into overlapping fixed-length reads",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := seqio.ReadSequence(args[0])
			if err != nil {
				return err
			}
			reads := seqio.Reads(seq, length)
			if err := seqio.WriteReads(args[1], reads); err != nil {
				return err
			}
			log.Printf("%d reads of length %d written to %s", len(reads), length, args[1])

			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 10, "read length (consecutive reads overlap by one symbol)")

	return cmd
}

func sweepCommand() *cobra.Command {
	var (
		grid    = sweep.DefaultGrid()
		threads int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sweep <assembler> <sequence_file> <output_dir>",
		Short: "run one assembly per (k, removal%) pair on a worker pool",
		Long: `sweep launches the given assembler command once per (k, removal
percentage) pair, capturing each run's stdout into
<output_dir>/output_k<K>_missing<P>.txt. Tasks are dispatched from a
bounded worker pool; a failing task is reported but does not cancel its
siblings, and the first failure (in task order) decides the exit status.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sweep.Runner{
				Assembler:    strings.Fields(args[0]),
				SequenceFile: args[1],
				OutputDir:    args[2],
				Workers:      threads,
				Timeout:      timeout,
				Progress:     true,
			}

			tasks := grid.Tasks()
			log.Printf("sweeping k=%d..%d, removal %g%%..%g%% (%d runs, %d workers)",
				grid.KStart, grid.KEnd, grid.RemoveStart, grid.RemoveEnd, len(tasks), runner.Workers)

			started := time.Now()
			if err := runner.Run(context.Background(), grid); err != nil {
				return err
			}
			log.Printf("all %d runs completed in %.2f seconds", len(tasks), time.Since(started).Seconds())

			return nil
		},
	}

	cmd.Flags().IntVar(&grid.KStart, "k-start", grid.KStart, "starting k-mer length")
	cmd.Flags().IntVar(&grid.KEnd, "k-end", grid.KEnd, "ending k-mer length (inclusive)")
	cmd.Flags().IntVar(&grid.KStep, "k-step", grid.KStep, "k-mer length step")
	cmd.Flags().Float64Var(&grid.RemoveStart, "remove-start", grid.RemoveStart, "starting removal percentage")
	cmd.Flags().Float64Var(&grid.RemoveEnd, "remove-end", grid.RemoveEnd, "ending removal percentage (inclusive)")
	cmd.Flags().Float64Var(&grid.RemoveStep, "remove-step", grid.RemoveStep, "removal percentage step")
	cmd.Flags().IntVar(&threads, "threads", sweep.DefaultWorkers, "worker pool size")
	cmd.Flags().DurationVar(&timeout, "timeout", sweep.DefaultTimeout, "per-run wall-clock deadline")

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the kasm version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kasm v%s\n", version)
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "kasm",
		Short: "k-mer assembly and robustness analysis",
		Long: `kasm reconstructs circular or linear sequences from their k-mers via
a de Bruijn graph Eulerian walk, and measures how reconstruction quality
degrades as k-mer evidence goes missing.`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(assembleCommand())
	rootCmd.AddCommand(fromKmersCommand())
	rootCmd.AddCommand(fromReadsCommand())
	rootCmd.AddCommand(readsCommand())
	rootCmd.AddCommand(sweepCommand())
	rootCmd.AddCommand(versionCommand())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
