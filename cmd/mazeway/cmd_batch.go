package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazeway/raster"
)

// batchJob is one input with its resolved output path.
type batchJob struct {
	input, output string
}

// uniqueJobs resolves the output of every input and drops inputs whose
// output is already claimed, keeping the first. It returns the kept jobs
// and the skipped inputs.
func uniqueJobs(inputs []string, suffix string) (jobs []batchJob, skipped []string) {
	claimed := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		out := raster.DefaultOutputPath(in, suffix)
		key := filepath.Clean(out)
		if claimed[key] {
			skipped = append(skipped, in)
			continue
		}
		claimed[key] = true
		jobs = append(jobs, batchJob{input: in, output: out})
	}
	return jobs, skipped
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input>...",
		Short: "Solve many maze images concurrently",
		Long: `Solve every input independently, writing each result next to its input
with the default output name. All inputs are attempted even if some fail.
Inputs that resolve to an output path already in the batch are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ValidateJobs(); err != nil {
				return a.finish(err)
			}
			pathColor, err := raster.ParseColor(a.cfg.PathColor)
			if err != nil {
				return a.finish(err)
			}

			runLog := a.log.WithFields(logrus.Fields{
				"run_id": uuid.NewString(),
				"jobs":   a.cfg.Jobs,
			})
			jobs, skipped := uniqueJobs(args, a.cfg.OutputSuffix)
			for _, in := range skipped {
				runLog.WithField("input", in).Warn("duplicate output path, input skipped")
			}
			runLog.WithField("inputs", len(jobs)).Info("batch started")

			ctx := cmd.Context()
			var (
				failed atomic.Int64
				outMu  sync.Mutex
			)
			g := new(errgroup.Group)
			g.SetLimit(a.cfg.Jobs)
			for _, job := range jobs {
				g.Go(func() error {
					log := runLog.WithField("input", job.input)
					if _, err := a.solveFile(ctx, log, job.input, job.output, pathColor); err != nil {
						failed.Add(1)
						return nil
					}
					outMu.Lock()
					fmt.Fprintln(cmd.OutOrStdout(), job.output)
					outMu.Unlock()
					return nil
				})
			}
			_ = g.Wait()

			n := failed.Load()
			runLog.WithFields(logrus.Fields{
				"solved":  int64(len(jobs)) - n,
				"failed":  n,
				"skipped": len(skipped),
			}).Info("batch finished")
			if n > 0 {
				return a.finish(fmt.Errorf("%d of %d mazes failed", n, len(jobs)))
			}
			return a.finish(nil)
		},
	}
	a.image.register(cmd)
	cmd.Flags().IntVar(&a.jobs, "jobs", 4, "Maximum concurrent solves (1-64)")
	return cmd
}
