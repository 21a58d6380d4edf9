package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-spectrograph/dsp/spectrograph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (a *app) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [file|-]",
		Short: "Print the log power spectrum of every frame of a raw PCM stream",
		Long: `Read mono little-endian PCM from a file (or stdin when the file is
omitted or "-"), split it into frames of frame-length samples every hop
samples, drop the partial tail and print one spectrum per frame.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			samples, err := decodePCM(data, a.cfg.Encoding)
			if err != nil {
				return err
			}

			frames := splitFrames(samples, a.cfg.FrameLength, a.cfg.Hop)
			if len(frames) == 0 {
				return fmt.Errorf("input has %d samples, need at least %d for one frame", len(samples), a.cfg.FrameLength)
			}

			rows, backend, err := a.transformFrames(cmd.Context(), frames)
			if err != nil {
				return err
			}

			rep, err := buildReport(a.cfg, backend, rows)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), a.cfg.Output, rep)
		},
	}

	cmd.Flags().String("encoding", defaultEncoding, "input sample encoding (s16le, f32le)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// transformFrames fans frames out to workers, each holding its own
// spectrograph instance from a shared pool.
func (a *app) transformFrames(ctx context.Context, frames [][]float32) ([][]float32, string, error) {
	opts, err := a.cfg.spectrographOptions(a.log)
	if err != nil {
		return nil, "", err
	}

	pool, err := spectrograph.NewPool(opts...)
	if err != nil {
		return nil, "", err
	}

	probe, err := pool.Get()
	if err != nil {
		return nil, "", err
	}
	backend := probe.Backend()
	bins := probe.Bins()
	pool.Put(probe)

	workers := min(a.cfg.Workers, len(frames))
	a.log.Info("transforming frames",
		zap.Int("frames", len(frames)),
		zap.Int("frame_length", a.cfg.FrameLength),
		zap.Int("hop", a.cfg.Hop),
		zap.Int("workers", workers),
		zap.String("backend", backend),
	)

	rows := make([][]float32, len(frames))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range frames {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			s, err := pool.Get()
			if err != nil {
				return err
			}
			defer pool.Put(s)

			for i := range jobs {
				row := make([]float32, bins)
				if err := s.Transform(row, frames[i]); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
				rows[i] = row
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, "", err
	}
	return rows, backend, nil
}
