package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeway/gridgraph"
	"github.com/katalvlaran/mazeway/raster"
	"github.com/katalvlaran/mazeway/solver"
)

// maze is a decoded input image with its grid and chosen gates.
type maze struct {
	img        image.Image
	grid       *gridgraph.Grid
	gates      []gridgraph.Coordinate
	start, end gridgraph.Coordinate
}

// readGrid decodes input and thresholds it into a passability grid.
func readGrid(input string, threshold uint8) (image.Image, *gridgraph.Grid, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	img, _, err := raster.Decode(f)
	if err != nil {
		return nil, nil, err
	}
	grid, err := raster.Threshold(img, threshold)
	if err != nil {
		return nil, nil, err
	}
	return img, grid, nil
}

// loadMaze reads input and picks its gates.
func loadMaze(input string, threshold uint8) (*maze, error) {
	img, grid, err := readGrid(input, threshold)
	if err != nil {
		return nil, err
	}
	m := &maze{img: img, grid: grid, gates: raster.FindGates(grid)}
	m.start, m.end, err = raster.PickGates(m.gates)
	if err != nil {
		return nil, fmt.Errorf("%w: found %d", err, len(m.gates))
	}
	return m, nil
}

// solveFile runs the whole pipeline for one maze image and records metrics.
func (a *app) solveFile(ctx context.Context, log *logrus.Entry, input, output string, pathColor color.Color) (*solver.Result, error) {
	began := time.Now()
	res, err := a.solveImage(ctx, log, input, output, pathColor)
	elapsed := time.Since(began)
	a.metrics.Observe(res, err, elapsed)

	if err != nil {
		log.WithError(err).WithField("duration", elapsed).Error("maze not solved")
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"output":   output,
		"explored": res.Explored,
		"passable": res.Passable,
		"path_len": len(res.Path),
		"duration": elapsed,
	}).Info("maze solved")
	return res, nil
}

func (a *app) solveImage(ctx context.Context, log *logrus.Entry, input, output string, pathColor color.Color) (*solver.Result, error) {
	m, err := loadMaze(input, a.cfg.Threshold)
	if err != nil {
		return nil, err
	}
	log = log.WithFields(logrus.Fields{
		"width":  m.grid.Width(),
		"height": m.grid.Height(),
		"start":  m.start.String(),
		"end":    m.end.String(),
	})
	if len(m.gates) > 2 {
		log.WithField("gates", len(m.gates)).Warn("more than two border openings, using the first and last")
	}
	log.Debug("maze loaded")

	res, err := solver.SolveContext(ctx, m.grid, m.start, m.end)
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			if d, derr := solver.Diagnose(m.grid, m.start, m.end); derr == nil {
				log.WithField("regions", d.Components).Debug(d.String())
			}
		}
		return nil, err
	}

	if err := writePNG(output, raster.DrawPath(m.img, res.Path, pathColor)); err != nil {
		return nil, err
	}
	return res, nil
}

// writePNG encodes img into a new file at path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return raster.Encode(f, img)
}
