package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CSV writes plots and animations as comma-separated tables under Dir:
//
//	<Name>_snapshots.csv — column x followed by one column per snapshot
//	<Name>_frames.csv    — one row per frame: step, t, ψ at every x
type CSV struct {
	Dir  string
	Name string
}

var _ Renderer = (*CSV)(nil)

// SnapshotsPath returns the file written by RenderPlot.
func (c *CSV) SnapshotsPath() string { return filepath.Join(c.Dir, c.Name+"_snapshots.csv") }

// FramesPath returns the file written by RenderAnimation.
func (c *CSV) FramesPath() string { return filepath.Join(c.Dir, c.Name+"_frames.csv") }

// RenderPlot implements Renderer.
func (c *CSV) RenderPlot(p Plot) error {
	return c.write(c.SnapshotsPath(), func(w *csv.Writer) error {
		header := make([]string, 0, len(p.Series)+1)
		header = append(header, "x")
		for _, s := range p.Series {
			header = append(header, s.Legend)
		}
		if err := w.Write(header); err != nil {
			return err
		}

		record := make([]string, len(header))
		for i, x := range p.X {
			record[0] = formatFloat(x)
			for k, s := range p.Series {
				record[k+1] = formatFloat(s.Values[i])
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// RenderAnimation implements Renderer.
func (c *CSV) RenderAnimation(a Animation) error {
	return c.write(c.FramesPath(), func(w *csv.Writer) error {
		header := make([]string, 0, len(a.X)+2)
		header = append(header, "step", "t")
		for _, x := range a.X {
			header = append(header, "x="+formatFloat(x))
		}
		if err := w.Write(header); err != nil {
			return err
		}

		record := make([]string, len(header))
		return a.Frames(func(n int, values []float64) error {
			record[0] = strconv.Itoa(n)
			record[1] = formatFloat(float64(n) * a.Dt)
			for i, v := range values {
				record[i+2] = formatFloat(v)
			}
			return w.Write(record)
		})
	})
}

func (c *CSV) write(path string, body func(w *csv.Writer) error) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: closing %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err = body(w); err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	w.Flush()

	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
