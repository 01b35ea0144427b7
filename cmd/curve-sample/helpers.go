package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-curves"
)

// TrajectoryFile describes a piecewise-polynomial trajectory: an ordered
// list of segments, each with boundary conditions at its endpoints.
type TrajectoryFile struct {
	// Name identifies the trajectory in the CSV header comment.
	Name string `yaml:"name"`

	// Step is the sampling interval in time units. Optional; the -step
	// flag or the default applies when zero.
	Step float64 `yaml:"step"`

	// Segments are built in order; each becomes one polynomial curve.
	Segments []SegmentSpec `yaml:"segments"`
}

// SegmentSpec describes one polynomial segment via its boundary conditions.
type SegmentSpec struct {
	// Start and End bound the segment's time range.
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`

	// Continuity selects the fit: 0 connects positions only (degree 1),
	// 1 also matches velocities (degree 3), 2 also matches accelerations
	// (degree 5).
	Continuity int `yaml:"continuity"`

	From EndpointSpec `yaml:"from"`
	To   EndpointSpec `yaml:"to"`
}

// EndpointSpec holds the boundary values at one end of a segment. Velocity
// and acceleration may be omitted when the continuity level does not use
// them.
type EndpointSpec struct {
	Position     []float64 `yaml:"position"`
	Velocity     []float64 `yaml:"velocity"`
	Acceleration []float64 `yaml:"acceleration"`
}

// loadTrajectory reads and parses a trajectory description file.
func loadTrajectory(path string) (*TrajectoryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trajectory file: %w", err)
	}
	return parseTrajectory(data)
}

// parseTrajectory parses and validates a YAML trajectory description.
func parseTrajectory(data []byte) (*TrajectoryFile, error) {
	var tf TrajectoryFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing trajectory file: %w", err)
	}

	if len(tf.Segments) == 0 {
		return nil, fmt.Errorf("trajectory has no segments")
	}
	if tf.Step < 0 {
		return nil, fmt.Errorf("step must not be negative, got %v", tf.Step)
	}
	for i, seg := range tf.Segments {
		if seg.End <= seg.Start {
			return nil, fmt.Errorf("segment %d: end %v must exceed start %v", i, seg.End, seg.Start)
		}
		if seg.Continuity < 0 || seg.Continuity > maxContinuity {
			return nil, fmt.Errorf("segment %d: continuity must be 0-%d, got %d", i, maxContinuity, seg.Continuity)
		}
		if len(seg.From.Position) == 0 || len(seg.To.Position) == 0 {
			return nil, fmt.Errorf("segment %d: both endpoints need a position", i)
		}
	}
	return &tf, nil
}

// buildSegments builds every segment of a trajectory in order.
func buildSegments(tf *TrajectoryFile) ([]*curves.Polynomial, error) {
	segments := make([]*curves.Polynomial, 0, len(tf.Segments))
	for i, spec := range tf.Segments {
		seg, err := buildSegment(spec)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// buildSegment turns one segment spec into a polynomial curve of the
// requested continuity level.
func buildSegment(seg SegmentSpec) (*curves.Polynomial, error) {
	dim := len(seg.From.Position)

	// Omitted derivative boundary values default to zero, the common
	// rest-to-rest case.
	fromVel := orZero(seg.From.Velocity, dim)
	toVel := orZero(seg.To.Velocity, dim)
	fromAcc := orZero(seg.From.Acceleration, dim)
	toAcc := orZero(seg.To.Acceleration, dim)

	switch seg.Continuity {
	case 0:
		return curves.NewLinearFit(seg.From.Position, seg.To.Position, seg.Start, seg.End)
	case 1:
		return curves.NewCubicFit(seg.From.Position, fromVel, seg.To.Position, toVel, seg.Start, seg.End)
	case 2:
		return curves.NewQuinticFit(seg.From.Position, fromVel, fromAcc, seg.To.Position, toVel, toAcc, seg.Start, seg.End)
	default:
		return nil, fmt.Errorf("unsupported continuity level %d", seg.Continuity)
	}
}

// orZero returns v, or a zero vector of length dim when v is empty.
func orZero(v []float64, dim int) []float64 {
	if len(v) > 0 {
		return v
	}
	return make([]float64, dim)
}

// writeSamples samples each segment at the given step and writes CSV rows of
// time, position, velocity, and acceleration columns.
func writeSamples(w io.Writer, name string, segments []*curves.Polynomial, step float64) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments to sample")
	}
	dim := segments[0].Dim()

	if name != "" {
		if _, err := fmt.Fprintf(w, "# trajectory: %s\n", name); err != nil {
			return err
		}
	}
	if err := writeHeader(w, dim); err != nil {
		return err
	}

	for i, seg := range segments {
		if seg.Dim() != dim {
			return fmt.Errorf("segment %d has dimension %d, want %d", i, seg.Dim(), dim)
		}
		for t := seg.TMin(); t <= seg.TMax()+step/2; t += step {
			if t > seg.TMax() {
				t = seg.TMax()
			}
			if err := writeRow(w, seg, t); err != nil {
				return fmt.Errorf("segment %d at t=%v: %w", i, t, err)
			}
			if t == seg.TMax() {
				break
			}
		}
	}
	return nil
}

// writeHeader writes the CSV column names for a dim-dimensional trajectory.
func writeHeader(w io.Writer, dim int) error {
	cols := []string{"t"}
	for _, prefix := range []string{"pos", "vel", "acc"} {
		for d := 0; d < dim; d++ {
			cols = append(cols, prefix+strconv.Itoa(d))
		}
	}
	return writeCSVLine(w, cols)
}

// writeRow samples position, velocity, and acceleration at time t and writes
// one CSV row.
func writeRow(w io.Writer, seg *curves.Polynomial, t float64) error {
	cols := []string{formatFloat(t)}
	for order := 0; order <= 2; order++ {
		pt, err := seg.Derivative(t, order)
		if err != nil {
			return err
		}
		for _, v := range pt {
			cols = append(cols, formatFloat(v))
		}
	}
	return writeCSVLine(w, cols)
}

func writeCSVLine(w io.Writer, cols []string) error {
	for i, col := range cols {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, col); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', floatPrecision, 64)
}
