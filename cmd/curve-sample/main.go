// Command curve-sample builds a piecewise-polynomial trajectory from a YAML
// description and writes sampled position, velocity, and acceleration values
// as CSV.
//
// Usage:
//
//	curve-sample trajectory.yaml                  # CSV to stdout
//	curve-sample -step 0.05 trajectory.yaml out.csv
//
// Each segment in the description is fit from its boundary conditions at the
// requested continuity level: 0 (positions only), 1 (positions and
// velocities), or 2 (positions, velocities, and accelerations).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
)

const (
	// defaultStep is the sampling interval in time units when neither the
	// file nor the -step flag provides one.
	defaultStep = 0.01

	// maxContinuity is the highest supported continuity level (C2).
	maxContinuity = 2

	// floatPrecision is the number of significant digits in CSV output.
	floatPrecision = 9

	minRequiredArgs = 1
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("curve-sample: ")

	step := flag.Float64("step", 0, "sampling interval in time units (overrides the file's value)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < minRequiredArgs {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), *step); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath string, stepFlag float64) error {
	tf, err := loadTrajectory(inPath)
	if err != nil {
		return err
	}

	step := tf.Step
	if stepFlag > 0 {
		step = stepFlag
	}
	if step <= 0 {
		step = defaultStep
	}

	built, err := buildSegments(tf)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := writeSamples(w, tf.Name, built, step); err != nil {
		return err
	}
	return w.Flush()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: curve-sample [-step interval] trajectory.yaml [output.csv]\n\n")
	flag.PrintDefaults()
}
