// Command solve solves linear and quadratic equations and prints their
// solutions in symbolic form.
//
// Usage:
//
//	solve [-plot file] [-chart file] [coefficient ...]
//
// Coefficients are given lowest order first, so "solve 2 3 1" solves
// x² + 3x + 2 = 0. Without coefficients, two examples are shown.
//
// The -plot flag writes a graph of the polynomial; its format is taken from
// the file extension (svg, png, pdf, ...). The -chart flag writes an
// interactive HTML chart.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/solve"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("solve: ")

	plotFile := flag.String("plot", "", "write a graph of the polynomial to `file`")
	chartFile := flag.String("chart", "", "write an HTML chart of the polynomial to `file`")
	flag.Parse()

	if flag.NArg() == 0 {
		if err := demo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	coeffs, err := parseCoefficients(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, coeffs); err != nil {
		log.Fatal(err)
	}
	if *plotFile != "" {
		format := strings.TrimPrefix(filepath.Ext(*plotFile), ".")
		if err := writeFile(*plotFile, func(w io.Writer) error {
			return solve.WritePlot(w, coeffs, format)
		}); err != nil {
			log.Fatal(err)
		}
	}
	if *chartFile != "" {
		if err := writeFile(*chartFile, func(w io.Writer) error {
			return solve.WriteChart(w, coeffs)
		}); err != nil {
			log.Fatal(err)
		}
	}
}

func parseCoefficients(args []string) (solve.Poly, error) {
	coeffs := make(solve.Poly, len(args))
	for i, arg := range args {
		c, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// demo solves two sample equations, one linear and one quadratic with
// complex roots.
func demo(w io.Writer) error {
	s := &solve.Solver{Out: w}
	x, err := s.SolveLinear([]float64{5, 3})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "x = %s\n\n", x)

	roots, err := s.SolveQuadratic([]float64{2, 2, 1})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Roots:")
	for _, root := range roots {
		fmt.Fprintln(w, root.Factor())
	}
	fmt.Fprintln(w)
	return nil
}

func run(w io.Writer, coeffs solve.Poly) error {
	s := &solve.Solver{Out: w}
	switch len(coeffs) {
	case 2:
		x, err := s.SolveLinear(coeffs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "x = %s\n", x)
	case 3:
		roots, err := s.SolveQuadratic(coeffs)
		if err != nil {
			return err
		}
		for _, root := range roots {
			fmt.Fprintf(w, "x = %s\n  = %s\n", root, root.Eval())
		}
		fmt.Fprintf(w, "%s\n", solve.Factors(roots[:]...))
	default:
		return fmt.Errorf("need 2 or 3 coefficients, got %d", len(coeffs))
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
