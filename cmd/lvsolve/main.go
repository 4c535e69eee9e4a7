// SPDX-License-Identifier: MIT

// Command lvsolve runs the LU(sq) factorization and pivoted Gaussian
// elimination over a catalog of linear systems and prints results together
// with operation counts.
//
// Usage:
//
//	lvsolve -mode list -catalog cases.yaml
//	lvsolve -mode run  -catalog cases.yaml [-case NAME] [-method cholesky|gauss|both]
//	lvsolve -mode show -catalog cases.yaml -case NAME
//	lvsolve -mode hilbert -sizes 2,4,6,8,10,12
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsolve/catalog"
	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/solver"
)

type config struct {
	catalogPath   string
	caseName      string
	method        string
	sizes         []int
	pivotTol      float64
	symmetryCheck bool
	npyOut        string
}

const defaultSizes = "2,3,4,5,6,8,10,12"

// defaultConfig holds the flag defaults. LU(sq) only reads the upper
// triangle, so the symmetry check is on unless -symmetry-check=false.
func defaultConfig() config {
	return config{
		catalogPath:   "catalog.yaml",
		method:        "both",
		pivotTol:      solver.DefaultPivotTolerance,
		symmetryCheck: true,
	}
}

func (c config) solverOptions() []solver.Option {
	opts := []solver.Option{solver.WithPivotTolerance(c.pivotTol)}
	if c.symmetryCheck {
		opts = append(opts, solver.WithSymmetryCheck(matrix.DefaultEpsilon))
	}

	return opts
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvsolve: ")

	defaults := defaultConfig()
	runMode := flag.String("mode", "run", "one of 'list', 'run', 'show' or 'hilbert'")
	catalogPath := flag.String("catalog", defaults.catalogPath, "catalog of test cases (YAML or JSON)")
	caseName := flag.String("case", "", "case to run or show; empty runs every case")
	method := flag.String("method", defaults.method, "'cholesky', 'gauss' or 'both'")
	sizes := flag.String("sizes", defaultSizes, "comma-separated Hilbert orders for -mode hilbert")
	pivotTol := flag.Float64("pivot-tol", defaults.pivotTol, "pivot magnitude below which elimination fails")
	symCheck := flag.Bool("symmetry-check", defaults.symmetryCheck, "reject non-symmetric input before LU(sq)")
	npyOut := flag.String("npy", "", "directory to store solutions as .npy files")
	flag.Parse()

	if *pivotTol < 0 {
		log.Fatalf("-pivot-tol must be non-negative, got %g", *pivotTol)
	}
	orders, err := parseSizes(*sizes)
	if err != nil {
		log.Fatal(err)
	}
	cfg := config{
		catalogPath:   *catalogPath,
		caseName:      *caseName,
		method:        *method,
		sizes:         orders,
		pivotTol:      *pivotTol,
		symmetryCheck: *symCheck,
		npyOut:        *npyOut,
	}

	modes := map[string]func(config) error{
		"list":    list,
		"run":     run,
		"show":    show,
		"hilbert": hilbert,
	}
	fn, ok := modes[*runMode]
	if !ok {
		log.Fatalf("unknown mode %q", *runMode)
	}
	if err = fn(cfg); err != nil {
		log.Fatal(err)
	}
}

func list(cfg config) error {
	c, err := catalog.LoadFile(cfg.catalogPath)
	if err != nil {
		return err
	}

	return listCases(os.Stdout, c)
}

func run(cfg config) error {
	c, err := catalog.LoadFile(cfg.catalogPath)
	if err != nil {
		return err
	}
	names := c.Names()
	if cfg.caseName != "" {
		names = []string{cfg.caseName}
	}

	for _, name := range names {
		p, err := c.Load(name)
		if err != nil {
			return err
		}
		log.Printf("running %s (n=%d, method %s)", p.Name, p.Dim(), cfg.method)
		if err = runProblem(os.Stdout, p, cfg); err != nil {
			return err
		}
	}

	return nil
}

func show(cfg config) error {
	if cfg.caseName == "" {
		return errNoCase
	}
	c, err := catalog.LoadFile(cfg.catalogPath)
	if err != nil {
		return err
	}
	p, err := c.Load(cfg.caseName)
	if err != nil {
		return err
	}

	return showProblem(os.Stdout, p)
}

func hilbert(cfg config) error {
	return hilbertSweep(os.Stdout, cfg.sizes, cfg.solverOptions())
}

// parseSizes turns "2,4,8" into []int{2,4,8}.
func parseSizes(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return nil, &sizeError{field: f}
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, &sizeError{field: s}
	}

	return out, nil
}
