// Package main provides the ndarray CLI for exploring strided views.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/tensor"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Fprintln(os.Stderr, "ndarray - strided N-D arrays for Go")
	fmt.Fprintf(os.Stderr, "Version: %s\n\n", version)
	fmt.Fprintln(os.Stderr, "Usage: ndarray [flags] <command> [args]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  version              Show version")
	fmt.Fprintln(os.Stderr, "  index <shape> <expr> Index arange(shape), e.g. index 3,4 \"1:, ::-2\"")
	fmt.Fprintln(os.Stderr, "  demo                 Print a few example arrays")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ndarray: ")

	workers := flag.Int("workers", 0, "worker goroutines for element-wise kernels (0 = GOMAXPROCS)")
	precision := flag.Int("precision", tensor.DefaultConfig().PrintPrecision, "digits printed for floating point values")
	serial := flag.Bool("serial", false, "disable parallel kernels")
	flag.Usage = usage
	flag.Parse()

	cfg := tensor.DefaultConfig()
	if *workers > 0 {
		cfg.Parallel.NumWorkers = *workers
		cfg.Parallel.Enabled = *workers > 1
	}
	if *serial {
		cfg.Parallel.Enabled = false
	}
	cfg.PrintPrecision = *precision
	tensor.SetConfig(cfg)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "index":
		if len(args) != 3 {
			log.Fatal("index needs a shape and an expression")
		}
		err = runIndex(args[1], args[2])
	case "demo":
		err = runDemo()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseShape(s string) (tensor.Shape, error) {
	var shape tensor.Shape
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad shape %q: %w", s, err)
		}
		shape = append(shape, n)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func runIndex(shapeArg, expr string) error {
	shape, err := parseShape(shapeArg)
	if err != nil {
		return err
	}
	base, err := tensor.Arange(0, shape.NumElements(), 1)
	if err != nil {
		return err
	}
	a, err := base.Reshape(shape...)
	if err != nil {
		return err
	}
	terms, err := tensor.ParseIndex(expr)
	if err != nil {
		return err
	}
	out, err := a.Get(terms...)
	if err != nil {
		return err
	}

	fmt.Println(a.Describe())
	fmt.Println()
	fmt.Printf("a[%s]\n", expr)
	fmt.Println(out.Describe())
	fmt.Printf("view: %t\n", tensor.SharesMemory(a, out))
	return nil
}

func runDemo() error {
	x, err := tensor.Linspace(0.0, 1.0, 5)
	if err != nil {
		return err
	}
	fmt.Printf("linspace(0, 1, 5)\n%s\n\n", x)

	xs, err := tensor.Arange(0, 3, 1)
	if err != nil {
		return err
	}
	ys, err := tensor.Arange(0, 2, 1)
	if err != nil {
		return err
	}
	grids, err := tensor.Meshgrid([]*tensor.Array{xs, ys})
	if err != nil {
		return err
	}
	sum, err := tensor.Add(grids[0], grids[1])
	if err != nil {
		return err
	}
	fmt.Printf("meshgrid(arange(3), arange(2)) sum\n%s\n\n", sum)

	mask, err := tensor.Greater(sum, tensor.FromScalar(1))
	if err != nil {
		return err
	}
	picked, err := sum.Get(tensor.Idx(mask))
	if err != nil {
		return err
	}
	fmt.Printf("values > 1\n%s\n\n", picked)

	r, err := tensor.Unique(sum, tensor.UniqueOptions{ReturnCounts: true})
	if err != nil {
		return err
	}
	defer r.Release()
	fmt.Printf("unique\n%s\ncounts\n%s\n", r.Values, r.Counts)
	return nil
}
