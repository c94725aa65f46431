// Package main provides vecdump, a small inspection tool for serialized
// vectors. It reads a vector in binary or text form (optionally
// gzip-compressed) and prints its dimension, norms, extrema and
// log-partition value.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/murmel-speech/murmel/vec"
)

func main() {
	var (
		text      = flag.Bool("text", false, "read the input as text instead of binary")
		elems     = flag.Bool("elems", false, "also print the elements")
		reference = flag.Bool("reference", false, "use the reference kernels instead of the accelerated backend")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vecdump [flags] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Reads a serialized vector and prints summary statistics.\n")
		fmt.Fprintf(os.Stderr, "A path ending in .gz is decompressed transparently.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *reference {
		vec.Use(vec.Reference)
	}

	if err := run(flag.Arg(0), !*text, *elems); err != nil {
		fmt.Fprintf(os.Stderr, "vecdump: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, binary, elems bool) error {
	f, err := vec.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var v vec.Vector[float64]
	if err := v.Read(vec.NewReader(f, binary), false); err != nil {
		return err
	}

	fmt.Printf("dim:  %d\n", v.Dim())
	if v.Dim() == 0 {
		return nil
	}

	norm1, err := v.Norm(1)
	if err != nil {
		return err
	}
	norm2, err := v.Norm(2)
	if err != nil {
		return err
	}
	maxVal, maxIdx, err := v.MaxIndex()
	if err != nil {
		return err
	}
	minVal, minIdx, err := v.MinIndex()
	if err != nil {
		return err
	}

	fmt.Printf("sum:  %g\n", v.Sum())
	fmt.Printf("l1:   %g\n", norm1)
	fmt.Printf("l2:   %g\n", norm2)
	fmt.Printf("max:  %g at %d\n", maxVal, maxIdx)
	fmt.Printf("min:  %g at %d\n", minVal, minIdx)
	fmt.Printf("lse:  %g\n", v.LogSumExp(0))

	if elems {
		for i := 0; i < v.Dim(); i++ {
			fmt.Printf("%d\t%g\n", i, v.At(i))
		}
	}
	return nil
}
