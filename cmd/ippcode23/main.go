// This file is part of ipp-proj.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/youruncle1/ipp-proj/ippcode23"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ippcode23 --source=file [--input=file]")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		sourceName string
		inputName  string
		help       bool
	)
	flag.StringVar(&sourceName, "source", "", "`file` containing the IPPcode23 XML program")
	flag.StringVar(&inputName, "input", "", "`file` supplying input for READ (defaults to stdin)")
	flag.BoolVar(&help, "help", false, "print usage and exit")
	flag.Parse()

	if help {
		if sourceName != "" || inputName != "" || flag.NArg() > 0 {
			usage()
			return 10
		}
		usage()
		return 0
	}

	if sourceName == "" && inputName == "" {
		usage()
		return 10
	}

	source := os.Stdin
	if sourceName != "" {
		f, err := os.Open(sourceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error 11: %s\n", errors.Wrap(err, "cannot open source file"))
			return 11
		}
		defer f.Close()
		source = f
	}

	var inputFile io.Reader
	if inputName != "" {
		f, err := os.Open(inputName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error 11: %s\n", errors.Wrap(err, "cannot open input file"))
			return 11
		}
		defer f.Close()
		inputFile = f
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	return ippcode23.Run(source, inputFile, os.Stdin, stdout, os.Stderr)
}
