// This file is part of ipp-proj.

// Package ippcode23 ties the loader and machine packages together into the
// single entry point used by cmd/ippcode23 and by tests: parse an XML
// program, run it, and report the numeric exit code the IPPcode23 error
// taxonomy assigns to whatever happened.
package ippcode23

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/youruncle1/ipp-proj/loader"
	"github.com/youruncle1/ipp-proj/machine"
)

// Run decodes source as an IPPcode23 XML program and executes it. READ
// consumes lines from inputFile (the --input file, if any) first, then
// falls back to stdin once inputFile is exhausted or nil, matching the
// source order required by spec §6. Program output/diagnostics are written
// to stdout/stderr. It returns the process exit code the run ended with: the
// operand of EXIT, 0 on falling off the end of the program, 31 on malformed
// XML, 32/52 on a load-time error, or one of the 52-58 runtime codes.
func Run(source, inputFile, stdin io.Reader, stdout, stderr io.Writer) int {
	data, err := io.ReadAll(source)
	if err != nil {
		err = errors.Wrap(err, "cannot read source")
		fmt.Fprintf(stderr, "error 31: %s\n", err)
		return 31
	}

	var root loader.XMLProgram
	if err := xml.Unmarshal(data, &root); err != nil {
		err = errors.Wrap(err, "malformed XML")
		fmt.Fprintf(stderr, "error 31: %s\n", err)
		return 31
	}

	image, labels, err := loader.Load(&root)
	if err != nil {
		le, ok := err.(*loader.Error)
		if !ok {
			fmt.Fprintf(stderr, "error 32: %s\n", err)
			return 32
		}
		fmt.Fprintln(stderr, le.Error())
		return le.Code
	}

	m := machine.New(image, labels,
		machine.WithInput(inputFile),
		machine.WithStdin(stdin),
		machine.WithStdout(stdout),
		machine.WithStderr(stderr),
	)

	code, err := m.Run()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
	}
	return code
}
