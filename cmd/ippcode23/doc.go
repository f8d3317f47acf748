// This file is part of ipp-proj.

// Command ippcode23 interprets an IPPcode23 XML program.
//
// Usage:
//
//	ippcode23 --source=file [--input=file]
//	ippcode23 --help
//
//	--source file
//		file containing the IPPcode23 XML program (required unless
//		--input is given and the program itself is piped on stdin)
//	--input file
//		file supplying input lines for READ; once exhausted, READ
//		falls back to stdin
//	--help
//		print this usage text and exit 0; may not be combined with
//		any other flag or argument
//
// At least one of --source or --input must be supplied. Exit codes follow
// the IPPcode23 error taxonomy: 0 normal, 10 bad CLI usage, 11 file open
// failure, 31 malformed XML, 32 bad XML structure, 52-58 load/runtime
// errors — see package ippcode23 and package machine for the full table.
package main
