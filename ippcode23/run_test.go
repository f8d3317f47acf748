// This file is part of ipp-proj.

package ippcode23_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/youruncle1/ipp-proj/ippcode23"
)

func runProgram(t *testing.T, src, input string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errb bytes.Buffer
	code = ippcode23.Run(strings.NewReader(src), strings.NewReader(input), strings.NewReader(""), &out, &errb)
	return out.String(), errb.String(), code
}

// S1: Hello World.
func TestHelloWorld(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="string">Hello, world!</arg1>
  </instruction>
</program>`
	out, _, code := runProgram(t, src, "")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "Hello, world!" {
		t.Fatalf("stdout = %q", out)
	}
}

// S2: arithmetic with an octal literal.
func TestArithmeticOctal(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">010</arg2>
  </instruction>
  <instruction order="3" opcode="DEFVAR"><arg1 type="var">GF@y</arg1></instruction>
  <instruction order="4" opcode="ADD">
    <arg1 type="var">GF@y</arg1>
    <arg2 type="var">GF@x</arg2>
    <arg3 type="int">2</arg3>
  </instruction>
  <instruction order="5" opcode="WRITE"><arg1 type="var">GF@y</arg1></instruction>
</program>`
	out, _, code := runProgram(t, src, "")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "10" {
		t.Fatalf("stdout = %q, want %q (octal 010 + 2 = 10)", out, "10")
	}
}

// S3: division by zero reports code 57.
func TestIdivByZero(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@z</arg1></instruction>
  <instruction order="2" opcode="IDIV">
    <arg1 type="var">GF@z</arg1>
    <arg2 type="int">5</arg2>
    <arg3 type="int">0</arg3>
  </instruction>
</program>`
	_, stderr, code := runProgram(t, src, "")
	if code != 57 {
		t.Fatalf("exit code = %d, want 57; stderr=%s", code, stderr)
	}
}

// S4: frame discipline — POPFRAME with no pushed frame is error 55.
func TestFrameDiscipline(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="POPFRAME"></instruction>
</program>`
	_, _, code := runProgram(t, src, "")
	if code != 55 {
		t.Fatalf("exit code = %d, want 55", code)
	}
}

// S5: CALL/RETURN return to the instruction following CALL.
func TestCallReturn(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="CALL"><arg1 type="label">sub</arg1></instruction>
  <instruction order="2" opcode="WRITE"><arg1 type="string">back</arg1></instruction>
  <instruction order="3" opcode="JUMP"><arg1 type="label">end</arg1></instruction>
  <instruction order="4" opcode="LABEL"><arg1 type="label">sub</arg1></instruction>
  <instruction order="5" opcode="WRITE"><arg1 type="string">sub</arg1></instruction>
  <instruction order="6" opcode="RETURN"></instruction>
  <instruction order="7" opcode="LABEL"><arg1 type="label">end</arg1></instruction>
</program>`
	out, _, code := runProgram(t, src, "")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "subback" {
		t.Fatalf("stdout = %q, want %q", out, "subback")
	}
}

// S6: TYPE on an uninitialised variable yields the empty string.
func TestTypeUninitialised(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="DEFVAR"><arg1 type="var">GF@t</arg1></instruction>
  <instruction order="3" opcode="TYPE">
    <arg1 type="var">GF@t</arg1>
    <arg2 type="var">GF@x</arg2>
  </instruction>
  <instruction order="4" opcode="WRITE"><arg1 type="var">GF@t</arg1></instruction>
</program>`
	out, _, code := runProgram(t, src, "")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "" {
		t.Fatalf("stdout = %q, want empty", out)
	}
}

func TestMalformedXML(t *testing.T) {
	_, _, code := runProgram(t, "<program language=\"IPPcode23\">", "")
	if code != 31 {
		t.Fatalf("exit code = %d, want 31", code)
	}
}

func TestWrongLanguageHeader(t *testing.T) {
	src := `<program language="NotIPP"></program>`
	_, _, code := runProgram(t, src, "")
	if code != 32 {
		t.Fatalf("exit code = %d, want 32", code)
	}
}

func TestReadFromInput(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="READ">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="type">int</arg2>
  </instruction>
  <instruction order="3" opcode="WRITE"><arg1 type="var">GF@x</arg1></instruction>
</program>`
	out, _, code := runProgram(t, src, "42\n")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "42" {
		t.Fatalf("stdout = %q, want %q", out, "42")
	}
}

func TestExitCode(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="EXIT"><arg1 type="int">9</arg1></instruction>
</program>`
	_, _, code := runProgram(t, src, "")
	if code != 9 {
		t.Fatalf("exit code = %d, want 9", code)
	}
}

// runFile drives Run() against a testdata program the way a user-supplied
// --source file would be read.
func runFile(t *testing.T, path string) (stdout, stderr string, code int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	var out, errb bytes.Buffer
	code = ippcode23.Run(f, nil, strings.NewReader(""), &out, &errb)
	return out.String(), errb.String(), code
}

func TestTestdataHello(t *testing.T) {
	out, _, code := runFile(t, "../testdata/hello.src.xml")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "Hello" {
		t.Fatalf("stdout = %q, want %q", out, "Hello")
	}
}

// Exercises label resolution and the CALL/RETURN PC bookkeeping with gaps
// between orders: orders 10..70 appear in ascending order in the XML, so
// instruction indices and order values differ.
func TestTestdataCallReturn(t *testing.T) {
	out, _, code := runFile(t, "../testdata/callreturn.src.xml")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "hi!" {
		t.Fatalf("stdout = %q, want %q", out, "hi!")
	}
}
