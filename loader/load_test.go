// This file is part of ipp-proj.

package loader_test

import (
	"encoding/xml"
	"testing"

	"github.com/youruncle1/ipp-proj/loader"
	"github.com/youruncle1/ipp-proj/machine"
)

func loadCode(t *testing.T, src string) ([]machine.Instruction, map[string]int, error) {
	t.Helper()
	var root loader.XMLProgram
	if err := xml.Unmarshal([]byte(src), &root); err != nil {
		t.Fatalf("xml.Unmarshal: %v", err)
	}
	return loader.Load(&root)
}

func TestLoadSortsByOrder(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="3" opcode="WRITE"><arg1 type="string">c</arg1></instruction>
  <instruction order="1" opcode="WRITE"><arg1 type="string">a</arg1></instruction>
  <instruction order="2" opcode="WRITE"><arg1 type="string">b</arg1></instruction>
</program>`
	instrs, _, err := loadCode(t, src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if instrs[i].Args[0].Lexeme != w {
			t.Fatalf("instrs[%d] = %q, want %q", i, instrs[i].Args[0].Lexeme, w)
		}
	}
}

func TestLoadBuildsLabelIndexOverSortedOrder(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="20" opcode="LABEL"><arg1 type="label">end</arg1></instruction>
  <instruction order="10" opcode="JUMP"><arg1 type="label">end</arg1></instruction>
</program>`
	instrs, labels, err := loadCode(t, src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	idx, ok := labels["end"]
	if !ok {
		t.Fatal("label \"end\" not indexed")
	}
	if instrs[idx].Opcode != machine.OpLabel {
		t.Fatalf("labels[\"end\"] = %d, not the LABEL instruction", idx)
	}
}

func TestLoadRejectsUnknownOpcode(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="FROB"></instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}

func TestLoadRejectsWrongArity(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="string">a</arg1>
    <arg2 type="string">b</arg2>
  </instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}

func TestLoadRejectsDuplicateArgTag(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="string">a</arg1>
    <arg1 type="string">b</arg1>
  </instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}

func TestLoadRejectsForeignArgTag(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <argX type="string">a</argX>
  </instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}

func TestLoadRejectsDuplicateOrder(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE"><arg1 type="string">a</arg1></instruction>
  <instruction order="1" opcode="WRITE"><arg1 type="string">b</arg1></instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}

func TestLoadRejectsDuplicateLabel(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="LABEL"><arg1 type="label">x</arg1></instruction>
  <instruction order="2" opcode="LABEL"><arg1 type="label">x</arg1></instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 52 {
		t.Fatalf("err = %v, want *loader.Error code 52", err)
	}
}

func TestLoadRejectsBadHeader(t *testing.T) {
	src := `<program language="CPP"></program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}

func TestLoadRejectsInvalidArgLexeme(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">not-a-frame@x</arg1></instruction>
</program>`
	_, _, err := loadCode(t, src)
	le, ok := err.(*loader.Error)
	if !ok || le.Code != 32 {
		t.Fatalf("err = %v, want *loader.Error code 32", err)
	}
}
