package compileerr

import (
	"strings"
	"testing"
)

func TestBriefFormat(t *testing.T) {
	e := &Error{Stage: Parse, Kind: "unexpected_token", TokenIdx: 7, Hint: "expected ';'"}
	want := "parse: unexpected_token at token 7: expected ';'"
	if got := e.Brief(); got != want {
		t.Fatalf("Brief() = %q, want %q", got, want)
	}
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = &Error{Stage: Scan, Kind: "illegal_byte", TokenIdx: 0, Hint: "unexpected '@'"}
	if err.Error() != "scan: illegal_byte at token 0: unexpected '@'" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	e := &Error{
		Stage:  Lower,
		Kind:   "unbound_identifier",
		Hint:   "reference to undeclared name y",
		Line:   2,
		Col:    5,
		Source: "fun f() {\n    y;\n}",
		File:   "example.slc",
	}
	out := e.Format()
	if !strings.Contains(out, "example.slc:2:5") {
		t.Fatalf("expected file:line:col header, got %q", out)
	}
	if !strings.Contains(out, "    y;") {
		t.Fatalf("expected the offending source line to appear, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret marker, got %q", out)
	}
	if !strings.Contains(out, "reference to undeclared name y") {
		t.Fatalf("expected the hint to appear, got %q", out)
	}
}

func TestFormatWithoutFileUsesBareHeader(t *testing.T) {
	e := &Error{Stage: Scan, Line: 1, Col: 1, Hint: "bad byte"}
	out := e.Format()
	if !strings.Contains(out, "scan error at 1:1") {
		t.Fatalf("expected bare stage/line/col header, got %q", out)
	}
}

func TestFormatOutOfRangeLineOmitsSourceSnippet(t *testing.T) {
	e := &Error{Stage: Parse, Line: 99, Col: 1, Source: "let x = 1;", Hint: "oops"}
	out := e.Format()
	if strings.Count(out, "\n") > 2 {
		t.Fatalf("expected no source line/caret block for an out-of-range line, got %q", out)
	}
}
