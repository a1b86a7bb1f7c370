package validate

import (
	"bytes"
	"strings"
	"testing"

	"tttgen/internal/board"
	"tttgen/internal/diag"
	"tttgen/internal/ir"
)

func TestValidateAcceptsGeneratedDesign(t *testing.T) {
	diagStr, err := runValidation(t, ir.BuildDesign(""))
	if err != nil {
		t.Fatalf("expected success, got error %v with diagnostics %s", err, diagStr)
	}
	if diagStr != "" {
		t.Fatalf("expected no diagnostics, got %q", diagStr)
	}
}

func TestValidateRejectsWrongMask(t *testing.T) {
	design := ir.BuildDesign("")
	// Swap the diagonal {3,5,7} for the player-2 column {1,4,7} mask.
	design.Blocks[1].Clauses[7].(*ir.MaskEquals).Mask = 8322
	diagStr, err := runValidation(t, design)
	if err == nil {
		t.Fatalf("expected wrong mask to fail")
	}
	if !strings.Contains(diagStr, "diagonal [3 5 7] mask 8322, want 8736") {
		t.Fatalf("expected mask diagnostic, got %q", diagStr)
	}
}

func TestValidateRejectsBadPlayer(t *testing.T) {
	design := ir.BuildDesign("")
	design.Blocks[0] = ir.WinBlock(3)
	diagStr, err := runValidation(t, design)
	if err == nil {
		t.Fatalf("expected player 3 to fail")
	}
	if !strings.Contains(diagStr, "player code 3 is not 1 or 2") {
		t.Fatalf("expected player diagnostic, got %q", diagStr)
	}
	if !strings.Contains(diagStr, "overlap") {
		t.Fatalf("expected overlap diagnostic, got %q", diagStr)
	}
}

func TestValidateRejectsShortTie(t *testing.T) {
	design := ir.BuildDesign("")
	tie := design.Blocks[2]
	tie.Clauses = tie.Clauses[:8]
	diagStr, err := runValidation(t, design)
	if err == nil {
		t.Fatalf("expected short tie block to fail")
	}
	if !strings.Contains(diagStr, "expected 9 clauses, got 8") {
		t.Fatalf("expected tie diagnostic, got %q", diagStr)
	}
}

func TestValidateRejectsMissingLine(t *testing.T) {
	design := ir.BuildDesign("")
	win := design.Blocks[0]
	win.Clauses = win.Clauses[:7]
	diagStr, err := runValidation(t, design)
	if err == nil {
		t.Fatalf("expected missing diagonal to fail")
	}
	if !strings.Contains(diagStr, "player 1: masks give false") {
		t.Fatalf("expected exhaustive diagnostic, got %q", diagStr)
	}
}

func TestValidateRejectsWrongCellShift(t *testing.T) {
	design := ir.BuildDesign("")
	design.Blocks[3].Clauses[1].(*ir.CellRender).Shift = 4
	diagStr, err := runValidation(t, design)
	if err == nil {
		t.Fatalf("expected wrong cell shift to fail")
	}
	if !strings.Contains(diagStr, "cell 1 uses shift 4") {
		t.Fatalf("expected shift diagnostic, got %q", diagStr)
	}
	if !strings.Contains(diagStr, "cell 1: renders") {
		t.Fatalf("expected render diagnostic, got %q", diagStr)
	}
}

func TestValidateWarnsOnOddSymbol(t *testing.T) {
	diagStr, err := runValidation(t, ir.BuildDesign("s.board"))
	if err != nil {
		t.Fatalf("warning must not fail validation: %v", err)
	}
	if !strings.Contains(diagStr, `warning: symbol "s.board"`) {
		t.Fatalf("expected symbol warning, got %q", diagStr)
	}
}

func TestValidateNeedsReporter(t *testing.T) {
	if err := CheckDesign(ir.BuildDesign(""), nil); err == nil {
		t.Fatalf("expected error without reporter")
	}
	if err := CheckDesign(nil, diag.NewReporter(nil, "text")); err == nil {
		t.Fatalf("expected error without design")
	}
}

func TestDecodeTernaryCoversCodes(t *testing.T) {
	b := decodeTernary(1 + 2*3)
	if b.At(1) != board.Player1 || b.At(2) != board.Player2 || b.At(3) != board.Empty {
		t.Fatalf("decodeTernary(7)=%018b", b)
	}
}

func runValidation(t *testing.T, design *ir.Design) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	reporter := diag.NewReporter(&buf, "text")
	err := CheckDesign(design, reporter)
	return buf.String(), err
}
