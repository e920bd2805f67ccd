package details

import (
	"strings"
	"testing"

	"ncexe/internal/field"
	"ncexe/internal/line"
	"ncexe/internal/theme"
)

func TestBuildSkipsIgnoreFields(t *testing.T) {
	fm := field.NewFieldMap([]field.FieldDef{
		field.New(0, 2, "Visible", field.LEHex),
		field.Ignore(2, 4),
	})
	lines := Build(make([]byte, 6), fm, theme.Get("dark"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 displayable line, got %d", len(lines))
	}
}

func TestBuildNoMatchHasNoLabel(t *testing.T) {
	fm := field.NewFieldMap([]field.FieldDef{
		field.New(0, 2, "Object File Type", field.LEHex).
			WithUsize(field.LEUsize).
			WithValTable(field.ValEntry{Key: 1, Label: "Relocatable"}),
	})
	region := []byte{0x02, 0x00} // value 2, not in table
	lines := Build(region, fm, theme.Get("dark"))
	d := lines[0].(detailLine)
	if d.label != "" {
		t.Fatalf("expected no label, got %q", d.label)
	}
	if !strings.Contains(d.value, "0002") {
		t.Fatalf("expected hex value 0002, got %q", d.value)
	}
}

func TestBuildMatchAddsLabel(t *testing.T) {
	fm := field.NewFieldMap([]field.FieldDef{
		field.New(0, 2, "Object File Type", field.LEHex).
			WithUsize(field.LEUsize).
			WithValTable(field.ValEntry{Key: 2, Label: "Executable"}),
	})
	region := []byte{0x02, 0x00}
	lines := Build(region, fm, theme.Get("dark"))
	d := lines[0].(detailLine)
	if d.label != "(Executable)" {
		t.Fatalf("label = %q", d.label)
	}
	if d.ActionType().Kind != line.ActionNone {
		t.Fatalf("expected ActionNone without nested map")
	}
}

func TestBuildExpandableRoundTrip(t *testing.T) {
	sub := field.NewFieldMap([]field.FieldDef{
		field.New(0, 1, "Nested", field.LEUint),
	})
	fm := field.NewFieldMap([]field.FieldDef{
		field.New(0, 2, "Kind", field.LEHex).
			WithUsize(field.LEUsize).
			WithValTable(field.ValEntry{Key: 1, Label: "HasSub", Sub: &sub}),
	})
	region := []byte{0x01, 0x00, 0x2A}
	lines := Build(region, fm, theme.Get("dark"))
	d := lines[0].(detailLine)
	action := d.ActionType()
	if action.Kind != line.ActionExpandable {
		t.Fatalf("expected Expandable action")
	}
	if action.Indent != 7 {
		t.Fatalf("indent = %d, want 7", action.Indent)
	}
	children, err := action.Expand()
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 1 {
		t.Fatalf("expected 1 nested detail line, got %d", len(children))
	}
}

func TestBuildNewWindowInvokesEnterFn(t *testing.T) {
	called := false
	var gotColors theme.WindowColors
	wantColors := theme.Get("light")
	fm := field.NewFieldMap([]field.FieldDef{
		field.New(0, 4, "Load Commands", field.LEUint).
			WithUsize(field.LEUsize).
			WithEnterFn(func(region []byte, dataLen int, colors theme.WindowColors) (line.Screen, error) {
				called = true
				gotColors = colors
				return "load-command-screen", nil
			}),
	})
	region := make([]byte, 4)
	lines := Build(region, fm, wantColors)
	scr, err := lines[0].ActionType().NewScreen()
	if err != nil {
		t.Fatal(err)
	}
	if !called || scr != "load-command-screen" {
		t.Fatalf("enter handler not invoked correctly")
	}
	if gotColors.Header.Render("x") != wantColors.Header.Render("x") {
		t.Fatalf("EnterFn did not receive the Build caller's colors")
	}
}
