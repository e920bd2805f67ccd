package theme

import "testing"

func TestGetKnownThemes(t *testing.T) {
	for _, name := range []string{"dark", "light"} {
		if _, ok := themes[name]; !ok {
			t.Errorf("expected registry to contain %q", name)
		}
	}
}

func TestGetUnknownFallsBackToDark(t *testing.T) {
	got := Get("nonexistent")
	want := themes["dark"]
	if got.Header.Render("x") != want.Header.Render("x") ||
		got.Text.Render("x") != want.Text.Render("x") {
		t.Errorf("Get(nonexistent) did not fall back to the dark theme")
	}
}
