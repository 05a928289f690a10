package model

import "testing"

func TestCell_ZeroValue(t *testing.T) {
	var c Cell

	if c.Content != Empty || c.Revealed || c.Marked || c.Hint != 0 {
		t.Fatalf("zero cell = %+v, want untouched empty", c)
	}
}

func TestCell_Rune(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want rune
	}{
		{"covered empty", Cell{}, '.'},
		{"covered mine", Cell{Content: Mine}, '.'},
		{"covered hint", Cell{Content: Hint, Hint: 3}, '.'},
		{"marked empty", Cell{Marked: true}, '*'},
		{"marked mine", Cell{Content: Mine, Marked: true}, '*'},
		{"marked hint", Cell{Content: Hint, Hint: 5, Marked: true}, '*'},
		{"revealed empty", Cell{Revealed: true}, '/'},
		{"revealed hint 1", Cell{Content: Hint, Hint: 1, Revealed: true}, '1'},
		{"revealed hint 8", Cell{Content: Hint, Hint: 8, Revealed: true}, '8'},
	}

	for _, tc := range cases {
		if got := tc.cell.Rune(); got != tc.want {
			t.Fatalf("%s: Rune() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestGameState_Terminal(t *testing.T) {
	if InProgress.Terminal() {
		t.Fatalf("InProgress.Terminal() = true")
	}

	if !Won.Terminal() || !Lost.Terminal() {
		t.Fatalf("Won/Lost must be terminal")
	}
}

func TestGameState_String(t *testing.T) {
	if got := Won.String(); got != "won" {
		t.Fatalf("Won.String() = %q", got)
	}

	if got := GameState(42).String(); got != "unknown" {
		t.Fatalf("GameState(42).String() = %q", got)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig(7)

	if cfg.Rows != DefaultRows || cfg.Cols != DefaultCols || cfg.Seed != 7 {
		t.Fatalf("DefaultConfig(7) = %+v", cfg)
	}

	if got := (Config{Rows: 3, Cols: 4}).Size(); got != 12 {
		t.Fatalf("Size() = %d, want 12", got)
	}
}
