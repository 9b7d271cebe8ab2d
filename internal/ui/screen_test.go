package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newTestScreen wraps a tcell simulation screen so tests can inspect cell
// contents without a terminal.
func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(40, 10)
	return &Screen{screen: sim}
}

func TestPrintAdvancesPerRune(t *testing.T) {
	s := newTestScreen(t)
	defer s.Close()

	// "é" is two bytes but one column; "b" must land in column 2.
	s.Print(0, 0, "aéb", tcell.StyleDefault)
	s.Show()

	want := []rune{'a', 'é', 'b'}
	for col, r := range want {
		got, _, _, _ := s.screen.GetContent(col, 0)
		if got != r {
			t.Errorf("Column %d = %q, want %q", col, got, r)
		}
	}
}

func TestPrintHonorsOffset(t *testing.T) {
	s := newTestScreen(t)
	defer s.Close()

	s.Print(5, 2, "~~", tcell.StyleDefault)
	s.Show()

	for _, col := range []int{5, 6} {
		got, _, _, _ := s.screen.GetContent(col, 2)
		if got != '~' {
			t.Errorf("Column %d = %q, want '~'", col, got)
		}
	}
	got, _, _, _ := s.screen.GetContent(4, 2)
	if got == '~' {
		t.Error("Print wrote before its starting column")
	}
}
