package core

import "testing"

func TestCellThreshold(t *testing.T) {
	c := Cell{Level: MaxLevel}
	if c.OverThreshold() || c.CanFlash() {
		t.Fatal("a cell at MaxLevel must stay idle")
	}
	c.IncreaseLevel()
	if !c.CanFlash() {
		t.Fatal("a cell above MaxLevel should be able to flash")
	}
	c.Flash()
	c.IncreaseLevel()
	if c.CanFlash() {
		t.Fatal("a latched cell must not flash again in the same tick")
	}
}

func TestCellResetOnlyAffectsFlashed(t *testing.T) {
	idle := Cell{Level: 7}
	idle.Reset()
	if idle.Level != 7 || idle.Flashed {
		t.Fatalf("reset changed an idle cell: %+v", idle)
	}

	flashed := Cell{Level: 14, Flashed: true}
	flashed.Reset()
	if flashed.Level != 0 || flashed.Flashed {
		t.Fatalf("reset should drain a flashed cell, got %+v", flashed)
	}
}
