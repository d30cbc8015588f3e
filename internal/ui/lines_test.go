package ui

import (
	"testing"

	"flash-ca/internal/sims/flash"
)

func TestSnapshotLinesFollowGroups(t *testing.T) {
	s := flash.NewWithConfig(flash.Config{Width: 4, Height: 3, Seed: 2})
	s.Step()

	lines := snapshotLines(s)
	if len(lines) == 0 || lines[0].text != "flash" || !lines[0].header {
		t.Fatalf("first line should be the sim name header, got %+v", lines)
	}

	headers := 0
	foundTick := false
	for _, l := range lines {
		if l.header {
			headers++
		}
		if l.text == "  Tick          1" {
			foundTick = true
		}
	}
	if headers != 3 {
		t.Fatalf("expected 3 headers (name + 2 groups), got %d", headers)
	}
	if !foundTick {
		t.Fatalf("tick row missing from %+v", lines)
	}
}
