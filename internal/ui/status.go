package ui

import (
	"fmt"
	"strings"
)

// Status is the information shown on the HUD line.
type Status struct {
	Generation int
	Population int
	Rows, Cols int
	Wrap       bool
	Running    bool
	Settled    bool
}

func (s Status) String() string {
	parts := []string{
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("pop %d", s.Population),
		fmt.Sprintf("%dx%d", s.Rows, s.Cols),
	}
	if s.Wrap {
		parts = append(parts, "wrap")
	} else {
		parts = append(parts, "bounded")
	}
	if s.Running {
		parts = append(parts, "running")
	} else {
		parts = append(parts, "paused")
	}
	if s.Settled {
		parts = append(parts, "settled")
	}
	return strings.Join(parts, " | ")
}
