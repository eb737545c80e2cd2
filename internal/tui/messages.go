package tui

import "github.com/rgehrsitz/netincome/internal/output"

// calculatedMsg carries the result of a calculation run
type calculatedMsg struct {
	seq    int
	report *output.Report
	err    error
}
