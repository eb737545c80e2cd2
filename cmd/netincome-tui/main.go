package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/tui"
)

func main() {
	year := config.DefaultYear
	if len(os.Args) > 1 {
		y, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Println("Usage: netincome-tui [year]")
			os.Exit(1)
		}
		if _, err := config.ForYear(y); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		year = y
	}

	p := tea.NewProgram(tui.NewModel(year), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
