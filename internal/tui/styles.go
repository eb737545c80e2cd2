package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary = lipgloss.Color("#0066CC")
	ColorAccent  = lipgloss.Color("#FFB000")
	ColorSuccess = lipgloss.Color("#2E8B57")
	ColorDanger  = lipgloss.Color("#CC3333")
	ColorMuted   = lipgloss.Color("#808080")
	ColorBorder  = lipgloss.Color("#444444")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ParameterLabelStyle = lipgloss.NewStyle().Width(18).Foreground(ColorMuted)

	ActiveLabelStyle = ParameterLabelStyle.Foreground(ColorAccent).Bold(true)

	ToggleOnStyle  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	ToggleOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true)
	MetricNegativeStyle = MetricValueStyle.Foreground(ColorDanger)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)

var hundred = decimal.NewFromInt(100)
