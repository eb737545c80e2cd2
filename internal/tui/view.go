package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// View renders the UI (required by tea.Model interface)
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Net Income Calculator %d", m.Year())))
	b.WriteString("\n")

	incomeLabel := "Gross income"
	if m.reverse {
		incomeLabel = "Target net income"
	}
	b.WriteString(m.renderField(fieldIncome, incomeLabel))
	b.WriteString(m.renderField(fieldExpenses, "Expenses"))
	b.WriteString("\n")

	b.WriteString(renderToggle("Self-employed", m.selfEmployed) + "  ")
	b.WriteString(renderToggle("Married", m.married) + "  ")
	b.WriteString(renderToggle("Reverse", m.reverse))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Failed to calculate the taxes: " + m.err.Error()))
	case m.report != nil:
		b.WriteString(m.renderResult())
	default:
		b.WriteString(SubtitleStyle.Render("Enter an income to start"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))

	return AppStyle.Render(b.String())
}

func (m Model) renderField(field int, label string) string {
	style := ParameterLabelStyle
	if m.focus == field {
		style = ActiveLabelStyle
	}
	return style.Render(label) + m.inputs[field].View() + "\n"
}

func renderToggle(label string, on bool) string {
	if on {
		return ToggleOnStyle.Render("[x] " + label)
	}
	return ToggleOffStyle.Render("[ ] " + label)
}

func (m Model) renderResult() string {
	o := m.report.Outcome
	width := lo.Clamp((m.width-8)/3, 18, 30)

	net := MetricValueStyle
	if o.NetIncome < 0 {
		net = MetricNegativeStyle
	}

	cards := []string{
		renderCard("Gross income", MetricValueStyle.Render(fmt.Sprintf("%d", o.GrossIncome)), width),
		renderCard("Net income", net.Render(fmt.Sprintf("%d", o.NetIncome)), width),
		renderCard("Net ratio", MetricValueStyle.Render(o.NetRatio().Mul(hundred).StringFixed(1)+"%"), width),
	}
	details := []string{
		renderCard("Social insurance", MetricValueStyle.Render(fmt.Sprintf("%d", o.SocialInsurance)), width),
		renderCard("Income tax", MetricValueStyle.Render(fmt.Sprintf("%d", o.IncomeTax)), width),
		renderCard("Marginal rate", MetricValueStyle.Render(m.report.MarginalRate.Mul(hundred).StringFixed(1)+"%"), width),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		lipgloss.JoinHorizontal(lipgloss.Top, details...),
	)
}

func renderCard(label, value string, width int) string {
	return CardStyle.Width(width).Render(MetricLabelStyle.Render(label) + "\n" + value)
}
