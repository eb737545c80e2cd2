package output

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Formatter renders a report in one output format
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{}

// aliases maps alternative names to registered formatters
var aliases = map[string]string{
	"text":            "console",
	"console-verbose": "verbose",
	"detailed":        "verbose",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(ConsoleVerboseFormatter{})
	register(JSONFormatter{Pretty: true})
	register(CSVFormatter{})
	register(PDFFormatter{})
}

// GetFormatterByName returns the formatter for a name or alias, nil when unknown
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// FormatterNames returns the registered formatter names
func FormatterNames() []string {
	return []string{"console", "verbose", "json", "csv", "pdf"}
}

// FileExtension returns the file extension for reports of the formatter
func FileExtension(f Formatter) string {
	switch name := f.Name(); name {
	case "json", "csv", "pdf":
		return name
	default:
		return "txt"
	}
}

// WriteFormatted writes the formatted report into a time-stamped file in the
// working directory and returns the file name
func WriteFormatted(f Formatter, report *Report, extension string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("net_income_report_%s.%s", time.Now().Format("20060102_150405"), extension)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}

// WriteFile writes the formatted report to the given file
func WriteFile(f Formatter, report *Report, filename string) error {
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
