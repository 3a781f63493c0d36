package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"deploycheck/internal/checklist"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusIndent = "  "
	detailIndent = "    "
	ruleWidth    = 50
)

func renderResultLines(result checklist.Result, colorize bool) []string {
	status := paint(result.Outcome.String(), outcomeColor(result.Outcome), colorize)
	switch result.Kind {
	case checklist.KindAdvisory:
		return []string{fmt.Sprintf("%sChecking: %s... %s", statusIndent, result.Name, status)}
	case checklist.KindSkip:
		return []string{statusIndent + paint("WARNING "+result.Name, ansiYellow, colorize)}
	case checklist.KindMeasure:
		if result.Detail == "" {
			return []string{fmt.Sprintf("%s%s: %s", statusIndent, result.Name, status)}
		}
		return []string{fmt.Sprintf("%s%s: %s %s", statusIndent, result.Name, result.Detail, status)}
	default:
		lines := []string{fmt.Sprintf("%sTesting: %s... %s", statusIndent, result.Name, status)}
		if result.Outcome == checklist.OutcomeFail && result.Detail != "" {
			lines = append(lines, fmt.Sprintf("%sError: %s", detailIndent, result.Detail))
		}
		return lines
	}
}

func outcomeColor(outcome checklist.Outcome) string {
	switch outcome {
	case checklist.OutcomePass, checklist.OutcomeOK:
		return ansiGreen
	case checklist.OutcomeWarning:
		return ansiYellow
	case checklist.OutcomeFail:
		return ansiRed
	default:
		return ""
	}
}

func paint(text, color string, colorize bool) string {
	if !colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

func renderSectionHeader(title string, colorize bool) []string {
	line := strings.TrimSpace(title)
	rule := strings.Repeat("-", ruleWidth)
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	return []string{line, rule}
}

func renderBanner(title string) []string {
	rule := strings.Repeat("=", ruleWidth)
	return []string{rule, title, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
