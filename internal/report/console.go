package report

import (
	"fmt"
	"io"
	"strings"

	"deploycheck/internal/checklist"
)

// Console writes a human-readable checklist report.
type Console struct {
	out       io.Writer
	colorize  bool
	notesFile string
	started   bool
}

// NewConsole returns a reporter writing to out. notesFile is named in the
// deployment guidance printed after a passing run.
func NewConsole(out io.Writer, notesFile string) *Console {
	return &Console{
		out:       out,
		colorize:  shouldColorize(out),
		notesFile: notesFile,
	}
}

// Banner prints the report title.
func (c *Console) Banner(title string) {
	c.writeLines(renderBanner(title))
	c.writeLines([]string{""})
}

// Section implements checklist.Reporter.
func (c *Console) Section(title string) {
	if c.started {
		c.writeLines([]string{""})
	}
	c.started = true
	c.writeLines(renderSectionHeader(title, c.colorize))
}

// Result implements checklist.Reporter.
func (c *Console) Result(result checklist.Result) {
	c.writeLines(renderResultLines(result, c.colorize))
}

// Critical prints a message that ends the run early.
func (c *Console) Critical(message string) {
	c.writeLines([]string{"", paint("Critical: "+message, ansiRed, c.colorize)})
}

// Summary implements checklist.Reporter.
func (c *Console) Summary(tally checklist.Tally) {
	c.writeLines([]string{""})
	c.writeLines(renderBanner("Test Summary"))
	c.writeLines(strings.Split(renderTallyTable(tally, c.colorize), "\n"))
	c.writeLines([]string{""})
	c.writeLines(c.verdictLines(tally))
}

func (c *Console) verdictLines(tally checklist.Tally) []string {
	if !tally.OK() {
		msg := fmt.Sprintf("%d test(s) failed. Please review and fix before deploying.", tally.Failed)
		return []string{paint(msg, ansiRed, c.colorize)}
	}
	notes := c.notesFile
	if notes == "" {
		notes = "the deployment notes"
	}
	return []string{
		paint("All critical tests passed!", ansiGreen, c.colorize),
		"Ready for deployment to Cloudflare Pages.",
		"",
		"Next steps:",
		fmt.Sprintf("1. Review %s for deployment instructions", notes),
		"2. Test locally: python3 -m http.server 8000",
		"3. Deploy via: wrangler pages deploy ./",
	}
}

func (c *Console) writeLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}
