package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
)

// CheckRenderer renders allow-list verdicts.
type CheckRenderer struct {
	theme *Theme
}

// NewCheckRenderer creates a new check renderer with the given theme.
func NewCheckRenderer(theme *Theme) *CheckRenderer {
	return &CheckRenderer{theme: theme}
}

// Render renders one line per URL under a header naming the suffix.
func (r *CheckRenderer) Render(out *usecase.CheckURLsOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Allowed suffix %s\n\n",
		iconStyle.Render(IconFilter),
		r.theme.Badge.Render(out.Suffix),
	))
	for _, res := range out.Results {
		sb.WriteString("  ")
		sb.WriteString(r.renderResult(res))
		sb.WriteString("\n")
	}
	sb.WriteString("\n  ")
	sb.WriteString(r.renderSummary(len(out.Results), out.Denied))
	sb.WriteString("\n")
	return sb.String()
}

func (r *CheckRenderer) renderResult(res usecase.URLCheck) string {
	mark := r.theme.SuccessStyle.Render(IconCheck + " allow")
	if !res.Verdict.Allow {
		mark = r.theme.ErrorStyle.Render(IconX + " deny ")
	}

	reason := res.Verdict.Reason
	if res.Err != nil {
		reason = res.Err.Error()
	}
	return fmt.Sprintf("%s %s %s", mark, r.theme.Title.Render(res.URL), r.theme.Subtle.Render("("+reason+")"))
}

func (r *CheckRenderer) renderSummary(total, denied int) string {
	if denied == 0 {
		return r.theme.SuccessStyle.Render(fmt.Sprintf("%d of %d allowed", total, total))
	}
	return r.theme.WarningStyle.Render(fmt.Sprintf("%d of %d denied", denied, total))
}
