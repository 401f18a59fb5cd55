package services

import (
	"fmt"
	"strings"

	"github.com/panseek/panseek/internal/core/domain"
)

// provisionalDelayMinutes is the bounded delay quoted to the user for
// a provisional link: how long the detached transfer may take before
// the content behind the link becomes visible.
const provisionalDelayMinutes = 15

// renderListing formats one page of results as plain text. Every
// listing states the current page, the total pages and the total
// result count, and every item its 1-based in-page number and title.
func renderListing(keyword string, view *PageView, trig domain.TriggerConfig) string {
	var b strings.Builder

	if keyword != "" {
		fmt.Fprintf(&b, "Results for %q (page %d/%d, %d total):\n", keyword, view.Page, view.TotalPages, view.TotalCount)
	} else {
		fmt.Fprintf(&b, "Results (page %d/%d, %d total):\n", view.Page, view.TotalPages, view.TotalCount)
	}

	for i, item := range view.Items {
		fmt.Fprintf(&b, "%2d. %s [%s]", i+1, item.Title, item.Backend)
		if item.AccessCode != "" {
			fmt.Fprintf(&b, " (code: %s)", item.AccessCode)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nReply with a number to get a link")
	if view.HasPrev || view.HasNext {
		fmt.Fprintf(&b, ", or %q/%q to page", trig.NextPage, trig.PrevPage)
	}
	b.WriteByte('.')
	return b.String()
}

// renderResolution formats the immediate reply for a selected item.
func renderResolution(item domain.ResultItem, res *domain.Resolution) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nLink: %s\n", item.Title, res.Link)
	if res.AccessCode != "" {
		fmt.Fprintf(&b, "Access code: %s\n", res.AccessCode)
	}
	if res.Provisional {
		fmt.Fprintf(&b, "Content is still being transferred and may take up to %d minutes to appear.", provisionalDelayMinutes)
	} else {
		b.WriteString("Ready to use.")
	}
	return b.String()
}
