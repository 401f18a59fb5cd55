package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/panseek/panseek/internal/core/domain"
)

// CommandKind classifies an inbound text.
type CommandKind int

const (
	// CommandNone means the text matched no trigger. The host's
	// keyword-reply fallback owns such messages; the engine stays
	// silent.
	CommandNone CommandKind = iota

	// CommandSelect picks a result by its in-page number.
	CommandSelect

	// CommandSearch starts a new search.
	CommandSearch

	// CommandNextPage advances the page cursor.
	CommandNextPage

	// CommandPrevPage retreats the page cursor.
	CommandPrevPage
)

// Command is one parsed inbound text.
type Command struct {
	// Kind selects the action.
	Kind CommandKind

	// Keyword is the trimmed search keyword. Only set for
	// CommandSearch; empty means the user typed the prefix with
	// nothing after it, which is a validation outcome and never
	// reaches the network.
	Keyword string

	// Index is the typed 1-based in-page index for CommandSelect.
	Index int
}

// triggerRule is one row of the dispatch table.
type triggerRule struct {
	name  string
	match func(text string) (Command, bool)
}

// TriggerTable parses inbound texts against an explicit, total,
// priority-ordered rule list. The table is evaluated once per
// message; the first matching rule wins, and the final catch-all
// guarantees every text maps to exactly one command.
type TriggerTable struct {
	rules []triggerRule
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// NewTriggerTable builds the dispatch table from the configured
// trigger literals. Rule priority is fixed: select, search, next
// page, previous page, none.
func NewTriggerTable(cfg domain.TriggerConfig) *TriggerTable {
	var selectRe *regexp.Regexp
	if cfg.SelectPrefix != "" {
		selectRe = regexp.MustCompile(`^` + regexp.QuoteMeta(cfg.SelectPrefix) + `\s*([0-9]+)$`)
	}

	rules := []triggerRule{
		{
			name: "select",
			match: func(text string) (Command, bool) {
				if digitsOnly.MatchString(text) {
					n, err := strconv.Atoi(text)
					if err != nil {
						return Command{}, false
					}
					return Command{Kind: CommandSelect, Index: n}, true
				}
				if selectRe == nil {
					return Command{}, false
				}
				if m := selectRe.FindStringSubmatch(text); m != nil {
					n, err := strconv.Atoi(m[1])
					if err != nil {
						return Command{}, false
					}
					return Command{Kind: CommandSelect, Index: n}, true
				}
				return Command{}, false
			},
		},
		{
			name: "search",
			match: func(text string) (Command, bool) {
				if cfg.SearchPrefix == "" || !strings.HasPrefix(text, cfg.SearchPrefix) {
					return Command{}, false
				}
				keyword := strings.TrimSpace(strings.TrimPrefix(text, cfg.SearchPrefix))
				return Command{Kind: CommandSearch, Keyword: keyword}, true
			},
		},
		{
			name: "next-page",
			match: func(text string) (Command, bool) {
				if cfg.NextPage != "" && text == cfg.NextPage {
					return Command{Kind: CommandNextPage}, true
				}
				return Command{}, false
			},
		},
		{
			name: "prev-page",
			match: func(text string) (Command, bool) {
				if cfg.PrevPage != "" && text == cfg.PrevPage {
					return Command{Kind: CommandPrevPage}, true
				}
				return Command{}, false
			},
		},
	}

	return &TriggerTable{rules: rules}
}

// Parse maps one inbound text to exactly one command. Surrounding
// whitespace never changes the outcome.
func (t *TriggerTable) Parse(text string) Command {
	text = strings.TrimSpace(text)
	for _, rule := range t.rules {
		if cmd, ok := rule.match(text); ok {
			return cmd
		}
	}
	return Command{Kind: CommandNone}
}
