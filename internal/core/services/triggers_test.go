package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panseek/panseek/internal/core/domain"
)

func testTriggers() domain.TriggerConfig {
	return domain.DefaultConfig().Triggers
}

func TestTriggerTable_Search(t *testing.T) {
	table := NewTriggerTable(testTriggers())

	tests := []struct {
		name    string
		text    string
		keyword string
	}{
		{"prefix with space", "search dragon", "dragon"},
		{"prefix glued", "searchdragon", "dragon"},
		{"keyword with spaces", "search the dragon movie", "the dragon movie"},
		{"surrounding whitespace", "  search dragon  ", "dragon"},
		{"empty keyword", "search", ""},
		{"whitespace-only keyword", "search    ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := table.Parse(tt.text)
			assert.Equal(t, CommandSearch, cmd.Kind)
			assert.Equal(t, tt.keyword, cmd.Keyword)
		})
	}
}

func TestTriggerTable_Select(t *testing.T) {
	table := NewTriggerTable(testTriggers())

	cmd := table.Parse("5")
	assert.Equal(t, CommandSelect, cmd.Kind)
	assert.Equal(t, 5, cmd.Index)

	cmd = table.Parse("pick 3")
	assert.Equal(t, CommandSelect, cmd.Kind)
	assert.Equal(t, 3, cmd.Index)

	cmd = table.Parse("pick12")
	assert.Equal(t, CommandSelect, cmd.Kind)
	assert.Equal(t, 12, cmd.Index)
}

func TestTriggerTable_Pagination(t *testing.T) {
	table := NewTriggerTable(testTriggers())

	assert.Equal(t, CommandNextPage, table.Parse("next").Kind)
	assert.Equal(t, CommandPrevPage, table.Parse("prev").Kind)
	assert.Equal(t, CommandNextPage, table.Parse("  next ").Kind)
}

func TestTriggerTable_None(t *testing.T) {
	table := NewTriggerTable(testTriggers())

	for _, text := range []string{"", "hello", "nexts", "5 apples", "pick five", "seance"} {
		assert.Equal(t, CommandNone, table.Parse(text).Kind, "text %q", text)
	}
}

// Every inbound text must match exactly one rule. The table is
// evaluated first-match-wins, so it is enough that texts matching an
// earlier rule never fall through and that priority is stable.
func TestTriggerTable_SingleDispatchPriority(t *testing.T) {
	// A select prefix that collides with the search prefix: selection
	// must win because it is evaluated first.
	cfg := testTriggers()
	cfg.SelectPrefix = "search"
	table := NewTriggerTable(cfg)

	cmd := table.Parse("search 7")
	assert.Equal(t, CommandSelect, cmd.Kind)
	assert.Equal(t, 7, cmd.Index)

	// Non-numeric remainder falls through to search.
	cmd = table.Parse("search dragon")
	assert.Equal(t, CommandSearch, cmd.Kind)
	assert.Equal(t, "dragon", cmd.Keyword)
}

func TestTriggerTable_CustomLiterals(t *testing.T) {
	cfg := domain.TriggerConfig{
		SearchPrefix: "搜",
		SelectPrefix: "选",
		NextPage:     "下一页",
		PrevPage:     "上一页",
	}
	table := NewTriggerTable(cfg)

	cmd := table.Parse("搜朝雪录")
	assert.Equal(t, CommandSearch, cmd.Kind)
	assert.Equal(t, "朝雪录", cmd.Keyword)

	assert.Equal(t, CommandSelect, table.Parse("选2").Kind)
	assert.Equal(t, CommandNextPage, table.Parse("下一页").Kind)
	assert.Equal(t, CommandPrevPage, table.Parse("上一页").Kind)
	assert.Equal(t, CommandNone, table.Parse("search dragon").Kind)
}
