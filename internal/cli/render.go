package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "75"})

	moreStyle = lipgloss.NewStyle().Faint(true)
)

// ShowDocument reads a resolved document below docsDir and prints it,
// rendered through glamour unless rendering is disabled.
func ShowDocument(docsDir, relPath string, render bool) error {
	content, err := os.ReadFile(filepath.Join(docsDir, filepath.FromSlash(relPath)))
	if err != nil {
		return err
	}

	if !render {
		fmt.Println(string(content))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(string(content))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// FormatSuggestions lays candidate continuations out on one styled
// line, capped at limit with a trailing count of what was cut.
func FormatSuggestions(words []string, limit int) string {
	if len(words) == 0 {
		return ""
	}

	shown := words
	omitted := 0
	if limit > 0 && len(words) > limit {
		shown = words[:limit]
		omitted = len(words) - limit
	}

	styled := make([]string, len(shown))
	for i, w := range shown {
		styled[i] = suggestionStyle.Render(w)
	}
	out := strings.Join(styled, "  ")
	if omitted > 0 {
		out += moreStyle.Render(fmt.Sprintf("  (+%d more)", omitted))
	}
	return out
}
