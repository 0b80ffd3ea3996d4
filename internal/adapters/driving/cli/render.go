package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// Accent colours per theme, applied to headings and ids.
var themePalette = map[domain.ThemeColor]lipgloss.Color{
	domain.ThemeIndigo:  lipgloss.Color("63"),
	domain.ThemeEmerald: lipgloss.Color("42"),
	domain.ThemeRose:    lipgloss.Color("205"),
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// applyTheme recolours the heading style from the user's settings.
// Rendering never fails on a missing or unreadable theme; the default
// accent is used instead.
func applyTheme() {
	if settingsService == nil {
		return
	}
	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		return
	}
	if color, ok := themePalette[settings.ThemeColor]; ok {
		headingStyle = headingStyle.Foreground(color)
	}
}

func heading(s string) string {
	return headingStyle.Render(s)
}

func dim(s string) string {
	return dimStyle.Render(s)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "(unknown)"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// folderLabel renders a folder with its nesting depth indicated by
// indentation. Depth is derived from the parent chain in the given
// set; an unresolvable parent counts as root.
func folderLabel(folder domain.Folder, all []domain.Folder) string {
	depth := 0
	current := folder
	for current.ParentID != nil && depth < len(all) {
		found := false
		for _, f := range all {
			if f.ID == *current.ParentID {
				current = f
				found = true
				break
			}
		}
		if !found {
			break
		}
		depth++
	}
	return strings.Repeat("  ", depth) + folder.Name
}
