package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding      = 2
	minIDWidth        = 5
	minNameWidth      = 8
	enabledWidth      = 8
	minDescWidth      = 30
	minCategoryWidth  = 8
	glyphColumnWidth  = 5
	heavySeparator    = "="
	defaultTermWidth  = 100
	enabledMarker     = "on"
	disabledMarker    = "off"
	truncationEllipse = "..."
)

// StageRow is one line of the stage listing.
type StageRow struct {
	ID          string
	Name        string
	Enabled     bool
	Description string
}

// SymbolRow is one line of the glyph listing.
type SymbolRow struct {
	Category string
	Glyph    string
}

// TableFormatter formats stage and symbol listings as aligned tables.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatStageTable renders the stage listing with ID, NAME, DEFAULT and DESCRIPTION columns.
func (t *TableFormatter) FormatStageTable(rows []StageRow) string {
	if len(rows) == 0 {
		return ""
	}

	idWidth, nameWidth, descWidth := minIDWidth, minNameWidth, minDescWidth
	for _, row := range rows {
		idWidth = max(idWidth, lipgloss.Width(row.ID))
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
		descWidth = max(descWidth, lipgloss.Width(row.Description))
	}

	total := idWidth + nameWidth + enabledWidth + descWidth + tablePadding*3 + 1
	if total > t.termWidth {
		descWidth = max(minDescWidth, descWidth-(total-t.termWidth))
		total = idWidth + nameWidth + enabledWidth + descWidth + tablePadding*3 + 1
	}

	var builder strings.Builder
	header := " " + pad("ID", idWidth) + "  " + pad("NAME", nameWidth) + "  " +
		pad("DEFAULT", enabledWidth) + "  " + pad("DESCRIPTION", descWidth)
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for _, row := range rows {
		state := t.styles.Disabled.Render(pad(disabledMarker, enabledWidth))
		if row.Enabled {
			state = t.styles.Enabled.Render(pad(enabledMarker, enabledWidth))
		}

		builder.WriteString(" ")
		builder.WriteString(t.styles.StageID.Render(pad(row.ID, idWidth)))
		builder.WriteString("  ")
		builder.WriteString(t.styles.StageName.Render(pad(row.Name, nameWidth)))
		builder.WriteString("  ")
		builder.WriteString(state)
		builder.WriteString("  ")
		builder.WriteString(t.styles.Description.Render(truncateString(row.Description, descWidth)))
		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatSymbolTable renders the callout categories and their glyphs.
func (t *TableFormatter) FormatSymbolTable(rows []SymbolRow) string {
	if len(rows) == 0 {
		return ""
	}

	catWidth := minCategoryWidth
	for _, row := range rows {
		catWidth = max(catWidth, lipgloss.Width(row.Category))
	}

	var builder strings.Builder
	builder.WriteString(t.styles.TableHeader.Render(" " + pad("CATEGORY", catWidth) + "  GLYPH"))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, catWidth+tablePadding+glyphColumnWidth+1)))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(" ")
		builder.WriteString(t.styles.StageName.Render(pad(row.Category, catWidth)))
		builder.WriteString("  ")
		builder.WriteString(t.styles.Glyph.Render(row.Glyph))
		builder.WriteString("\n")
	}

	return builder.String()
}

// pad right-pads str with spaces to the given display width.
func pad(str string, width int) string {
	if gap := width - lipgloss.Width(str); gap > 0 {
		return str + strings.Repeat(" ", gap)
	}
	return str
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= len(truncationEllipse) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(truncationEllipse)]) + truncationEllipse
}
