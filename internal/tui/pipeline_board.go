package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/opsboard/internal/core"
	"github.com/samber/lo"
)

const (
	minColumnW = 18
	columnGap  = 1
	// boardHeaderRows is the column header line plus the blank line under it.
	boardHeaderRows = 2
	// leadCardH is the rendered height of every lead card: four content lines
	// and the border.
	leadCardH = 6
)

// boardCursor addresses a card as (column, card) on the board.
type boardCursor struct {
	col, row int
}

// RenderPipelineBoard partitions leads into the pipeline columns and draws
// them without a selection. Columns that do not fit the width side by side
// wrap into further rows of columns, so every lead is printed.
func RenderPipelineBoard(leads []core.Lead, width int) string {
	board := core.PartitionLeads(leads)
	visible := boardVisibleColumns(width)

	var groups []string
	for off := 0; off < len(board.Columns); off += visible {
		groups = append(groups, renderBoard(board, width, nil, off))
	}
	return strings.Join(groups, "\n\n")
}

// boardVisibleColumns is how many columns fit side by side in width.
func boardVisibleColumns(width int) int {
	n := len(core.PipelineColumns)
	fit := (width - costChartInset + columnGap) / (minColumnW + columnGap)
	return lo.Clamp(fit, 1, n)
}

func boardColumnWidth(width int) int {
	return max(minColumnW, (width-costChartInset)/boardVisibleColumns(width)-columnGap)
}

// maxBoardColOffset is the largest first-column index that still fills the view.
func maxBoardColOffset(width int) int {
	return max(0, len(core.PipelineColumns)-boardVisibleColumns(width))
}

// renderBoard draws the columns starting at colOffset that fit in width. sel
// addresses columns absolutely.
func renderBoard(board core.Board, width int, sel *boardCursor, colOffset int) string {
	colW := boardColumnWidth(width)
	end := min(len(board.Columns), colOffset+boardVisibleColumns(width))

	cols := make([]string, 0, len(board.Columns)*2)
	for i := colOffset; i < end; i++ {
		if i > colOffset {
			cols = append(cols, strings.Repeat(" ", columnGap))
		}
		selRow := -1
		if sel != nil && sel.col == i {
			selRow = sel.row
		}
		cols = append(cols, renderBoardColumn(board.Columns[i], colW, selRow))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return lipgloss.NewStyle().PaddingLeft(costChartInset).Render(body)
}

func renderBoardColumn(col core.BoardColumn, w, selRow int) string {
	title := colorDot(col.Color) + " " + headerStyle.Render(ansi.Truncate(col.Label, w-8, "…"))
	count := countBadge.Render(fmt.Sprintf("%d", len(col.Leads)))
	gap := max(1, w-lipgloss.Width(title)-lipgloss.Width(count))
	header := title + strings.Repeat(" ", gap) + count

	parts := []string{header, ""}
	if len(col.Leads) == 0 {
		parts = append(parts, placeholderStyle.Width(w-2).Render(core.NoLeadsMessage))
	}
	for i, lead := range col.Leads {
		parts = append(parts, renderLeadCard(lead, w, i == selRow))
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(parts, "\n"))
}

func renderLeadCard(lead core.Lead, w int, selected bool) string {
	innerW := w - 4

	name := lead.FullName()
	if name == "" {
		name = lead.ID
	}
	tag := ""
	if src := strings.TrimSpace(lead.Source); src != "" {
		tag = metaTagStyle.Render(ansi.Truncate(src, innerW-2, "…"))
	}

	lines := []string{
		valueStyle.Bold(true).Render(ansi.Truncate(name, innerW, "…")),
		labelStyle.Render(ansi.Truncate(lead.Phone, innerW, "…")),
		tag,
		renderPriorityDots(lead.Priority),
	}

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(w - 2).Render(strings.Join(lines, "\n"))
}

func renderPriorityDots(priority int) string {
	filled := core.PriorityDots(priority)
	on := lipgloss.NewStyle().Foreground(colorYellow).Render(strings.Repeat("●", filled))
	off := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("○", core.PriorityDotCount-filled))
	return on + off
}

// boardHitTest maps a click inside the rendered board to a card. y is relative
// to the first board line; colOffset is the first column on screen.
func boardHitTest(board core.Board, width, colOffset, x, y int) (boardCursor, bool) {
	colW := boardColumnWidth(width)
	x -= costChartInset
	if x < 0 || y < boardHeaderRows {
		return boardCursor{}, false
	}
	local := x / (colW + columnGap)
	col := colOffset + local
	if local >= boardVisibleColumns(width) || col >= len(board.Columns) || x%(colW+columnGap) >= colW {
		return boardCursor{}, false
	}
	row := (y - boardHeaderRows) / leadCardH
	if row >= len(board.Columns[col].Leads) {
		return boardCursor{}, false
	}
	return boardCursor{col: col, row: row}, true
}

// cardTopLine is the board line where the selected card starts.
func cardTopLine(sel boardCursor) int {
	return boardHeaderRows + sel.row*leadCardH
}

func boardStatusLine(board core.Board) string {
	n := board.LeadCount()
	s := fmt.Sprintf("%d leads", n)
	if n == 1 {
		s = "1 lead"
	}
	if board.Unmapped > 0 {
		s += fmt.Sprintf(" · %d hidden (unknown status)", board.Unmapped)
	}
	return s
}
