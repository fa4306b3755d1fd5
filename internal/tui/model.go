package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/opsboard/internal/core"
)

type screenTab int

const (
	screenCosts    screenTab = iota // stacked cost bars
	screenMemory                    // memory fact list
	screenPipeline                  // lead pipeline board
)

var screenTabs = []screenTab{screenCosts, screenMemory, screenPipeline}

var screenLabelByTab = map[screenTab]string{
	screenCosts:    "Costs",
	screenMemory:   "Memory",
	screenPipeline: "Pipeline",
}

const (
	minViewW = 30
	minViewH = 8
	// headerRows is the title line plus the separator under it.
	headerRows = 2
)

// SnapshotMsg replaces the data shown on every screen.
type SnapshotMsg core.Snapshot

// SnapshotErrorMsg reports a failed load; the previous data stays on screen.
type SnapshotErrorMsg struct {
	Err error
}

type themePersistedMsg struct {
	err error
}

type Model struct {
	snap    core.Snapshot
	board   core.Board
	hasData bool

	chartHeight int
	width       int
	height      int
	screen      screenTab
	showHelp    bool

	factOffset     int // vertical scroll offset of the memory list
	boardOffset    int // vertical scroll offset of the pipeline board
	boardColOffset int // first pipeline column on screen
	cursor         boardCursor

	status  string
	loadErr error

	onLeadSelect  func(id string)
	onRefresh     func()
	onThemeChange func(name string) error
}

func NewModel(chartHeight int) Model {
	if chartHeight <= 0 {
		chartHeight = int(core.DefaultCostChartHeight)
	}
	return Model{
		chartHeight: chartHeight,
		board:       core.PartitionLeads(nil),
	}
}

// SetOnLeadSelect sets the callback invoked with a lead id when its card is activated.
func (m *Model) SetOnLeadSelect(fn func(id string)) {
	m.onLeadSelect = fn
}

// SetOnRefresh sets a callback invoked when the user requests a reload.
func (m *Model) SetOnRefresh(fn func()) {
	m.onRefresh = fn
}

// SetOnThemeChange sets the callback that persists a newly selected theme.
func (m *Model) SetOnThemeChange(fn func(name string) error) {
	m.onThemeChange = fn
}

func (m Model) persistThemeCmd(name string) tea.Cmd {
	if m.onThemeChange == nil {
		return nil
	}
	persist := m.onThemeChange
	return func() tea.Msg {
		err := persist(name)
		if err != nil {
			log.Printf("theme persist: %v", err)
		}
		return themePersistedMsg{err: err}
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.factOffset = clamp(m.factOffset, 0, m.maxFactOffset())
		m.ensureCursorVisible()
		return m, nil

	case SnapshotMsg:
		return m.applySnapshot(core.Snapshot(msg)), nil

	case SnapshotErrorMsg:
		m.loadErr = msg.Err
		return m, nil

	case themePersistedMsg:
		if msg.err != nil {
			m.status = "theme save failed"
		} else {
			m.status = "theme saved"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) applySnapshot(snap core.Snapshot) Model {
	m.snap = snap
	m.board = core.PartitionLeads(snap.Leads)
	m.hasData = true
	m.loadErr = nil
	m.status = ""
	if m.board.Unmapped > 0 {
		log.Printf("pipeline: %d of %d leads have an unknown status and are hidden",
			m.board.Unmapped, len(snap.Leads))
	}

	m.cursor = m.clampCursor(m.cursor)
	m.factOffset = clamp(m.factOffset, 0, m.maxFactOffset())
	m.ensureCursorVisible()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.screen = m.nextScreen(1)
		return m, nil
	case "shift+tab":
		m.screen = m.nextScreen(-1)
		return m, nil
	case "1", "2", "3":
		m.screen = screenTabs[int(msg.String()[0]-'1')]
		return m, nil
	case "t":
		name := CycleTheme()
		m.status = "theme: " + name
		return m, m.persistThemeCmd(name)
	case "r":
		return m.requestRefresh(), nil
	}

	switch m.screen {
	case screenMemory:
		return m.handleMemoryKey(msg)
	case screenPipeline:
		return m.handlePipelineKey(msg)
	}
	return m, nil
}

func (m Model) nextScreen(step int) screenTab {
	n := len(screenTabs)
	return screenTabs[((int(m.screen)+step)%n+n)%n]
}

func (m Model) handleMemoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(1, m.contentHeight()-2)
	switch msg.String() {
	case "down", "j":
		m.factOffset++
	case "up", "k":
		m.factOffset--
	case "pgdown", " ":
		m.factOffset += page
	case "pgup":
		m.factOffset -= page
	case "home", "g":
		m.factOffset = 0
	case "end", "G":
		m.factOffset = m.maxFactOffset()
	}
	m.factOffset = clamp(m.factOffset, 0, m.maxFactOffset())
	return m, nil
}

func (m Model) handlePipelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.cursor.col--
	case "right", "l":
		m.cursor.col++
	case "up", "k":
		m.cursor.row--
	case "down", "j":
		m.cursor.row++
	case "enter":
		return m.activateSelected(), nil
	default:
		return m, nil
	}
	m.cursor = m.clampCursor(m.cursor)
	m.ensureCursorVisible()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		step := 3
		if msg.Button == tea.MouseButtonWheelUp {
			step = -step
		}
		switch m.screen {
		case screenMemory:
			m.factOffset = clamp(m.factOffset+step, 0, m.maxFactOffset())
		case screenPipeline:
			m.boardOffset = clamp(m.boardOffset+step, 0, m.maxBoardOffset())
		}
		return m, nil

	case tea.MouseButtonLeft:
		if m.screen != screenPipeline {
			return m, nil
		}
		y := msg.Y - headerRows + m.boardOffset
		sel, ok := boardHitTest(m.board, m.width, m.boardColOffset, msg.X, y)
		if !ok {
			return m, nil
		}
		m.cursor = sel
		m.ensureCursorVisible()
		return m.activateSelected(), nil
	}
	return m, nil
}

func (m Model) requestRefresh() Model {
	if m.onRefresh != nil {
		m.status = "reloading..."
		m.onRefresh()
	}
	return m
}

// selectedLead returns the lead under the cursor, if the cursor's column has one.
func (m Model) selectedLead() (core.Lead, bool) {
	if m.cursor.col < 0 || m.cursor.col >= len(m.board.Columns) {
		return core.Lead{}, false
	}
	leads := m.board.Columns[m.cursor.col].Leads
	if m.cursor.row < 0 || m.cursor.row >= len(leads) {
		return core.Lead{}, false
	}
	return leads[m.cursor.row], true
}

func (m Model) activateSelected() Model {
	lead, ok := m.selectedLead()
	if !ok {
		return m
	}
	m.status = "opened " + lead.FullName()
	if m.onLeadSelect != nil {
		m.onLeadSelect(lead.ID)
	}
	return m
}

func (m Model) clampCursor(c boardCursor) boardCursor {
	if len(m.board.Columns) == 0 {
		return boardCursor{}
	}
	c.col = clamp(c.col, 0, len(m.board.Columns)-1)
	n := len(m.board.Columns[c.col].Leads)
	c.row = clamp(c.row, 0, max(0, n-1))
	return c
}

func (m *Model) ensureCursorVisible() {
	if m.width > 0 {
		visibleCols := boardVisibleColumns(m.width)
		if m.cursor.col < m.boardColOffset {
			m.boardColOffset = m.cursor.col
		}
		if m.cursor.col >= m.boardColOffset+visibleCols {
			m.boardColOffset = m.cursor.col - visibleCols + 1
		}
		m.boardColOffset = clamp(m.boardColOffset, 0, maxBoardColOffset(m.width))
	}

	visible := m.boardViewRows()
	if visible <= 0 {
		return
	}
	top := cardTopLine(m.cursor)
	if top-boardHeaderRows < m.boardOffset {
		m.boardOffset = top - boardHeaderRows
	}
	if bottom := top + leadCardH; bottom > m.boardOffset+visible {
		m.boardOffset = bottom - visible
	}
	m.boardOffset = clamp(m.boardOffset, 0, m.maxBoardOffset())
}

func (m Model) contentHeight() int {
	// header + status line + help line
	return max(1, m.height-headerRows-2)
}

func (m Model) factLines() []string {
	body := RenderFactList(m.snap.Facts, m.width)
	if len(m.snap.Facts) > 0 {
		body = factListHeader(len(m.snap.Facts)) + "\n\n" + body
	}
	return strings.Split(body, "\n")
}

// factViewRows leaves one row for the scrollbar.
func (m Model) factViewRows() int {
	return max(1, m.contentHeight()-1)
}

func (m Model) maxFactOffset() int {
	if m.width <= 0 {
		return 0
	}
	return max(0, len(m.factLines())-m.factViewRows())
}

func (m Model) boardLines() []string {
	return strings.Split(renderBoard(m.board, m.width, &m.cursor, m.boardColOffset), "\n")
}

// boardViewRows leaves one row for the column scrollbar when not every
// column fits.
func (m Model) boardViewRows() int {
	if m.width > 0 && maxBoardColOffset(m.width) > 0 {
		return max(1, m.contentHeight()-1)
	}
	return m.contentHeight()
}

func (m Model) maxBoardOffset() int {
	if m.width <= 0 {
		return 0
	}
	return max(0, len(m.boardLines())-m.boardViewRows())
}

// ─── View ───────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width < minViewW || m.height < minViewH {
		return dimStyle.Render(fmt.Sprintf("\n  Terminal too small. Resize to at least %d×%d.", minViewW, minViewH))
	}
	if m.showHelp {
		return m.renderHelpOverlay(m.width, m.height)
	}

	w, contentH := m.width, m.contentHeight()

	var content string
	switch {
	case !m.hasData:
		content = "\n  " + dimStyle.Render("Waiting for data...")
	case m.screen == screenMemory:
		content = m.renderMemory(w, contentH)
	case m.screen == screenPipeline:
		content = m.renderPipeline(contentH)
	default:
		content = renderCostChart(m.snap.Costs, m.chartHeight, w, contentH)
	}

	return m.renderHeader(w) + "\n" +
		padToSize(content, contentH) + "\n" +
		m.renderStatusLine(w) + "\n" +
		m.renderHelpLine(w)
}

func (m Model) renderMemory(w, h int) string {
	lines := m.factLines()
	rows := m.factViewRows()
	offset := clamp(m.factOffset, 0, max(0, len(lines)-rows))
	end := min(len(lines), offset+rows)

	out := strings.Join(lines[offset:end], "\n")
	if bar := renderVerticalScrollBarLine(w, offset, rows, len(lines)); bar != "" {
		out = padToSize(out, h-1) + "\n" + bar
	}
	return out
}

func (m Model) renderPipeline(h int) string {
	lines := m.boardLines()
	rows := m.boardViewRows()
	offset := clamp(m.boardOffset, 0, max(0, len(lines)-rows))
	end := min(len(lines), offset+rows)

	out := strings.Join(lines[offset:end], "\n")
	visibleCols := boardVisibleColumns(m.width)
	if bar := renderHorizontalScrollBarLine(m.width, m.boardColOffset, visibleCols, len(m.board.Columns)); bar != "" {
		out = padToSize(out, h-1) + "\n" + bar
	}
	return out
}

func (m Model) renderHeader(w int) string {
	brand := headerBrandStyle.Render(" ◆ opsboard")

	var tabs []string
	for i, s := range screenTabs {
		label := fmt.Sprintf("%d:%s", i+1, screenLabelByTab[s])
		if s == m.screen {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	left := brand + "  " + strings.Join(tabs, "")
	right := dimStyle.Render(ThemeName() + " ")
	gap := max(1, w-lipgloss.Width(left)-lipgloss.Width(right))

	sep := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("━", w))
	return fitAnsiWidth(left+strings.Repeat(" ", gap)+right, w) + "\n" + sep
}

func (m Model) renderStatusLine(w int) string {
	var parts []string
	if m.loadErr != nil {
		parts = append(parts, errorStyle.Render("load failed: "+m.loadErr.Error()))
	}
	if m.screen == screenPipeline && m.hasData {
		parts = append(parts, labelStyle.Render(boardStatusLine(m.board)))
	}
	if m.status != "" {
		parts = append(parts, dimStyle.Render(m.status))
	}
	return fitAnsiWidth(" "+strings.Join(parts, dimStyle.Render(" · ")), w)
}

func (m Model) renderHelpLine(w int) string {
	hints := []keyHelp{{"tab", "screens"}, {"r", "reload"}, {"t", "theme"}, {"?", "help"}, {"q", "quit"}}
	switch m.screen {
	case screenMemory:
		hints = append([]keyHelp{{"j/k", "scroll"}}, hints...)
	case screenPipeline:
		hints = append([]keyHelp{{"←→↑↓", "move"}, {"enter", "open"}}, hints...)
	}
	var parts []string
	for _, h := range hints {
		parts = append(parts, helpKeyStyle.Render(h.key)+" "+helpStyle.Render(h.desc))
	}
	return fitAnsiWidth(" "+strings.Join(parts, "  "), w)
}

func padToSize(content string, h int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}
