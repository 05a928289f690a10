package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/minefield/internal/domain"
	m "github.com/mouse-blink/minefield/internal/model"
)

// keyMap holds the play screen key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Mark   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Mark, k.Quit}
}

// FullHelp returns all bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Mark, k.Quit},
	}
}

var playKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "reveal"),
	),
	Mark: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mark"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

	coveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	markStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	wonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	lostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// Classic minesweeper digit palette.
	hintColors = map[rune]lipgloss.Color{
		'1': lipgloss.Color("4"),
		'2': lipgloss.Color("2"),
		'3': lipgloss.Color("1"),
		'4': lipgloss.Color("5"),
		'5': lipgloss.Color("3"),
		'6': lipgloss.Color("6"),
		'7': lipgloss.Color("7"),
		'8': lipgloss.Color("8"),
	}
)

// playModel is the Bubble Tea model for interactive play. The board can
// be far larger than the screen, so the view is a window that follows
// the cursor.
type playModel struct {
	game    *domain.Game
	keys    keyMap
	help    help.Model
	cursorX int
	cursorY int
	width   int
	height  int
}

func newPlayModel(game *domain.Game) playModel {
	return playModel{
		game: game,
		keys: playKeys,
		help: help.New(),
	}
}

// Init implements tea.Model.
func (p playModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.help.Width = msg.Width

		return p, nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, p.keys.Quit) {
		return p, tea.Quit
	}

	// Once the game is over, any key leaves the screen.
	if p.game.State().Terminal() {
		return p, tea.Quit
	}

	board := p.game.Board()

	switch {
	case key.Matches(msg, p.keys.Up):
		if p.cursorY > 0 {
			p.cursorY--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursorY < board.Rows()-1 {
			p.cursorY++
		}
	case key.Matches(msg, p.keys.Left):
		if p.cursorX > 0 {
			p.cursorX--
		}
	case key.Matches(msg, p.keys.Right):
		if p.cursorX < board.Cols()-1 {
			p.cursorX++
		}
	case key.Matches(msg, p.keys.Reveal):
		p.game.Reveal(p.cursorX, p.cursorY)
	case key.Matches(msg, p.keys.Mark):
		p.game.Mark(p.cursorX, p.cursorY)
	}

	return p, nil
}

// View implements tea.Model.
func (p playModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Minefield"))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(p.statusLine()))
	sb.WriteString("\n\n")
	sb.WriteString(p.boardView())
	sb.WriteString("\n")
	sb.WriteString(p.help.View(p.keys))

	return sb.String()
}

// statusLine reports mines left, the 1-based cursor position and, once
// the game ends, the outcome.
func (p *playModel) statusLine() string {
	status := fmt.Sprintf("mines left: %d   cell %d %d",
		p.game.Remaining(), p.cursorX+1, p.cursorY+1)

	switch p.game.State() {
	case m.Won:
		return status + "   " + wonStyle.Render("all mines accounted for, you win! (any key)")
	case m.Lost:
		return status + "   " + lostStyle.Render("boom, that was a mine (any key)")
	default:
		return status
	}
}

// boardView renders the visible window of the board, one cell as a rune
// plus a space, with the cursor cell highlighted.
func (p *playModel) boardView() string {
	board := p.game.Board()

	visibleRows := p.height - 5 // title, status, blank, blank, help
	if visibleRows < 1 {
		visibleRows = 1
	}

	if visibleRows > board.Rows() {
		visibleRows = board.Rows()
	}

	visibleCols := p.width / 2
	if visibleCols < 1 {
		visibleCols = 1
	}

	if visibleCols > board.Cols() {
		visibleCols = board.Cols()
	}

	originX := windowOrigin(p.cursorX, board.Cols(), visibleCols)
	originY := windowOrigin(p.cursorY, board.Rows(), visibleRows)

	var sb strings.Builder

	for y := originY; y < originY+visibleRows; y++ {
		for x := originX; x < originX+visibleCols; x++ {
			r := board.Cell(x, y).Rune()

			if x == p.cursorX && y == p.cursorY {
				sb.WriteString(cursorStyle.Render(string(r)))
			} else {
				sb.WriteString(cellStyle(r).Render(string(r)))
			}

			if x < originX+visibleCols-1 {
				sb.WriteByte(' ')
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

// windowOrigin centers the window on the cursor, clamped to the board.
func windowOrigin(cursor, size, visible int) int {
	if visible >= size {
		return 0
	}

	origin := cursor - visible/2
	if origin < 0 {
		return 0
	}

	if origin > size-visible {
		return size - visible
	}

	return origin
}

func cellStyle(r rune) lipgloss.Style {
	switch r {
	case '.':
		return coveredStyle
	case '*':
		return markStyle
	case '/':
		return emptyStyle
	default:
		if color, ok := hintColors[r]; ok {
			return lipgloss.NewStyle().Foreground(color).Bold(true)
		}

		return emptyStyle
	}
}
