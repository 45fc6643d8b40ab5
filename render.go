package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors []lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Classic Blocks",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		PieceColors: []lipgloss.Color{"51", "226", "93", "46", "196", "21", "208"},
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Forest CRT",
		BorderColor: lipgloss.Color("22"),
		TextColor:   lipgloss.Color("120"),
		AccentColor: lipgloss.Color("34"),
		PieceColors: []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
	{
		Name:        "Sunset Arcade",
		BorderColor: lipgloss.Color("209"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("214"),
		PieceColors: []lipgloss.Color{"202", "208", "214", "172", "203", "166", "130"},
	},
	{
		Name:        "Retro LCD",
		BorderColor: lipgloss.Color("100"),
		TextColor:   lipgloss.Color("113"),
		AccentColor: lipgloss.Color("149"),
		PieceColors: []lipgloss.Color{"58", "64", "65", "71", "72", "78", "107"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("BLOCKS", menuItems, m.menuIndex, "Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewThemes(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Name)
	}
	preview := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle(theme).Render("Theme Preview"),
		renderPreviewPieceGrid(theme),
	)
	menu := renderMenu("Themes", items, m.themeIndex, "Enter to apply, Esc to back", theme)
	content := lipgloss.JoinVertical(lipgloss.Left, preview, "", menu)
	return center(m.width, m.height, content)
}

func renderPreviewPieceGrid(theme Theme) string {
	rowTop := renderPreviewPieceRow(theme, []Kind{KindI, KindO, KindT, KindS})
	rowBottom := renderPreviewPieceRow(theme, []Kind{KindZ, KindJ, KindL})
	return lipgloss.JoinVertical(lipgloss.Left, rowTop, rowBottom)
}

func renderPreviewPieceRow(theme Theme, kinds []Kind) string {
	items := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		piece := lipgloss.NewStyle().MarginRight(1).Render(renderMiniPiece(kind, theme, 1))
		items = append(items, piece)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		state := "OFF"
		switch i {
		case 0:
			if m.config.Sound {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 1:
			if m.config.Music {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 2:
			items = append(items, fmt.Sprintf("%s: %d%%", item, clampVolumePercent(m.config.Volume)))
		case 3:
			if m.config.Shadow {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 4:
			items = append(items, fmt.Sprintf("%s: %dx", item, clampScale(m.config.Scale)))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	scale := clampScale(m.config.Scale)
	minWidth, minHeight := minGameSize(scale)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	board := renderBoard(m.game, theme, scale, m.config.Shadow)
	info := renderInfo(m.game, theme)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	if m.width < minWidth+24 {
		content = lipgloss.JoinVertical(lipgloss.Left, board, info)
	}
	return center(m.width, m.height, content)
}

// renderBoard draws the board through the read-only query surface: the
// settled grid, the active footprint and the drop row for the shadow.
func renderBoard(g *Game, theme Theme, scale int, showShadow bool) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellEmpty := lipgloss.NewStyle()
	cellText := strings.Repeat(" ", cellWidth(scale))
	rows := g.Board().Rows()
	cols := g.Board().Cols()

	scratch := make([][]Cell, rows)
	for r := range scratch {
		scratch[r] = make([]Cell, cols)
		for c := range scratch[r] {
			scratch[r][c] = g.Board().At(r, c)
		}
	}
	ghost := make([][]bool, rows)
	for r := range ghost {
		ghost[r] = make([]bool, cols)
	}
	grid, row, col := g.ActivePiece().Footprint()
	if g.State() != GameOver {
		if dropRow := g.DropRow(); showShadow && dropRow != row {
			for r := 0; r < grid.Rows(); r++ {
				for c := 0; c < grid.Cols(); c++ {
					br := dropRow + r
					bc := col + c
					if grid.At(r, c) == Empty || br < 0 || br >= rows || bc < 0 || bc >= cols {
						continue
					}
					if scratch[br][bc] == Empty {
						ghost[br][bc] = true
					}
				}
			}
		}
		for r := 0; r < grid.Rows(); r++ {
			for c := 0; c < grid.Cols(); c++ {
				br := row + r
				bc := col + c
				if grid.At(r, c) == Empty || br < 0 || br >= rows || bc < 0 || bc >= cols {
					continue
				}
				scratch[br][bc] = grid.At(r, c)
			}
		}
	}

	pieceColor := theme.PieceColors[int(g.ActivePiece().Kind())%len(theme.PieceColors)]
	ghostText := strings.Repeat(".", cellWidth(scale))
	ghostStyle := lipgloss.NewStyle().Foreground(pieceColor).Faint(true)

	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", cols*cellWidth(scale)) + "+"))
	b.WriteString("\n")
	for r := 0; r < rows; r++ {
		for repeat := 0; repeat < scale; repeat++ {
			b.WriteString(border.Render("|"))
			for c := 0; c < cols; c++ {
				val := scratch[r][c]
				if val == Empty {
					if ghost[r][c] {
						b.WriteString(ghostStyle.Render(ghostText))
					} else {
						b.WriteString(cellEmpty.Render(cellText))
					}
					continue
				}
				color := theme.PieceColors[(int(val)-1)%len(theme.PieceColors)]
				b.WriteString(lipgloss.NewStyle().Background(color).Render(cellText))
			}
			b.WriteString(border.Render("|"))
			b.WriteString("\n")
		}
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", cols*cellWidth(scale)) + "+"))
	return b.String()
}

func renderInfo(g *Game, theme Theme) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", g.Score())))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", g.Lines())))
	b.WriteString("\n\n")
	keys := []string{
		"Arrows/HJKL: move",
		"X or Up: rotate",
		"Space: hard drop",
		"P: pause",
		"R: restart",
		"Q: menu",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	switch g.State() {
	case Paused:
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("Paused")))
	case GameOver:
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("GAME OVER")))
		b.WriteString("\n")
		b.WriteString(pad.Render(helpStyle(theme).Render("R to restart")))
	}
	return b.String()
}

func renderMiniPiece(kind Kind, theme Theme, scale int) string {
	grid := baseShape(kind)
	cellEmpty := lipgloss.NewStyle()
	cellText := strings.Repeat(" ", cellWidth(scale))
	color := theme.PieceColors[int(kind)%len(theme.PieceColors)]
	filled := lipgloss.NewStyle().Background(color)
	var b strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		for repeat := 0; repeat < scale; repeat++ {
			for c := 0; c < grid.Cols(); c++ {
				if grid.At(r, c) == Empty {
					b.WriteString(cellEmpty.Render(cellText))
					continue
				}
				b.WriteString(filled.Render(cellText))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func minGameSize(scale int) (int, int) {
	width := boardCols*cellWidth(scale) + 4
	height := boardRows*scale + 4
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func clampScale(value int) int {
	if value < 1 {
		return 1
	}
	if value > 3 {
		return 3
	}
	return value
}

func clampVolumePercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func cellWidth(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return 2 * scale
}

func renderMenu(title string, items []string, selected int, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item)
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for i, line := range lines {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle(theme).Render(line)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(lineStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}
