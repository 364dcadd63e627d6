package tilematch

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
)

const (
	cellWidth = 4 // "[🐶]" or "[A] "
	hudHeight = 3
	minWidth  = 48
	minHeight = 20
)

// layout holds the screen positions computed for the active level.
type layout struct {
	boardX, boardY int
	slotX, slotY   int
	statsX         int
	noticeY        int
	helpY          int
	tooSmall       bool
}

func computeLayout(level engine.Level, capacity, screenW, screenH int) layout {
	boardW := level.GridSize * cellWidth
	slotW := capacity*cellWidth + 2
	statsW := 16

	l := layout{}
	l.tooSmall = screenW < max(minWidth, max(boardW+statsW, slotW)) ||
		screenH < max(minHeight, hudHeight+level.GridSize+7)

	l.boardX = max(1, (screenW-boardW-statsW)/2)
	l.boardY = hudHeight
	l.statsX = l.boardX + boardW + 3
	l.slotX = max(1, (screenW-slotW)/2+1)
	l.slotY = l.boardY + level.GridSize + 2
	l.noticeY = l.slotY + 2
	l.helpY = screenH - 1
	return l
}

// boardCellAt maps a screen cell to a board coordinate.
func (l layout) boardCellAt(x, y, size int) (engine.Coord, bool) {
	board := core.NewRect(l.boardX, l.boardY, size*cellWidth, size)
	if !board.Contains(x, y) {
		return engine.Coord{}, false
	}
	return engine.Coord{Row: y - l.boardY, Col: (x - l.boardX) / cellWidth}, true
}

// slotIndexAt maps a screen cell to a slot position.
func (l layout) slotIndexAt(x, y, capacity int) (int, bool) {
	slot := core.NewRect(l.slotX, l.slotY, capacity*cellWidth, 1)
	if !slot.Contains(x, y) {
		return 0, false
	}
	return (x - l.slotX) / cellWidth, true
}

// stackColors tints tile brackets by how many tiles are stacked at a coordinate.
var stackColors = []core.Color{
	core.ColorGray,
	core.ColorWhite,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorRed,
}

func stackColor(height int) core.Color {
	return stackColors[core.Clamp(height, 0, len(stackColors)-1)]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.fatal != nil {
		g.drawOverlay(dst, "Level unavailable", g.fatal.Error(), "R: retry | Q: quit")
		return
	}
	s := g.session()
	if s == nil {
		return
	}
	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	snap := s.Snapshot()
	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap)
	g.renderStats(dst, snap)
	g.renderSlot(dst, snap)

	if g.notice != "" {
		dst.DrawTextCenteredColor(g.layout.noticeY, g.notice, core.ColorBrightYellow)
	}
	dst.DrawTextColor(1, g.layout.helpY, g.Controls(), core.ColorGray)

	switch snap.Status {
	case engine.StatusWon:
		g.drawOverlay(dst, "Level Cleared!", fmt.Sprintf("%d moves", snap.Moves), "Enter: next level | R: replay")
	case engine.StatusLost:
		g.drawOverlay(dst, "Slot Full!", fmt.Sprintf("Level %d", snap.Level.ID), "Enter: try again | N: skip")
	}
}

// renderHUD draws the title bar.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" Tile Match | %s/%d | %s | Moves: %d | Theme: %s",
		snap.Level.Name, engine.LevelCount(), snap.Level.Pattern, snap.Moves, snap.Theme)
	dst.DrawTextColor(0, 0, hud, core.ColorCyan)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderBoard draws the top tile of every stack. Empty pattern cells show a
// dot so the silhouette stays visible as the board clears.
func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot) {
	heights := make(map[engine.Coord]int)
	tops := make(map[engine.Coord]engine.Tile)
	for _, t := range snap.Tiles {
		if !t.OnBoard() {
			continue
		}
		heights[t.Pos]++
		if top, ok := tops[t.Pos]; !ok || t.Layer > top.Layer {
			tops[t.Pos] = t
		}
	}

	for _, c := range g.ctrl.Session().Coords() {
		x := g.layout.boardX + c.Col*cellWidth
		y := g.layout.boardY + c.Row
		cursor := g.focus == FocusBoard && c == g.cursor

		top, ok := tops[c]
		if !ok {
			color := core.ColorGray
			if cursor {
				color = core.ColorBrightYellow
			}
			dst.DrawTextColor(x, y, cursorOr(cursor, " · "), color)
			continue
		}

		symbol, symColor := top.Symbol, core.ColorDefault
		if snap.Reveal != nil && snap.Reveal.DisplayID == top.ID {
			symbol, symColor = snap.Reveal.Symbol, core.ColorBrightCyan
		}
		g.drawTile(dst, x, y, symbol, symColor, g.bracketStyle(top.ID, heights[c], cursor, snap))
	}

	// Cursor on an empty cell outside the pattern
	if g.focus == FocusBoard && !slices.Contains(g.ctrl.Session().Coords(), g.cursor) {
		x := g.layout.boardX + g.cursor.Col*cellWidth
		dst.DrawTextColor(x, g.layout.boardY+g.cursor.Row, ">  <", core.ColorBrightYellow)
	}
}

type bracket struct {
	open, close rune
	color       core.Color
}

// bracketStyle picks the tile frame: cursor, pending match, blocking hint or
// the stack height color.
func (g *Game) bracketStyle(id, height int, cursor bool, snap engine.Snapshot) bracket {
	switch {
	case cursor && snap.PeekArmed:
		return bracket{'?', '?', core.ColorBrightCyan}
	case cursor:
		return bracket{'>', '<', core.ColorBrightYellow}
	case slices.Contains(g.blocking, id):
		return bracket{'!', '!', core.ColorBrightRed}
	}
	return bracket{'[', ']', stackColor(height)}
}

func (g *Game) drawTile(dst *core.Screen, x, y int, symbol string, symColor core.Color, b bracket) {
	dst.SetColor(x, y, b.open, b.color)
	w := dst.DrawTextColor(x+1, y, symbol, symColor)
	dst.SetColor(x+1+w, y, b.close, b.color)
}

func cursorOr(cursor bool, s string) string {
	if cursor {
		return ">·<"
	}
	return s
}

// renderStats draws allowances and slot usage next to the board.
func (g *Game) renderStats(dst *core.Screen, snap engine.Snapshot) {
	x, y := g.layout.statsX, g.layout.boardY
	onBoard := 0
	for _, t := range snap.Tiles {
		if t.OnBoard() {
			onBoard++
		}
	}

	peek := fmt.Sprintf("Peeks:    %d", snap.PeeksLeft)
	peekColor := core.ColorWhite
	switch {
	case snap.PeekArmed:
		peek += " *"
		peekColor = core.ColorBrightCyan
	case !snap.CanPeek:
		peekColor = core.ColorGray
	}

	dst.DrawTextColor(x, y, fmt.Sprintf("Layers:   %d", snap.Level.Layers), core.ColorWhite)
	dst.DrawTextColor(x, y+1, fmt.Sprintf("Tiles:    %d", onBoard), core.ColorWhite)
	dst.DrawTextColor(x, y+2, fmt.Sprintf("Slot:     %d/%d", len(snap.Slot), snap.SlotCapacity), core.ColorWhite)
	dst.DrawTextColor(x, y+4, fmt.Sprintf("Shuffles: %d", snap.ShufflesLeft), core.ColorWhite)
	dst.DrawTextColor(x, y+5, peek, peekColor)
	if snap.Combo != "" {
		dst.DrawTextColor(x, y+7, "Combo! "+snap.Combo, core.ColorBrightGreen)
	}
}

// renderSlot draws the slot box. Tiles announced for removal are green,
// hand-picked tiles yellow.
func (g *Game) renderSlot(dst *core.Screen, snap engine.Snapshot) {
	box := core.NewRect(g.layout.slotX-1, g.layout.slotY-1, snap.SlotCapacity*cellWidth+2, 3)
	boxColor := core.ColorGray
	if len(snap.Slot) >= snap.SlotCapacity-1 {
		boxColor = core.ColorRed
	}
	dst.DrawBox(box, boxColor)

	for i := 0; i < snap.SlotCapacity; i++ {
		x := g.layout.slotX + i*cellWidth
		cursor := g.focus == FocusSlot && i == g.slotCursor
		if i >= len(snap.Slot) {
			dst.DrawTextColor(x, g.layout.slotY, " · ", core.ColorGray)
			continue
		}

		t := snap.Slot[i]
		b := bracket{'[', ']', core.ColorWhite}
		switch {
		case cursor:
			b = bracket{'>', '<', core.ColorBrightYellow}
		case slices.Contains(snap.PendingMatch, t.ID):
			b = bracket{'*', '*', core.ColorBrightGreen}
		case slices.Contains(snap.Selected, t.ID):
			b = bracket{'(', ')', core.ColorYellow}
		}
		g.drawTile(dst, x, g.layout.slotY, t.Symbol, core.ColorDefault, b)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(boxX+2, boxY+1+i, line, color)
	}
}
