package sokoban

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	hudHeight    = 3 // Title, status, blank
	footerHeight = 2
)

// Glyphs are the characters used to draw a level.
type Glyphs struct {
	Wall         rune
	Floor        rune
	Target       rune
	Box          rune
	BoxOnTarget  rune
	PlayerUp     rune
	PlayerDown   rune
	PlayerLeft   rune
	PlayerRight  rune
	PlayerSolved rune
	CellWidth    int // Terminal columns per grid cell (1 or 2)
}

// DefaultGlyphs returns the built-in glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Wall:         '#',
		Floor:        ' ',
		Target:       '.',
		Box:          '$',
		BoxOnTarget:  '*',
		PlayerUp:     '▲',
		PlayerDown:   '▼',
		PlayerLeft:   '◀',
		PlayerRight:  '▶',
		PlayerSolved: '☺',
		CellWidth:    2,
	}
}

// Player returns the player glyph for a facing.
func (gl Glyphs) Player(f Facing) rune {
	switch f {
	case FacingUp:
		return gl.PlayerUp
	case FacingLeft:
		return gl.PlayerLeft
	case FacingRight:
		return gl.PlayerRight
	case FacingSolved:
		return gl.PlayerSolved
	default:
		return gl.PlayerDown
	}
}

func (gl Glyphs) cellWidth() int {
	if gl.CellWidth < 1 {
		return 1
	}
	return gl.CellWidth
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	lvl := g.session.Level()
	cw := g.glyphs.cellWidth()
	boardW := lvl.Width() * cw
	boardH := lvl.Height()

	if boardW > dst.Width() || boardH+hudHeight+footerHeight > dst.Height() {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	board := area.CenterIn(boardW, boardH)
	g.renderBoard(dst, board.X, board.Y)

	if len(g.message) > 0 {
		g.renderSolved(dst)
	}

	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := fmt.Sprintf("SOKOBAN · %s (%d/%d)", g.session.Level().Name(), g.index+1, len(g.set))
	dst.DrawTextCentered(0, title, platformcore.ColorBrightYellow)

	status := StatusLine(g.session.Board())
	if best, ok := g.session.Board().HighScore(); ok {
		status += fmt.Sprintf("  best: %d", best)
	}
	dst.DrawTextCentered(1, status, platformcore.ColorGray)
}

func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	lvl := g.session.Level()
	cw := g.glyphs.cellWidth()

	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			c := core.C(x, y)
			r, color := g.cellGlyph(lvl, c)
			sx := ox + x*cw
			dst.SetCell(sx, oy+y, r, color)
			for i := 1; i < cw; i++ {
				fill := ' '
				if lvl.TileAt(c) == core.TileWall {
					fill = r
				}
				dst.SetCell(sx+i, oy+y, fill, color)
			}
		}
	}
}

func (g *Game) cellGlyph(lvl *core.Level, c core.Coord) (rune, platformcore.Color) {
	tile := lvl.TileAt(c)

	switch {
	case c == lvl.Player():
		if g.facing == FacingSolved {
			return g.glyphs.Player(g.facing), platformcore.ColorBrightGreen
		}
		return g.glyphs.Player(g.facing), platformcore.ColorBrightCyan
	case lvl.HasBoxAt(c) && tile == core.TileTarget:
		return g.glyphs.BoxOnTarget, platformcore.ColorBrightGreen
	case lvl.HasBoxAt(c):
		return g.glyphs.Box, platformcore.ColorOrange
	}

	switch tile {
	case core.TileWall:
		return g.glyphs.Wall, platformcore.ColorGray
	case core.TileTarget:
		return g.glyphs.Target, platformcore.ColorYellow
	case core.TileFloor:
		return g.glyphs.Floor, platformcore.ColorDefault
	default:
		return ' ', platformcore.ColorDefault
	}
}

func (g *Game) renderSolved(dst *platformcore.Screen) {
	w := 0
	for _, line := range g.message {
		w = max(w, utf8.RuneCountInString(line))
	}
	w += 4
	h := len(g.message) + 2

	box := dst.Bounds().CenterIn(w, h)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorBrightGreen)
	for i, line := range g.message {
		color := platformcore.ColorWhite
		if i == 0 {
			color = platformcore.ColorBrightGreen
		}
		x := box.X + (w-utf8.RuneCountInString(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := dst.Height() - 1

	var hint string
	switch {
	case g.session.Solved():
		hint = "Enter: next level  R: play again  Esc: menu"
	case g.session.Board().Moves() == 0:
		hint = StartMessage
	default:
		hint = "Arrows/WASD: move  R: restart  Esc: menu  Q: quit"
	}
	dst.DrawTextCentered(y, hint, platformcore.ColorGray)
}
