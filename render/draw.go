package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/level"
	"github.com/lixenwraith/munchies/session"
	"github.com/lixenwraith/munchies/vmath"
)

// ArenaSize returns the arena's cell dimensions including the border
func (r *Renderer) ArenaSize() (w, h int) {
	return int(r.mapSize*constants.CellsPerUnitX) + 2, int(r.mapSize*constants.CellsPerUnitZ) + 2
}

// ArenaToScreen maps a ground point to a screen cell, false when outside the arena
func (r *Renderer) ArenaToScreen(p vmath.Vec3F) (x, y int, ok bool) {
	half := r.mapSize / 2
	w, h := r.ArenaSize()
	x = 1 + int(math.Floor((p.X+half)*constants.CellsPerUnitX))
	y = constants.HUDRows + 1 + int(math.Floor((p.Z+half)*constants.CellsPerUnitZ))
	ok = x >= 1 && x <= w-2 && y >= constants.HUDRows+1 && y <= constants.HUDRows+h-2
	return x, y, ok
}

// ScreenToArena maps a screen cell to the ground point at its centre
func (r *Renderer) ScreenToArena(x, y int) (vmath.Vec3F, bool) {
	half := r.mapSize / 2
	w, h := r.ArenaSize()
	if x < 1 || x > w-2 || y < constants.HUDRows+1 || y > constants.HUDRows+h-2 {
		return vmath.Vec3F{}, false
	}
	return vmath.Vec3F{
		X: (float64(x-1)+0.5)/constants.CellsPerUnitX - half,
		Z: (float64(y-constants.HUDRows-1)+0.5)/constants.CellsPerUnitZ - half,
	}, true
}

// Draw renders one frame for the given session view
func (r *Renderer) Draw(v session.View) {
	r.screen.Clear()

	r.drawArena()
	r.drawObstacles()
	if v.State != session.StateMenu || v.Editing {
		r.drawSprites()
		r.drawExplosions()
	}
	r.drawHUD(v)

	switch {
	case v.Editing:
		r.drawEditorBar(v)
	case v.State == session.StateMenu:
		r.drawMenu(v)
	case v.State == session.StateGameOver && r.hud.gameOver:
		r.drawGameOver()
	case v.Paused:
		r.drawCentered(r.arenaMidRow(), " PAUSED  [p] resume ", tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbStatusText).Bold(true))
	}

	if v.Notice != "" {
		_, h := r.ArenaSize()
		r.drawText(1, constants.HUDRows+h, v.Notice, tcell.StyleDefault.Foreground(RgbNotice))
	}

	r.screen.Show()
}

func (r *Renderer) drawArena() {
	w, h := r.ArenaSize()
	top := constants.HUDRows
	ground := tcell.StyleDefault.Background(RgbGround)
	border := tcell.StyleDefault.Foreground(RgbBorder).Background(RgbBackground)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			edgeX := x == 0 || x == w-1
			edgeY := y == 0 || y == h-1
			switch {
			case edgeX && edgeY:
				r.screen.SetContent(x, top+y, '+', nil, border)
			case edgeY:
				r.screen.SetContent(x, top+y, '-', nil, border)
			case edgeX:
				r.screen.SetContent(x, top+y, '|', nil, border)
			default:
				r.screen.SetContent(x, top+y, ' ', nil, ground)
			}
		}
	}
}

func (r *Renderer) drawObstacles() {
	for _, o := range r.obstacles {
		switch o.Kind {
		case entity.ObstacleHole:
			r.fillDisc(o.Position, max(o.Radius, constants.HoleRadius), tcell.StyleDefault.Background(RgbHole))
		case entity.ObstacleCrate:
			r.plot(o.Position, '▣', tcell.StyleDefault.Foreground(RgbCrate).Background(RgbGround))
		case entity.ObstacleTree:
			r.plot(o.Position, '♣', tcell.StyleDefault.Foreground(RgbTree).Background(RgbGround))
		}
	}
}

// fillDisc paints every arena cell whose centre lies within radius of c
func (r *Renderer) fillDisc(c vmath.Vec3F, radius float64, style tcell.Style) {
	w, h := r.ArenaSize()
	for y := constants.HUDRows + 1; y <= constants.HUDRows+h-2; y++ {
		for x := 1; x <= w-2; x++ {
			p, _ := r.ScreenToArena(x, y)
			if vmath.V3FDist(p, c) <= radius {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) plot(p vmath.Vec3F, glyph rune, style tcell.Style) {
	if x, y, ok := r.ArenaToScreen(p); ok {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *Renderer) drawSprites() {
	for _, s := range r.sortedSprites() {
		glyph := s.glyph
		// Scaled characters change case so chaos size is visible in a terminal
		if s.kind == entity.KindCharacter && glyph != '@' {
			switch {
			case s.transform.Scale > 1:
				glyph = []rune(strings.ToUpper(string(glyph)))[0]
			case s.transform.Scale < 1:
				glyph = []rune(strings.ToLower(string(glyph)))[0]
			}
		}
		r.plot(s.transform.Position, glyph, s.style)

		if s.hat {
			if x, y, ok := r.ArenaToScreen(s.transform.Position); ok && y > constants.HUDRows+1 {
				r.screen.SetContent(x, y-1, '^', nil, s.style)
			}
		}
	}
}

func (r *Renderer) drawExplosions() {
	for _, e := range r.explosions {
		style := tcell.StyleDefault.Foreground(explosionColor(e.opacity)).Background(RgbGround)
		r.plot(e.pos, '*', style)
	}
}

func (r *Renderer) drawHUD(v session.View) {
	base := tcell.StyleDefault.Background(RgbBackground)
	x := 0
	x = r.drawText(x, 0, fmt.Sprintf(" ⏱ %2d ", r.hud.timer), base.Foreground(RgbTimer).Bold(true))
	x = r.drawText(x, 0, fmt.Sprintf(" Score %d ", r.hud.score), base.Foreground(RgbStatusText))
	x = r.drawText(x, 0, fmt.Sprintf(" Coins %d ", v.Profile.Coins), base.Foreground(RgbCoins))
	r.drawStaminaBar(x+1, 0)
	if v.Muted {
		r.drawText(x+constants.StaminaBarWidth+2, 0, " muted ", base.Foreground(RgbNotice))
	}

	if r.hud.alertOn {
		msg := fmt.Sprintf(" %s! %s ", r.hud.alertName, r.hud.alertDesc)
		r.drawText(0, 1, msg, tcell.StyleDefault.Background(RgbAlertBg).Foreground(RgbStatusText).Bold(true))
	}
}

func (r *Renderer) drawStaminaBar(x, y int) {
	filled := 0
	if r.hud.maxStamina > 0 {
		filled = int(math.Round(r.hud.stamina / r.hud.maxStamina * constants.StaminaBarWidth))
	}
	for i := 0; i < constants.StaminaBarWidth; i++ {
		style := tcell.StyleDefault.Background(RgbStaminaBg)
		if i < filled {
			style = style.Background(RgbStamina)
		}
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) drawMenu(v session.View) {
	panel := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbStatusText)
	row := constants.HUDRows + 3

	r.drawCentered(row, " MUNCHIES  Chaos Edition ", panel.Bold(true).Foreground(RgbCoins))
	row += 2
	r.drawCentered(row, fmt.Sprintf(" < %s >  [,] [.] ", v.Profile.SelectedCharacter), panel.Foreground(VariantColor(v.Profile.SelectedCharacter)))
	row += 2

	for i, hat := range constants.Hats {
		status := fmt.Sprintf("%d coins", hat.Price)
		switch {
		case v.Profile.EquippedHat == hat.ID:
			status = "equipped"
		case v.Profile.HasHat(hat.ID):
			status = "owned"
		}
		r.drawCentered(row, fmt.Sprintf(" [%d] %-14s %-10s ", i+1, hat.Name, status), panel)
		row++
	}
	row++
	r.drawCentered(row, " [Enter] play  [e] editor  [v] mute  [q] quit ", panel)
}

func (r *Renderer) drawGameOver() {
	s := r.hud.summary
	panel := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbStatusText)
	row := r.arenaMidRow() - 3

	r.drawCentered(row, " GAME OVER ", panel.Bold(true).Foreground(RgbNotice))
	r.drawCentered(row+2, fmt.Sprintf(" Final score: %d ", s.FinalScore), panel)
	r.drawCentered(row+3, fmt.Sprintf(" Fruits collected: %d ", s.FruitsCollected), panel)
	r.drawCentered(row+4, fmt.Sprintf(" Coins earned: %d ", s.CoinsEarned), panel.Foreground(RgbCoins))
	r.drawCentered(row+5, fmt.Sprintf(" Total coins: %d ", s.TotalCoins), panel.Foreground(RgbCoins))
	r.drawCentered(row+7, " [r] play again  [m] menu ", panel)
}

func (r *Renderer) drawEditorBar(v session.View) {
	_, h := r.ArenaSize()
	style := tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbStatusText)
	x := 0
	for _, t := range level.Tools {
		label := fmt.Sprintf(" %s ", t)
		s := style
		if t == v.Tool {
			s = s.Reverse(true)
		}
		x = r.drawText(x, constants.HUDRows+h+1, label, s)
	}
	r.drawText(x+1, constants.HUDRows+h+1, fmt.Sprintf("%d objects  [Tab] tool  ^S save  ^L load  [Esc] close", v.Obstacles), style)
}

func (r *Renderer) arenaMidRow() int {
	_, h := r.ArenaSize()
	return constants.HUDRows + h/2
}

// drawCentered draws text centred over the arena
func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.ArenaSize()
	x := max((w-runewidth.StringWidth(s))/2, 0)
	r.drawText(x, y, s, style)
}

// drawText writes s left to right honouring wide runes, returns the next column
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}
