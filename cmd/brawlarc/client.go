package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ashenfell/brawlarc/audio"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/data"
	"github.com/ashenfell/brawlarc/engine"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

const frameInterval = time.Second / 60

var (
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss       = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// Client owns the terminal: it forwards key presses as intents, drives the
// scheduler from wall time and draws the latest snapshot. It never touches
// simulation state directly.
type Client struct {
	screen    tcell.Screen
	scheduler *engine.Scheduler
	intents   *engine.IntentQueue
	cues      *audio.Cues

	mu            sync.Mutex
	dirX, dirY    int
	quitRequested bool
}

func NewClient(scheduler *engine.Scheduler, intents *engine.IntentQueue, cues *audio.Cues) (*Client, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Client{
		screen:    screen,
		scheduler: scheduler,
		intents:   intents,
		cues:      cues,
	}, nil
}

// Close restores the terminal.
func (c *Client) Close() {
	c.screen.Fini()
}

// Run blocks until the player quits. Input polling runs on its own
// goroutine; the frame loop advances the simulation and draws.
func (c *Client) Run() {
	go c.pollInput()

	last := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
		if c.quitting() {
			return
		}

		now := time.Now()
		elapsed := now.Sub(last)
		last = now

		c.scheduler.Advance(elapsed)

		snap := c.scheduler.Snapshot()
		for _, ev := range snap.Events {
			c.cues.HandleEvent(ev)
		}
		c.draw(snap)
	}
}

func (c *Client) quitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quitRequested
}

func (c *Client) pollInput() {
	for {
		ev := c.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if !c.handleKey(tev) {
				c.mu.Lock()
				c.quitRequested = true
				c.mu.Unlock()
				return
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// handleKey maps one key press; returns false on quit.
func (c *Client) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		c.intents.Push(core.Intent{Kind: core.IntentConfirmSelection})
		return true
	case tcell.KeyUp:
		c.setDirection(0, -1)
		return true
	case tcell.KeyDown:
		c.setDirection(0, 1)
		return true
	case tcell.KeyLeft:
		c.setDirection(-1, 0)
		return true
	case tcell.KeyRight:
		c.setDirection(1, 0)
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case 'h':
		c.setDirection(-1, 0)
	case 'j':
		c.setDirection(0, 1)
	case 'k':
		c.setDirection(0, -1)
	case 'l':
		c.setDirection(1, 0)
	case ' ':
		c.setDirection(0, 0)
	case 'f':
		c.intents.Push(core.Intent{Kind: core.IntentLightAttack})
	case 'd':
		c.intents.Push(core.Intent{Kind: core.IntentHeavyAttack})
	case 's':
		c.intents.Push(core.Intent{Kind: core.IntentActivateAbility})
	case 'a':
		c.intents.Push(core.Intent{Kind: core.IntentSpecialAttack})
	case 'b':
		c.intents.Push(core.Intent{Kind: core.IntentToggleShop})
	case 'i':
		c.intents.Push(core.Intent{Kind: core.IntentToggleDetails})
	case 'p':
		c.intents.Push(core.Intent{Kind: core.IntentTogglePause})
	case '1', '2', '3', '4', '5', '6':
		c.intents.Push(core.Intent{Kind: core.IntentBuyUpgrade, Slot: int(r - '1')})
	}
	return true
}

// setDirection pushes the new held direction. The simulation latches it
// across steps, so one intent per change is enough regardless of how many
// steps a frame executes; (0, 0) releases.
func (c *Client) setDirection(dx, dy int) {
	c.mu.Lock()
	if dx == c.dirX && dy == c.dirY {
		c.mu.Unlock()
		return
	}
	c.dirX, c.dirY = dx, dy
	c.mu.Unlock()

	c.intents.Push(core.Intent{
		Kind: core.IntentMove,
		DirX: vmath.FromInt(dx),
		DirY: vmath.FromInt(dy),
	})
}

func (c *Client) draw(snap *engine.Snapshot) {
	c.screen.Clear()

	arenaW := vmath.ToInt(parameter.ArenaWidth)
	arenaH := vmath.ToInt(parameter.ArenaHeight)
	offX, offY := 1, 2

	c.drawBorder(offX-1, offY-1, arenaW+2, arenaH+2)

	// Remaining sub-step time smooths motion between fixed steps
	alpha := c.scheduler.Alpha() / float64(parameter.TickRate)
	for _, e := range snap.Entities {
		x := int(e.X + e.VelX*alpha)
		y := int(e.Y + e.VelY*alpha)
		if x < 0 || x >= arenaW || y < 0 || y >= arenaH {
			continue
		}

		glyph := e.Glyph
		style := styleEnemy
		switch {
		case e.Projectile:
			glyph = '*'
			style = styleProjectile
		case e.Boss:
			style = styleBoss
		case e.Faction == core.FactionPlayer:
			style = stylePlayer
		}
		if glyph == 0 {
			continue
		}
		c.screen.SetContent(offX+x, offY+y, glyph, nil, style)
	}

	c.drawHUD(snap)
	if snap.HUD.ShopOpen {
		c.drawShop(snap, offX+2, offY+2)
	}
	switch {
	case snap.HUD.Phase == core.PhaseGameOver:
		c.drawCentered(offY+arenaH/2, arenaW, "GAME OVER - press q", styleHUD)
	case snap.HUD.Paused:
		c.drawCentered(offY+arenaH/2, arenaW, "PAUSED", styleHUD)
	}

	c.screen.Show()
}

func (c *Client) drawHUD(snap *engine.Snapshot) {
	hud := snap.HUD
	line := fmt.Sprintf("wave %d  hp %.0f/%.0f  charge %3.0f%%  cd %3.0f%%  gold %d  score %d",
		hud.Wave, hud.PlayerHealth, hud.PlayerMax,
		hud.ChargeFrac*100, (1-hud.CooldownFrac)*100,
		hud.Currency, hud.Score)
	c.drawText(1, 0, line, styleHUD)

	if hud.BossActive {
		c.drawText(1, 1, "!! BOSS !!", styleBoss)
	}
	if hud.ShowDetails {
		c.drawText(40, 1, fmt.Sprintf("tick %d", snap.Tick), styleDim)
	}
}

func (c *Client) drawShop(snap *engine.Snapshot, x, y int) {
	c.drawText(x, y, "-- SHOP --  1-6 buy, enter: next wave", styleHUD)
	for i, up := range data.Upgrades {
		line := fmt.Sprintf("%d) %-16s %4d gold (max %d)", i+1, up.Name, up.Cost, up.Cap)
		style := styleHUD
		if snap.HUD.Currency < up.Cost {
			style = styleDim
		}
		c.drawText(x, y+1+i, line, style)
	}
}

func (c *Client) drawBorder(x, y, w, h int) {
	for i := 0; i < w; i++ {
		c.screen.SetContent(x+i, y, tcell.RuneHLine, nil, styleBorder)
		c.screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for i := 0; i < h; i++ {
		c.screen.SetContent(x, y+i, tcell.RuneVLine, nil, styleBorder)
		c.screen.SetContent(x+w-1, y+i, tcell.RuneVLine, nil, styleBorder)
	}
	c.screen.SetContent(x, y, tcell.RuneULCorner, nil, styleBorder)
	c.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, styleBorder)
	c.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, styleBorder)
	c.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, styleBorder)
}

func (c *Client) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (c *Client) drawCentered(y, width int, text string, style tcell.Style) {
	x := 1 + (width-len(text))/2
	if x < 1 {
		x = 1
	}
	c.drawText(x, y, text, style)
}
