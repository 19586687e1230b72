package client

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/dodger/internal/draw"
)

// ASCII art titles (figlet "small" font)
var (
	titleArt = []string{
		`  ___   ___  ___   ___ ___ ___ `,
		` |   \ / _ \|   \ / __| __| _ \`,
		` | |) | (_) | |) | (_ | _||   /`,
		` |___/ \___/|___/ \___|___|_|_\`,
	}
	winArt = []string{
		` __   _____  _   _  __      _____ _  _ `,
		` \ \ / / _ \| | | | \ \    / /_ _| \| |`,
		`  \ V / (_) | |_| |  \ \/\/ / | || .' |`,
		`   |_| \___/ \___/    \_/\_/ |___|_|\_|`,
	}
	gameOverArt = []string{
		`   ___   _   __  __ ___    _____   _____ ___ `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
	}
)

// drawFrame draws the current frame. It reports false when the terminal
// write failed and the client must stop.
func (c *Client) drawFrame() bool {
	c.updateScreen()

	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.GameState != GameStateStart {
		c.board.Draw(c.canvas)
	}

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)
	c.drawUI()

	if err := c.chunkWriter.Flush(); err != nil {
		c.err = err
		c.state.Running = false
		return false
	}
	return true
}

// drawUI draws the text overlay for the current state.
func (c *Client) drawUI() {
	centerX := c.canvas.OffsetCol() + c.canvas.TerminalWidth()/2 + 1
	centerY := c.canvas.OffsetRow() + c.canvas.TerminalHeight()/2 + 1

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		c.drawPlayingHUD()
	case GameStateOver:
		c.drawPlayingHUD()
		c.drawOverScreen(centerX, centerY)
	}
}

// text writes s centred on centerX over the canvas and marks the covered
// cells so the canvas repaints them once the text is gone.
func (c *Client) text(centerX, row int, s string) {
	col := c.chunkWriter.WriteCentered(centerX, row, s)
	c.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(s))
}

// art writes a multi-line title, falling back to plain text when the art is
// wider than the playfield. It returns the number of rows used.
func (c *Client) art(lines []string, plain string, centerX, row int) int {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	if width > c.canvas.TerminalWidth() {
		c.text(centerX, row, plain)
		return 1
	}
	for i, line := range lines {
		// Pad so every line starts at the same column
		c.text(centerX, row+i, line+strings.Repeat(" ", width-len(line)))
	}
	return len(lines)
}

// drawInactivityScreen draws the idle disconnect warning.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.text(centerX, centerY-2, "INACTIVITY WARNING")
	left := c.idleTimeout - c.clock.Now().Sub(c.lastInput)
	c.text(centerX, centerY, fmt.Sprintf("Disconnecting in %d seconds", int(left.Seconds())+1))
	c.text(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	row := centerY - 6
	row += c.art(titleArt, "DODGER", centerX, row) + 1

	c.text(centerX, row, "~ dodge the falling blocks ~")
	row += 2

	c.text(centerX, row, "Controls")
	controlLines := []string{
		"A D / < >  . . Move",
		"SPACE  . . .  Start",
		"Q  . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.text(centerX, row+1+i, line)
	}
	row += len(controlLines) + 2

	c.drawBlinkingPrompt(centerX, row, ">>  Press SPACE to Start  <<")
}

// drawPlayingHUD draws score and lives above the playfield.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD() {
	cw := c.chunkWriter
	left := c.canvas.OffsetCol()
	right := left + c.canvas.TerminalWidth() + 1

	cw.WriteAt(left, 1, fmt.Sprintf("Score: %-4d", c.board.Score()))

	hearts, width := c.hearts()
	cw.WriteAt(right-width+1, 1, hearts)
}

// hearts renders remaining lives as filled hearts and lost lives as hollow
// ones. It returns the text and its width
// in cells.
func (c *Client) hearts() (string, int) {
	total := c.cfg.InitialLives
	lives := min(max(c.board.Lives(), 0), total)
	var b strings.Builder
	b.WriteString(draw.ColorRed)
	b.WriteString(strings.Repeat("♥", lives))
	b.WriteString(draw.ColorReset)
	b.WriteString(draw.ColorDim)
	b.WriteString(strings.Repeat("♡", total-lives))
	b.WriteString(draw.ColorReset)
	return b.String(), total
}

// drawOverScreen draws the outcome over the frozen final frame.
func (c *Client) drawOverScreen(centerX, centerY int) {
	outcome, _ := c.board.Outcome()

	row := centerY - 4
	if outcome.Won() {
		row += c.art(winArt, "YOU WIN", centerX, row) + 1
	} else {
		row += c.art(gameOverArt, "GAME OVER", centerX, row) + 1
	}

	c.text(centerX, row, fmt.Sprintf(" Score: %d ", outcome.Score))
	row += 2

	c.drawBlinkingPrompt(centerX, row, ">>  Press SPACE to Restart  <<")
	c.text(centerX, row+1, " Q to quit ")
}

// drawBlinkingPrompt shows prompt on alternate 600ms phases.
func (c *Client) drawBlinkingPrompt(centerX, row int, prompt string) {
	if c.clock.Now().UnixMilli()/600%2 == 0 {
		c.text(centerX, row, prompt)
		return
	}
	c.text(centerX, row, strings.Repeat(" ", utf8.RuneCountInString(prompt)))
}
