// Package breakout implements the brick breaker simulation: entities, collision
// detection, per-tick physics and the controller that sequences them.
// It contains no UI code; rendering, dialogs and scheduling are injected.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball represents the ball state in world units.
type Ball struct {
	X, Y   float64 // Position (center)
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Center returns the ball center.
func (b *Ball) Center() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle represents the player's paddle. Only X changes during play.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Right returns the right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// Rect returns the paddle rectangle for a canvas of the given height.
func (p *Paddle) Rect(canvasH float64) core.RectF {
	return core.NewRectF(p.X, canvasH-p.Height, p.Width, p.Height)
}

// Brick represents a single brick in the grid.
type Brick struct {
	X, Y   float64 // Top-left corner, valid once Placed
	Width  float64
	Height float64
	Alive  bool // Whether brick is still present; goes false exactly once
	Placed bool // Whether X/Y have been assigned by Layout
}

// Rect returns the brick rectangle.
func (b *Brick) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// BrickGrid holds the bricks indexed [column][row].
// Every cell is its own value; no two cells share a record.
type BrickGrid struct {
	cells [][]Brick
}

// NewBrickGrid creates a grid of alive, not yet placed bricks.
func NewBrickGrid(columns, rows int, brickW, brickH float64) *BrickGrid {
	g := &BrickGrid{cells: make([][]Brick, columns)}
	for c := range g.cells {
		g.cells[c] = make([]Brick, rows)
		for r := range g.cells[c] {
			g.cells[c][r] = Brick{
				Width:  brickW,
				Height: brickH,
				Alive:  true,
			}
		}
	}
	return g
}

// Columns returns the number of brick columns.
func (g *BrickGrid) Columns() int {
	return len(g.cells)
}

// Rows returns the number of brick rows.
func (g *BrickGrid) Rows() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Total returns the number of bricks in the grid.
func (g *BrickGrid) Total() int {
	return g.Columns() * g.Rows()
}

// At returns the brick at (column, row). Indices must be in range.
func (g *BrickGrid) At(column, row int) *Brick {
	return &g.cells[column][row]
}

// Each visits every brick in column-major order: columns outer, rows inner.
// This order is the collision tie-break.
func (g *BrickGrid) Each(fn func(column, row int, b *Brick)) {
	for c := range g.cells {
		for r := range g.cells[c] {
			fn(c, r, &g.cells[c][r])
		}
	}
}

// Layout assigns every brick its position from its grid index.
func (g *BrickGrid) Layout(cfg config.BricksConfig) {
	g.Each(func(c, r int, b *Brick) {
		b.X = float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft
		b.Y = float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop
		b.Placed = true
	})
}

// CountAlive returns the number of bricks still present.
func (g *BrickGrid) CountAlive() int {
	count := 0
	g.Each(func(_, _ int, b *Brick) {
		if b.Alive {
			count++
		}
	})
	return count
}

// Clone creates a deep copy of the grid.
func (g *BrickGrid) Clone() *BrickGrid {
	clone := &BrickGrid{cells: make([][]Brick, len(g.cells))}
	for c, col := range g.cells {
		clone.cells[c] = make([]Brick, len(col))
		copy(clone.cells[c], col)
	}
	return clone
}
