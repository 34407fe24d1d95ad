package demo

import (
	"math"
	"strconv"

	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/tags"
)

const (
	arenaWidth  = 400
	arenaHeight = 300
	ballSize    = 40
)

// Balls moves a few balls around an arena. Each ball positions itself with
// instance CSS, so a tick changes styles but no markup.
type Balls struct {
	e     *jst.Engine
	t     tags.Tags
	self  *jst.Component
	balls []*ball
	ticks int
}

// NewBalls builds the balls demo with n balls on e.
func NewBalls(e *jst.Engine, n int) *Balls {
	b := &Balls{e: e, t: tags.New(e)}
	b.self = e.Component(b)
	for i := 0; i < n; i++ {
		bl := &ball{
			app:   b,
			n:     i + 1,
			x:     float64(ballSize + (i*70)%(arenaWidth-2*ballSize)),
			y:     float64(ballSize + (i*37)%(arenaHeight-2*ballSize)),
			angle: float64(i) * 1.1,
			v:     12,
		}
		bl.c = e.Component(bl)
		b.balls = append(b.balls, bl)
	}
	return b
}

// Title returns the page title.
func (b *Balls) Title() string { return "Balls by jst" }

// Component returns the root component.
func (b *Balls) Component() *jst.Component { return b.self }

// Render implements jst.Renderer.
func (b *Balls) Render(e *jst.Engine) any {
	comps := make([]*jst.Component, len(b.balls))
	for i, bl := range b.balls {
		comps[i] = bl.c
	}
	return b.t.Div(tags.ID("-arena"), comps)
}

// CSSLocal implements jst.LocalStyler.
func (b *Balls) CSSLocal() any {
	return map[string]any{
		"arena$i": map[string]any{
			"position":  "relative",
			"width$px":  arenaWidth,
			"height$px": arenaHeight,
			"border$px": []any{1, "solid", darkPrimary},
		},
	}
}

// Tick advances every ball one step.
func (b *Balls) Tick() (string, error) {
	b.ticks++
	for _, bl := range b.balls {
		bl.step()
		if err := bl.c.Refresh(); err != nil {
			return "", err
		}
	}
	return "move " + strconv.Itoa(len(b.balls)) + " balls", nil
}

// Position returns the centre of the i-th ball.
func (b *Balls) Position(i int) (x, y float64) {
	return b.balls[i].x, b.balls[i].y
}

type ball struct {
	app   *Balls
	c     *jst.Component
	n     int
	x, y  float64
	angle float64
	v     float64
}

// step moves the ball and bounces it off the arena walls.
func (bl *ball) step() {
	const r = ballSize / 2
	bl.x += bl.v * math.Cos(bl.angle)
	bl.y += bl.v * math.Sin(bl.angle)
	if bl.x < r || bl.x > arenaWidth-r {
		bl.angle = math.Pi - bl.angle
		bl.x = math.Max(r, math.Min(arenaWidth-r, bl.x))
	}
	if bl.y < r || bl.y > arenaHeight-r {
		bl.angle = -bl.angle
		bl.y = math.Max(r, math.Min(arenaHeight-r, bl.y))
	}
}

func (bl *ball) Render(e *jst.Engine) any {
	return bl.app.t.Div(tags.Class("-ball", "--ball"), strconv.Itoa(bl.n))
}

func (bl *ball) CSSLocal() any {
	return map[string]any{
		"ball$c": map[string]any{
			"position":        "absolute",
			"border$px":       []any{2, "solid", "black"},
			"borderRadius":    "50%",
			"backgroundColor": mediumPrimary,
			"textAlign":       "center",
			"color":           "white",
			"width$px":        ballSize,
			"height$px":       ballSize,
			"marginTop$px":    -ballSize / 2,
			"marginLeft$px":   -ballSize / 2,
		},
	}
}

func (bl *ball) CSSInstance() any {
	return map[string]any{
		"ball$c": map[string]any{
			"top$px":  math.Round(bl.y),
			"left$px": math.Round(bl.x),
		},
	}
}
