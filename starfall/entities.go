package starfall

import (
	"github.com/faiface/pixel"
)

// ENTITIES
// All positions are in screen space with y growing downwards, the renderer
// flips them when drawing into the window.

type Player struct {
	Pos     pixel.Vec // centre
	TargetX float64
	Width   float64
	Height  float64
	Color   string
	lerp    float64
}

func NewPlayer(x, y float64, cfg PlayerConfig) *Player {
	return &Player{
		Pos:     pixel.V(x, y),
		TargetX: x,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Color:   cfg.Color,
		lerp:    cfg.Lerp,
	}
}

// Update eases the player towards TargetX. scale is 1 in fixed motion mode.
func (p *Player) Update(scale float64) {
	t := p.lerp * scale
	if t > 1 {
		t = 1
	}
	p.Pos.X += (p.TargetX - p.Pos.X) * t
}

func (p *Player) Bounds() pixel.Rect {
	return pixel.R(
		p.Pos.X-p.Width/2,
		p.Pos.Y-p.Height/2,
		p.Pos.X+p.Width/2,
		p.Pos.Y+p.Height/2,
	)
}

type Bullet struct {
	Pos    pixel.Vec
	Speed  float64
	Width  float64
	Height float64
	Active bool
}

func NewBullet(x, y float64, cfg BulletConfig) *Bullet {
	return &Bullet{
		Pos:    pixel.V(x, y),
		Speed:  cfg.Speed,
		Width:  cfg.Width,
		Height: cfg.Height,
		Active: true,
	}
}

func (b *Bullet) Update(scale float64) {
	b.Pos.Y -= b.Speed * scale
	if b.Pos.Y < 0 {
		b.Active = false
	}
}

// EnemyKind selects a row of the enemy parameter table.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyTank
)

type enemyKind struct {
	name      string
	sizeScale float64
	speedMul  float64
	hp        int
	fromWave  int
	weight    float64
}

var enemyKinds = map[EnemyKind]enemyKind{
	EnemyBasic: {name: "basic", sizeScale: 1, speedMul: 1, hp: 1, fromWave: 1, weight: 1},
	EnemyFast:  {name: "fast", sizeScale: 0.7, speedMul: 1.6, hp: 1, fromWave: 2, weight: 0.35},
	EnemyTank:  {name: "tank", sizeScale: 1.4, speedMul: 1, hp: 3, fromWave: 3, weight: 0.2},
}

// enemyKindOrder keeps weighted picks deterministic for a seeded source.
var enemyKindOrder = []EnemyKind{EnemyBasic, EnemyFast, EnemyTank}

func (k EnemyKind) String() string {
	if kind, ok := enemyKinds[k]; ok {
		return kind.name
	}
	return "unknown"
}

type Enemy struct {
	Pos    pixel.Vec // top-left corner
	Width  float64
	Height float64
	Speed  float64
	Kind   EnemyKind
	Sprite string
	HP     int
	Active bool
}

func NewEnemy(x, y, speed float64, kind EnemyKind, cfg EnemyConfig) *Enemy {
	k, ok := enemyKinds[kind]
	if !ok {
		kind = EnemyBasic
		k = enemyKinds[EnemyBasic]
	}
	return &Enemy{
		Pos:    pixel.V(x, y),
		Width:  cfg.Width * k.sizeScale,
		Height: cfg.Height * k.sizeScale,
		Speed:  speed,
		Kind:   kind,
		Sprite: k.name,
		HP:     k.hp,
		Active: true,
	}
}

// Update moves the enemy down and retires it once it has left the bottom edge.
func (e *Enemy) Update(scale, canvasHeight float64) {
	e.Pos.Y += e.Speed * scale
	if e.Pos.Y > canvasHeight {
		e.Active = false
	}
}

func (e *Enemy) Bounds() pixel.Rect {
	return pixel.R(e.Pos.X, e.Pos.Y, e.Pos.X+e.Width, e.Pos.Y+e.Height)
}

func (e *Enemy) Center() pixel.Vec {
	return e.Pos.Add(pixel.V(e.Width/2, e.Height/2))
}

// Hit applies one point of damage and reports whether the enemy died.
func (e *Enemy) Hit() bool {
	e.HP--
	if e.HP <= 0 {
		e.Active = false
		return true
	}
	return false
}
