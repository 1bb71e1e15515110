package platform

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"

	"github.com/nathanKramer/starfall/starfall"
)

type DrawContext struct {
	// Draw targets
	particleDraw  *imdraw.IMDraw
	bulletDraw    *imdraw.IMDraw
	explosionDraw *imdraw.IMDraw
	imd           *imdraw.IMDraw
	overlayDraw   *imdraw.IMDraw

	sprites map[string]*pixel.Sprite

	titleTxt   *text.Text
	centredTxt *text.Text
	scoreTxt   *text.Text
	waveTxt    *text.Text
	highTxt    *text.Text
	fpsTxt     *text.Text

	playerColor pixel.RGBA
	height      float64
}

func NewDrawContext(cfg *starfall.Config) *DrawContext {
	d := &DrawContext{
		particleDraw:  imdraw.New(nil),
		bulletDraw:    imdraw.New(nil),
		explosionDraw: imdraw.New(nil),
		imd:           imdraw.New(nil),
		overlayDraw:   imdraw.New(nil),
		sprites:       loadSprites(),
		playerColor:   namedColor(cfg.Player.Color, colornames.Cyan),
	}

	title, normal, small := loadFonts()
	d.titleTxt = text.New(pixel.ZV, title)
	d.centredTxt = text.New(pixel.ZV, normal)
	d.centredTxt.LineHeight = normal.LineHeight() * 1.5
	d.scoreTxt = text.New(pixel.ZV, normal)
	d.waveTxt = text.New(pixel.ZV, normal)
	d.highTxt = text.New(pixel.ZV, normal)
	d.fpsTxt = text.New(pixel.ZV, small)
	return d
}

// screen flips a y-down game position into window space.
func (d *DrawContext) screen(v pixel.Vec) pixel.Vec {
	return pixel.V(v.X, d.height-v.Y)
}

// DrawGame renders one frame back to front: stars, enemies, bullets,
// explosions, player, HUD, overlay.
func DrawGame(win *pixelgl.Window, game *starfall.Game, d *DrawContext) {
	s := game.Session
	d.height = s.Height

	win.Clear(backgroundColor)

	d.drawParticles(win, s.Particles)
	d.drawEnemies(win, s.Enemies)
	d.drawBullets(win, s.Bullets)
	d.drawExplosions(win, s.Explosions)
	d.drawPlayer(win, s.Player)
	d.drawHUD(win, game)

	switch game.State {
	case starfall.StateBoot:
		d.drawOverlay(win, s, starfall.Title, "Click or press Enter to start", "Move with the mouse, click to fire")
	case starfall.StatePaused:
		d.drawOverlay(win, s, "Paused", "Press Esc to resume")
	}
}

func (d *DrawContext) drawParticles(win *pixelgl.Window, ps *starfall.ParticleSystem) {
	imd := d.particleDraw
	imd.Clear()
	for _, p := range ps.Particles() {
		imd.Color = starColor.Mul(pixel.Alpha(p.Alpha))
		imd.Push(d.screen(p.Pos))
		imd.Circle(p.Size, 0)
	}
	imd.Draw(win)
}

func (d *DrawContext) drawEnemies(win *pixelgl.Window, enemies []*starfall.Enemy) {
	for _, e := range enemies {
		sprite, ok := d.sprites[e.Sprite]
		if !ok {
			continue
		}
		frame := sprite.Frame()
		scale := pixel.V(e.Width/frame.W(), e.Height/frame.H())
		sprite.Draw(win, pixel.IM.ScaledXY(pixel.ZV, scale).Moved(d.screen(e.Center())))
	}
}

func (d *DrawContext) drawBullets(win *pixelgl.Window, bullets []*starfall.Bullet) {
	imd := d.bulletDraw
	imd.Clear()
	imd.Color = bulletColor
	for _, b := range bullets {
		c := d.screen(b.Pos)
		hw, hh := b.Width/2, b.Height/2
		imd.Push(pixel.V(c.X-hw, c.Y-hh), pixel.V(c.X+hw, c.Y+hh))
		imd.Rectangle(0)
	}
	imd.Draw(win)
}

func (d *DrawContext) drawExplosions(win *pixelgl.Window, explosions []*starfall.Explosion) {
	imd := d.explosionDraw
	imd.Clear()
	for _, x := range explosions {
		base := HSVToColor(x.Hue, 0.9, 1.0)
		for _, spark := range x.Sparks {
			if spark.Life <= 0 {
				continue
			}
			imd.Color = base.Mul(pixel.Alpha(spark.Life))
			imd.Push(d.screen(spark.Pos))
			imd.Circle(1+2*spark.Life, 0)
		}
	}
	imd.Draw(win)
}

func (d *DrawContext) drawPlayer(win *pixelgl.Window, p *starfall.Player) {
	imd := d.imd
	imd.Clear()

	c := d.screen(p.Pos)
	hw, hh := p.Width/2, p.Height/2

	imd.Color = d.playerColor
	imd.Push(
		pixel.V(c.X, c.Y+hh),
		pixel.V(c.X-hw, c.Y-hh),
		pixel.V(c.X, c.Y-hh/2),
		pixel.V(c.X+hw, c.Y-hh),
	)
	imd.Polygon(0)

	imd.Color = colornames.White
	imd.Push(pixel.V(c.X, c.Y+hh/3))
	imd.Circle(3, 0)
	imd.Draw(win)
}

func (d *DrawContext) drawHUD(win *pixelgl.Window, game *starfall.Game) {
	s := game.Session
	w, h := s.Width, s.Height

	d.scoreTxt.Clear()
	d.scoreTxt.Color = hudColor
	fmt.Fprintf(d.scoreTxt, "Score %d", s.Score)
	d.scoreTxt.Draw(win, pixel.IM.Moved(pixel.V(20, h-40)))

	d.waveTxt.Clear()
	d.waveTxt.Color = hudColor
	label := fmt.Sprintf("Wave %d", s.Wave)
	d.waveTxt.Dot.X -= d.waveTxt.BoundsOf(label).W() / 2
	fmt.Fprint(d.waveTxt, label)
	d.waveTxt.Draw(win, pixel.IM.Moved(pixel.V(w/2, h-40)))

	d.highTxt.Clear()
	d.highTxt.Color = hudColor
	label = fmt.Sprintf("Best %d", s.HighScore)
	d.highTxt.Dot.X -= d.highTxt.BoundsOf(label).W()
	fmt.Fprint(d.highTxt, label)
	d.highTxt.Draw(win, pixel.IM.Moved(pixel.V(w-20, h-40)))

	d.fpsTxt.Clear()
	d.fpsTxt.Color = hudDimColor
	fmt.Fprintf(d.fpsTxt, "%.0f fps", game.FPS)
	d.fpsTxt.Draw(win, pixel.IM.Moved(pixel.V(20, 20)))
}

func (d *DrawContext) drawOverlay(win *pixelgl.Window, s *starfall.Session, title string, lines ...string) {
	w, h := s.Width, s.Height

	imd := d.overlayDraw
	imd.Clear()
	imd.Color = pixel.RGBA{A: 0.6}
	imd.Push(pixel.ZV, pixel.V(w, h))
	imd.Rectangle(0)
	imd.Draw(win)

	d.titleTxt.Clear()
	d.titleTxt.Color = colornames.White
	d.titleTxt.Dot.X -= d.titleTxt.BoundsOf(title).W() / 2
	fmt.Fprintln(d.titleTxt, title)
	d.titleTxt.Draw(win, pixel.IM.Moved(pixel.V(w/2, h/2+60)))

	d.centredTxt.Clear()
	d.centredTxt.Color = colornames.Lightgrey
	for _, line := range lines {
		d.centredTxt.Dot.X -= d.centredTxt.BoundsOf(line).W() / 2
		fmt.Fprintln(d.centredTxt, line)
	}
	d.centredTxt.Draw(win, pixel.IM.Moved(pixel.V(w/2, h/2)))
}
