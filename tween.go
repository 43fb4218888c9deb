package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float32 fields simultaneously. Create one via
// TweenValue, TweenPair or TweenColor and call Update(dt) each frame; widgets usually do
// this from Animate.
//
// There is no global animation manager: widgets own and drive their tweens.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float32
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. It reports whether any field was written.
func (g *TweenGroup) Update(dt float32) bool {
	if g == nil || g.Done {
		return false
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	return true
}

// TweenValue creates a TweenGroup that animates *v to the given target over
// the specified duration using the easing function.
func TweenValue(v *float32, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(*v, to, duration, fn)
	g.fields[0] = v
	return g
}

// TweenPair creates a TweenGroup that animates *x and *y together.
func TweenPair(x, y *float32, toX, toY, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(*x, toX, duration, fn)
	g.tweens[1] = gween.New(*y, toY, duration, fn)
	g.fields[0] = x
	g.fields[1] = y
	return g
}

// TweenColor creates a TweenGroup that animates all four components of *c to
// the target color over the specified duration.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(c.R, to.R, duration, fn)
	g.tweens[1] = gween.New(c.G, to.G, duration, fn)
	g.tweens[2] = gween.New(c.B, to.B, duration, fn)
	g.tweens[3] = gween.New(c.A, to.A, duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}
