package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	cases := []struct {
		name string
		r    IntRect
		x, y int
		want bool
	}{
		{"top_left_inclusive", NewRect(0, 0, 10, 10), 0, 0, true},
		{"inside", NewRect(0, 0, 10, 10), 5, 5, true},
		{"right_edge_exclusive", NewRect(0, 0, 10, 10), 10, 0, false},
		{"bottom_edge_exclusive", NewRect(0, 0, 10, 10), 0, 10, false},
		{"last_pixel", NewRect(0, 0, 10, 10), 9, 9, true},
		{"left_of", NewRect(0, 0, 10, 10), -1, 5, false},
		{"negative_extent_min_corner", NewRect(10, 10, -5, -5), 5, 5, true},
		{"negative_extent_origin_exclusive", NewRect(10, 10, -5, -5), 10, 10, false},
		{"negative_extent_inside", NewRect(10, 10, -5, -5), 9, 9, true},
		{"zero_area", NewRect(3, 3, 0, 0), 3, 3, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.r.Contains(c.x, c.y))
			assert.Equal(t, c.want, c.r.ContainsPoint(Vec2(c.x, c.y)))
		})
	}
}

func TestRectContainsFloat(t *testing.T) {
	r := NewRect[float32](0, 0, 1.5, 1.5)
	assert.True(t, r.Contains(1.49, 0))
	assert.False(t, r.Contains(1.5, 0))
	assert.True(t, r.Contains(0, 0))
}

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b IntRect
		want IntRect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), IntRect{}},
		{"touching_edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), IntRect{}},
		{"touching_corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), IntRect{}},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), NewRect(5, 5, 5, 5)},
		{"single_pixel", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), NewRect(9, 9, 1, 1)},
		{"negative_extent", NewRect(10, 10, -5, -5), NewRect(0, 0, 7, 7), NewRect(5, 5, 2, 2)},
		{"both_negative", NewRect(10, 10, -10, -10), NewRect(15, 15, -10, -10), NewRect(5, 5, 5, 5)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.a.Intersects(c.b)
			assert.Equal(t, c.want, got)
			assert.Equal(t, got, c.b.Intersects(c.a), "intersection must be commutative")
			assert.Equal(t, !c.want.IsZero(), c.a.IsIntersecting(c.b))
		})
	}
}

func TestRectIntersectsSelf(t *testing.T) {
	rects := []FloatRect{
		NewRect[float32](0, 0, 10, 10),
		NewRect[float32](-3.5, 2.25, 1, 8),
		NewRect[float32](100, -100, 0.5, 0.5),
	}
	for _, r := range rects {
		assert.Equal(t, r, r.Intersects(r))
	}

	neg := NewRect[float32](10, 10, -5, -5)
	assert.Equal(t, neg.Normalized(), neg.Intersects(neg))
}

func TestRectNegativeExtentEquivalence(t *testing.T) {
	neg := NewRect(10, 10, -5, -5)
	pos := NewRect(5, 5, 5, 5)

	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			assert.Equal(t, pos.Contains(x, y), neg.Contains(x, y), "point (%d, %d)", x, y)
		}
	}

	others := []IntRect{
		NewRect(0, 0, 7, 7),
		NewRect(8, 8, 10, 10),
		NewRect(10, 10, 5, 5),
		NewRect(6, 0, 1, 20),
	}
	for _, o := range others {
		assert.Equal(t, pos.Intersects(o), neg.Intersects(o), "other %v", o)
	}
	assert.NotEqual(t, pos, neg, "equality does not normalize")
}

func TestRectZeroSentinel(t *testing.T) {
	assert.True(t, IntRect{}.IsZero())
	assert.False(t, NewRect(0, 0, 0, 1).IsZero())

	// A zero rectangle touching another at the origin reports no overlap.
	assert.False(t, IntRect{}.IsIntersecting(NewRect(0, 0, 10, 10)))
}

func TestRectEqual(t *testing.T) {
	a := NewRect[float32](0.1, 0.2, 0.3, 0.4)
	b := NewRect[float32](0.1, 0.2, 0.3, 0.4)
	c := NewRect[float32](0.1, 0.2, 0.3, 0.40001)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	seen := map[FloatRect]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

func TestRectPosSize(t *testing.T) {
	r := RectFromPosSize(Vec2(1, 2), Vec2(3, 4))
	assert.Equal(t, NewRect(1, 2, 3, 4), r)
	assert.Equal(t, Vec2(1, 2), r.Position())
	assert.Equal(t, Vec2(3, 4), r.Size())
	assert.Equal(t, "(1, 2, 3, 4)", r.String())
}
