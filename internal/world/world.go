// Package world stores the scene's entities in an ark ECS world and
// integrates their arcade physics.
package world

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"chosenoffset.com/topdown/internal/core/geom"
)

// World holds every entity in the scene. It is not safe for concurrent use.
type World struct {
	store  ecs.World
	bounds geom.Rect

	sprites *ecs.Map4[Transform, Motion, Body, Appearance]
	images  *ecs.Map2[Transform, Appearance]

	bodyFilter *ecs.Filter3[Transform, Motion, Body]
	drawFilter *ecs.Filter2[Transform, Appearance]

	drawables []Drawable
}

// Handle gives access to one sprite's components. Pointers are only valid
// until the next structural change (adding or removing entities).
type Handle struct {
	Entity    ecs.Entity
	Transform *Transform
	Motion    *Motion
	Body      *Body
}

// Drawable is a snapshot of one entity for rendering.
type Drawable struct {
	Entity     ecs.Entity
	Transform  Transform
	Appearance Appearance
	Body       *Body   // nil for entities without physics
	Motion     *Motion // nil for entities without physics
}

// New creates an empty world with the given bounds.
func New(bounds geom.Rect) *World {
	w := &World{
		store:  ecs.NewWorld(),
		bounds: bounds,
	}
	w.sprites = ecs.NewMap4[Transform, Motion, Body, Appearance](&w.store)
	w.images = ecs.NewMap2[Transform, Appearance](&w.store)
	w.bodyFilter = ecs.NewFilter3[Transform, Motion, Body](&w.store)
	w.drawFilter = ecs.NewFilter2[Transform, Appearance](&w.store)
	return w
}

// SetBounds replaces the world bounds used for collision.
func (w *World) SetBounds(bounds geom.Rect) {
	w.bounds = bounds
}

// Bounds returns the world bounds.
func (w *World) Bounds() geom.Rect {
	return w.bounds
}

// AddImage adds a static, non-physical entity such as a background.
func (w *World) AddImage(pos geom.Vec, app Appearance) ecs.Entity {
	return w.images.NewEntity(&Transform{X: pos.X, Y: pos.Y}, &app)
}

// AddSprite adds a physics-enabled entity. A zero MaxVelocity is replaced
// by DefaultMaxVelocity.
func (w *World) AddSprite(pos geom.Vec, body Body, app Appearance) ecs.Entity {
	if body.MaxVelocity == 0 {
		body.MaxVelocity = DefaultMaxVelocity
	}
	return w.sprites.NewEntity(&Transform{X: pos.X, Y: pos.Y}, &Motion{}, &body, &app)
}

// Lookup returns the physics components of a sprite. ok is false when the
// entity has been removed or has no body.
func (w *World) Lookup(e ecs.Entity) (Handle, bool) {
	if e == (ecs.Entity{}) || !w.store.Alive(e) || !w.sprites.HasAll(e) {
		return Handle{}, false
	}
	t, m, b, _ := w.sprites.Get(e)
	return Handle{Entity: e, Transform: t, Motion: m, Body: b}, true
}

// Remove deletes an entity. Removing a dead entity is a no-op.
func (w *World) Remove(e ecs.Entity) {
	if e == (ecs.Entity{}) || !w.store.Alive(e) {
		return
	}
	w.store.RemoveEntity(e)
}

// Len returns the number of drawable entities.
func (w *World) Len() int {
	n := 0
	query := w.drawFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Drawables returns every drawable entity ordered by depth. The returned
// slice is reused by the next call.
func (w *World) Drawables() []Drawable {
	w.drawables = w.drawables[:0]

	query := w.drawFilter.Query()
	for query.Next() {
		t, a := query.Get()
		w.drawables = append(w.drawables, Drawable{
			Entity:     query.Entity(),
			Transform:  *t,
			Appearance: *a,
		})
	}

	for i := range w.drawables {
		if h, ok := w.Lookup(w.drawables[i].Entity); ok {
			body, motion := *h.Body, *h.Motion
			w.drawables[i].Body = &body
			w.drawables[i].Motion = &motion
		}
	}

	sort.SliceStable(w.drawables, func(i, j int) bool {
		return w.drawables[i].Appearance.Depth < w.drawables[j].Appearance.Depth
	})

	return w.drawables
}
