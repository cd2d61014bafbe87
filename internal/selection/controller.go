// Package selection owns the previewed and confirmed characters and navigation over the
// visible list.
package selection

import (
	"slices"

	"github.com/jask/rosterpick/internal/audio"
	"github.com/jask/rosterpick/internal/catalog"
)

// Resolver looks up catalog entities by id.
type Resolver interface {
	Get(id string) (catalog.Entity, bool)
}

// Scroller brings an entity's card into view after navigation.
type Scroller interface {
	ScrollIntoView(id string)
}

type Controller struct {
	catalog  Resolver
	player   audio.Player
	scroller Scroller

	previewed catalog.Entity
	hasFocus  bool
	confirmed string
	pose      int
	visible   []string
}

type Option func(*Controller)

func WithPlayer(p audio.Player) Option {
	return func(c *Controller) { c.player = p }
}

func WithScroller(s Scroller) Option {
	return func(c *Controller) { c.scroller = s }
}

func New(r Resolver, opts ...Option) *Controller {
	c := &Controller{catalog: r}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetScroller replaces the scroll-into-view collaborator; nil disables it.
func (c *Controller) SetScroller(s Scroller) {
	c.scroller = s
}

// Focus previews e and rewinds the pose cursor. e does not need to be visible.
func (c *Controller) Focus(e catalog.Entity) {
	c.previewed = e
	c.hasFocus = e.ID != ""
	c.pose = 0
}

// FocusID previews the catalog entity with id. Unknown ids are ignored.
func (c *Controller) FocusID(id string) bool {
	if c.catalog == nil {
		return false
	}
	e, ok := c.catalog.Get(id)
	if !ok {
		return false
	}
	c.Focus(e)
	return true
}

// Known reports whether id resolves to a catalog entity.
func (c *Controller) Known(id string) bool {
	if c.catalog == nil {
		return false
	}
	_, ok := c.catalog.Get(id)
	return ok
}

// Navigate moves focus by one step in the visible list, wrapping at both ends. It does
// nothing when the previewed entity is not visible.
func (c *Controller) Navigate(dir int) bool {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	default:
		return false
	}
	n := len(c.visible)
	if !c.hasFocus || n == 0 {
		return false
	}
	idx := slices.Index(c.visible, c.previewed.ID)
	if idx < 0 {
		return false
	}
	next := ((idx+dir)%n + n) % n
	if !c.FocusID(c.visible[next]) {
		return false
	}
	if c.scroller != nil {
		c.scroller.ScrollIntoView(c.previewed.ID)
	}
	return true
}

// Confirm selects id and plays the confirm tone. It never clears.
func (c *Controller) Confirm(id string) {
	if id == "" {
		return
	}
	c.confirmed = id
	audio.Trigger(c.player, audio.ConfirmTone)
}

// Toggle clears the confirmation when id is already confirmed, otherwise confirms it.
func (c *Controller) Toggle(id string) {
	if id == "" {
		return
	}
	if c.confirmed == id {
		c.Clear()
		return
	}
	c.Confirm(id)
}

func (c *Controller) Clear() {
	c.confirmed = ""
}

// SetVisible installs a recomputed visible list and re-anchors focus on its first
// element when the previewed entity dropped out of it.
func (c *Controller) SetVisible(ids []string) {
	c.visible = slices.Clone(ids)
	if c.hasFocus && slices.Contains(c.visible, c.previewed.ID) {
		return
	}
	if len(c.visible) == 0 {
		if c.hasFocus {
			c.previewed = catalog.Entity{}
			c.hasFocus = false
			c.pose = 0
		}
		return
	}
	if !c.FocusID(c.visible[0]) {
		c.previewed = catalog.Entity{}
		c.hasFocus = false
		c.pose = 0
	}
}

func (c *Controller) NextPose() { c.stepPose(1) }

func (c *Controller) PrevPose() { c.stepPose(-1) }

func (c *Controller) stepPose(dir int) {
	n := len(c.previewed.Poses)
	if !c.hasFocus || n == 0 {
		return
	}
	c.pose = ((c.pose+dir)%n + n) % n
}

func (c *Controller) Previewed() (catalog.Entity, bool) {
	return c.previewed, c.hasFocus
}

func (c *Controller) PreviewedID() string {
	if !c.hasFocus {
		return ""
	}
	return c.previewed.ID
}

func (c *Controller) Confirmed() string { return c.confirmed }

func (c *Controller) PoseIndex() int { return c.pose }

// Pose names the current pose of the previewed entity, or "" when it has none.
func (c *Controller) Pose() string {
	return c.previewed.Pose(c.pose)
}

// Visible returns the list navigation is scoped to.
func (c *Controller) Visible() []string {
	return slices.Clone(c.visible)
}
