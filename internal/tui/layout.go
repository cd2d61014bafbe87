package tui

import "github.com/jask/rosterpick/internal/input"

// Fixed vertical layout, top to bottom: header, gap, card row, gap, preview panel, gap,
// slot row, status line, help. Heights include borders.
const (
	headerRows    = 1
	cardHeight    = 6
	previewHeight = 10
	slotHeight    = 3
	gapRows       = 1

	cardTop    = headerRows + gapRows
	previewTop = cardTop + cardHeight + gapRows
	slotTop    = previewTop + previewHeight + gapRows

	// select affordance row inside a card: border, name, class, rarity, select
	cardSelectRow = 4

	maxPreviewWidth = 40
)

type rect struct{ X, Y, W, H int }

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type cardHit struct {
	id   string
	body rect
	pick rect
}

// geometry is the clickable map of the last rendered frame.
type geometry struct {
	cards   []cardHit
	preview rect
	slots   []rect
}

func (a *App) geometry() geometry {
	var g geometry
	ids := a.pageIDs()
	for i, id := range ids {
		x := i * (a.cardWidth + 1)
		g.cards = append(g.cards, cardHit{
			id:   id,
			body: rect{X: x, Y: cardTop, W: a.cardWidth, H: cardHeight},
			pick: rect{X: x + 1, Y: cardTop + cardSelectRow, W: a.cardWidth - 2, H: 1},
		})
	}
	g.preview = rect{X: 0, Y: previewTop, W: a.previewWidth(), H: previewHeight}
	for i := 0; i < a.sess.Slots.Len(); i++ {
		g.slots = append(g.slots, rect{X: i * (a.cardWidth + 1), Y: slotTop, W: a.cardWidth, H: slotHeight})
	}
	return g
}

func (a *App) previewWidth() int {
	return max(20, min(maxPreviewWidth, a.width/2))
}

// pageIDs returns the ids of the cards currently on screen.
func (a *App) pageIDs() []string {
	ids := a.sess.Selection.Visible()
	if a.offset >= len(ids) {
		return nil
	}
	end := min(len(ids), a.offset+a.cardsPerPage())
	return ids[a.offset:end]
}

// hit describes what lies under a terminal cell.
type hit struct {
	surface  input.Surface
	entityID string
	onSelect bool
	slot     int
}

func (g geometry) at(x, y int) hit {
	for _, c := range g.cards {
		if c.pick.contains(x, y) {
			return hit{surface: input.SurfaceCard, entityID: c.id, onSelect: true, slot: -1}
		}
		if c.body.contains(x, y) {
			return hit{surface: input.SurfaceCard, entityID: c.id, slot: -1}
		}
	}
	if g.preview.contains(x, y) {
		return hit{surface: input.SurfacePreview, slot: -1}
	}
	for i, s := range g.slots {
		if s.contains(x, y) {
			return hit{surface: input.SurfaceSlot, slot: i}
		}
	}
	return hit{surface: input.SurfaceNone, slot: -1}
}
