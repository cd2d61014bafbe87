package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/rosterpick/internal/catalog"
)

var headingArrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	rows := []string{
		a.renderHeader(),
		"",
		a.renderCards(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, a.renderPreview(), " ", a.renderDetails()),
		"",
		a.renderSlots(),
		a.renderStatus(),
		a.help.View(a.keys),
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderHeader() string {
	c := a.sess.Criteria()
	chip := func(k, v string) string { return chipKey.Render(k) + " " + chipValue.Render(v) }
	parts := []string{
		titleStyle.Render("ROSTER"),
		chip("class", c.Class),
		chip("rarity", c.Rarity.String()),
		chip("owned", c.Unlocked.String()),
		chip("sort", a.sess.SortKey().String()),
	}
	n := len(a.sess.Selection.Visible())
	if page := a.pageIDs(); len(page) > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d-%d of %d", a.offset+1, a.offset+len(page), n)))
	} else {
		parts = append(parts, dimStyle.Render("0 shown"))
	}
	switch {
	case a.searching:
		parts = append(parts, a.search.View())
	case c.Query != "":
		parts = append(parts, chip("/", c.Query))
	}
	return ansi.Truncate(strings.Join(parts, "  "), a.width, "…")
}

func (a *App) renderCards() string {
	ids := a.pageIDs()
	if len(ids) == 0 {
		return lipgloss.NewStyle().Height(cardHeight).Render(dimStyle.Render("No characters match the current filters."))
	}
	cards := make([]string, 0, len(ids)*2)
	for i, id := range ids {
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, a.renderCard(id))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a *App) renderCard(id string) string {
	e, _ := a.sess.Store().Get(id)
	iw := a.cardWidth - 2
	fit := func(s string) string { return ansi.Truncate(s, iw, "…") }

	name := nameStyle.Render(e.Name)
	if !e.Unlocked {
		name = dimStyle.Render(e.Name + " (locked)")
	}
	meta := e.Class
	if e.Element != "" {
		meta += " · " + e.Element
	}
	tier := rarityStyle(e.Rarity).Render(e.Rarity.String()) + dimStyle.Render(fmt.Sprintf(" %.0f", e.Power))

	confirmed := a.sess.Selection.Confirmed() == id
	pick := selectStyle.Render("[ select ]")
	if confirmed {
		pick = selectedStyle.Render("[selected]")
	}

	body := strings.Join([]string{
		fit(name),
		fit(labelStyle.Render(meta)),
		fit(tier),
		lipgloss.PlaceHorizontal(iw, lipgloss.Center, pick),
	}, "\n")

	style := cardStyle
	switch {
	case confirmed:
		style = cardConfirmStyle
	case a.sess.Selection.PreviewedID() == id:
		style = cardFocusStyle
	}
	return style.Width(iw).Height(cardHeight - 2).Render(body)
}

func (a *App) renderPreview() string {
	pw := a.previewWidth()
	iw := pw - 2
	style := panelStyle
	if a.sess.Preview.Dragging() {
		style = panelActiveStyle
	}
	style = style.Width(iw).Height(previewHeight - 2)

	e, ok := a.sess.Selection.Previewed()
	if !ok {
		return style.Render(dimStyle.Render("Nothing to preview."))
	}
	eng := a.sess.Preview
	cfg := eng.Config()
	heading := eng.Heading()
	arrow := headingArrows[int(math.Mod(heading+22.5, 360)/45)%len(headingArrows)]

	pose := "-"
	if len(e.Poses) > 0 {
		pose = fmt.Sprintf("%s (%d/%d)", a.sess.Selection.Pose(), a.sess.Selection.PoseIndex()+1, len(e.Poses))
	}
	zoomSpan := cfg.MaxZoom - cfg.MinZoom
	lines := []string{
		rarityStyle(e.Rarity).Bold(true).Render(e.Name) + " " + dimStyle.Render(e.Faction),
		labelStyle.Render("facing ") + arrow + fmt.Sprintf(" %3.0f°", heading),
		labelStyle.Render("pose   ") + pose,
		labelStyle.Render("zoom   ") + bar(eng.Zoom()-cfg.MinZoom, zoomSpan, 10) + fmt.Sprintf(" %.2fx", eng.Zoom()),
		"",
		dimStyle.Render("drag to rotate, wheel to zoom"),
	}
	if id := a.sess.Selection.Confirmed(); id != "" {
		if c, ok := a.sess.Store().Get(id); ok {
			lines = append(lines, selectedStyle.Render("Selected: "+c.Name))
		}
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, iw, "…")
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (a *App) renderDetails() string {
	dw := max(10, a.width-a.previewWidth()-1)
	iw := dw - 2
	style := panelStyle.Width(iw).Height(previewHeight - 2)

	e, ok := a.sess.Selection.Previewed()
	if !ok {
		return style.Render("")
	}
	stat := func(label string, v, limit int) string {
		return labelStyle.Render(label) + " " + bar(float64(v), float64(limit), 10) + dimStyle.Render(fmt.Sprintf(" %d", v))
	}
	lines := []string{
		stat("HP ", e.Stats.Health, 1000),
		stat("ATK", e.Stats.Attack, 100),
		stat("DEF", e.Stats.Defense, 100),
		stat("SPD", e.Stats.Speed, 100),
		stat("DIF", e.Stats.Difficulty, 10),
	}
	for i, ab := range e.Abilities {
		if i == 3 {
			break
		}
		line := chipValue.Render("["+ab.Key+"]") + " " + ab.Name
		if ab.Type == catalog.AbilityPassive {
			line += dimStyle.Render(" passive")
		} else if ab.Cooldown != "" {
			line += dimStyle.Render(" " + ab.Cooldown)
		}
		lines = append(lines, line)
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, iw, "…")
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (a *App) renderSlots() string {
	iw := a.cardWidth - 2
	boxes := make([]string, 0, a.sess.Slots.Len()*2)
	for i := 0; i < a.sess.Slots.Len(); i++ {
		if i > 0 {
			boxes = append(boxes, " ")
		}
		label := dimStyle.Render(fmt.Sprintf("%d empty", i+1))
		if e, ok := a.sess.Slots.Entity(i); ok {
			label = chipKey.Render(fmt.Sprintf("%d ", i+1)) + rarityStyle(e.Rarity).Render(e.Name)
		}
		style := slotStyle
		if a.mouse.dragging && a.mouse.dropAllowed && a.mouse.overSlot == i {
			style = slotDropStyle
		}
		boxes = append(boxes, style.Width(iw).Render(ansi.Truncate(label, iw, "…")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (a *App) renderStatus() string {
	text := a.status
	style := statusStyle
	if a.statusIsErr {
		style = errorStyle
	}
	if text == "" && a.mouse.dragging {
		if e, ok := a.sess.Store().Get(a.mouse.pressID); ok {
			text = "Dragging " + e.Name + " to a slot"
		}
	}
	if text == "" {
		text = "Drag a card onto a slot or press 1-9 to assign the focused character."
	}
	return style.Width(a.width).Render(ansi.Truncate(text, a.width, "…"))
}

// bar renders v out of limit as a fixed-width gauge.
func bar(v, limit float64, width int) string {
	frac := 0.0
	if limit > 0 {
		frac = math.Max(0, math.Min(1, v/limit))
	}
	full := int(math.Round(frac * float64(width)))
	return barFullStyle.Render(strings.Repeat("█", full)) + barEmptyStyle.Render(strings.Repeat("░", width-full))
}
