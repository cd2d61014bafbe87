package input

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

const (
	ActionNext          Action = "next"
	ActionPrev          Action = "prev"
	ActionConfirm       Action = "confirm"
	ActionClear         Action = "clear"
	ActionToggle        Action = "toggle"
	ActionPoseNext      Action = "pose-next"
	ActionPosePrev      Action = "pose-prev"
	ActionZoomIn        Action = "zoom-in"
	ActionZoomOut       Action = "zoom-out"
	ActionResetView     Action = "reset-view"
	ActionAssign        Action = "assign"
	ActionCycleClass    Action = "cycle-class"
	ActionCycleRarity   Action = "cycle-rarity"
	ActionCycleUnlocked Action = "cycle-unlocked"
	ActionCycleSort     Action = "cycle-sort"
	ActionSearch        Action = "search"
	ActionSave          Action = "save"
	ActionHelp          Action = "help"
	ActionQuit          Action = "quit"
)

// Keymap binds key names to actions. Lookup walks actions in declaration order, so the
// first binding that lists a key wins.
type Keymap struct {
	order    []Action
	bindings map[Action]key.Binding
}

type bindingSpec struct {
	action Action
	keys   []string
	help   string
	desc   string
}

var defaultBindings = []bindingSpec{
	{ActionNext, []string{"right", "l"}, "→", "next"},
	{ActionPrev, []string{"left", "h"}, "←", "prev"},
	{ActionConfirm, []string{"enter"}, "enter", "select"},
	{ActionClear, []string{"esc"}, "esc", "clear"},
	{ActionToggle, []string{" ", "space"}, "space", "toggle"},
	{ActionPoseNext, []string{"]"}, "]", "next pose"},
	{ActionPosePrev, []string{"["}, "[", "prev pose"},
	{ActionZoomIn, []string{"+", "="}, "+", "zoom in"},
	{ActionZoomOut, []string{"-"}, "-", "zoom out"},
	{ActionResetView, []string{"0"}, "0", "reset view"},
	{ActionAssign, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "1-9", "to slot"},
	{ActionCycleClass, []string{"c"}, "c", "class"},
	{ActionCycleRarity, []string{"r"}, "r", "rarity"},
	{ActionCycleUnlocked, []string{"u"}, "u", "owned"},
	{ActionCycleSort, []string{"s"}, "s", "sort"},
	{ActionSearch, []string{"/"}, "/", "search"},
	{ActionSave, []string{"ctrl+s"}, "ctrl+s", "save team"},
	{ActionHelp, []string{"?"}, "?", "more"},
	{ActionQuit, []string{"q", "ctrl+c"}, "q", "quit"},
}

func DefaultKeymap() Keymap {
	km := Keymap{bindings: make(map[Action]key.Binding, len(defaultBindings))}
	for _, b := range defaultBindings {
		km.order = append(km.order, b.action)
		km.bindings[b.action] = key.NewBinding(key.WithKeys(b.keys...), key.WithHelp(b.help, b.desc))
	}
	return km
}

// WithOverrides replaces the keys of the named actions. Unknown actions and empty key
// lists are ignored. The help label follows the first new key.
func (km Keymap) WithOverrides(overrides map[string][]string) Keymap {
	out := Keymap{order: slices.Clone(km.order), bindings: make(map[Action]key.Binding, len(km.bindings))}
	for a, b := range km.bindings {
		out.bindings[a] = b
	}
	for name, keys := range overrides {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		b, ok := out.bindings[action]
		if !ok {
			continue
		}
		cleaned := make([]string, 0, len(keys))
		for _, k := range keys {
			if k = normalizeKey(k); k != "" {
				cleaned = append(cleaned, k)
			}
		}
		if len(cleaned) == 0 {
			continue
		}
		out.bindings[action] = key.NewBinding(key.WithKeys(cleaned...), key.WithHelp(cleaned[0], b.Help().Desc))
	}
	return out
}

// Lookup maps a key name to its action.
func (km Keymap) Lookup(name string) (Action, bool) {
	name = normalizeKey(name)
	for _, a := range km.order {
		b := km.bindings[a]
		if b.Enabled() && slices.Contains(b.Keys(), name) {
			return a, true
		}
	}
	return "", false
}

func (km Keymap) Binding(a Action) key.Binding {
	return km.bindings[a]
}

// ShortHelp implements help.KeyMap.
func (km Keymap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.bindings[ActionPrev], km.bindings[ActionNext], km.bindings[ActionConfirm],
		km.bindings[ActionClear], km.bindings[ActionSearch], km.bindings[ActionHelp], km.bindings[ActionQuit],
	}
}

// FullHelp implements help.KeyMap.
func (km Keymap) FullHelp() [][]key.Binding {
	cols := [][]Action{
		{ActionPrev, ActionNext, ActionConfirm, ActionToggle, ActionClear},
		{ActionPoseNext, ActionPosePrev, ActionZoomIn, ActionZoomOut, ActionResetView},
		{ActionCycleClass, ActionCycleRarity, ActionCycleUnlocked, ActionCycleSort, ActionSearch},
		{ActionAssign, ActionSave, ActionHelp, ActionQuit},
	}
	out := make([][]key.Binding, 0, len(cols))
	for _, col := range cols {
		row := make([]key.Binding, 0, len(col))
		for _, a := range col {
			row = append(row, km.bindings[a])
		}
		out = append(out, row)
	}
	return out
}

// normalizeKey lowercases named keys but keeps single printable runes and the space key
// as typed, so "+" and " " survive.
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.TrimSpace(k)
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}
