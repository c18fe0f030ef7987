package debugui

import (
	"sort"
	"strings"

	"github.com/plus3/vtt/overlay"
	"github.com/plus3/vtt/shape"
)

const (
	ColumnUUID = iota
	ColumnKind
	ColumnElement
	ColumnName
	ColumnVisible
)

// Row is one overlay as listed by the browser
type Row struct {
	UUID    string
	Kind    shape.Kind
	Element overlay.ElementId
	Name    string
	Visible bool
}

// CollectRows lists the overlays whose UUID, kind or name contains filter,
// ignoring case. An empty filter lists everything.
func CollectRows(store *overlay.Store, filter string) []Row {
	filter = strings.ToLower(filter)
	rows := make([]Row, 0, store.Len())

	keep := func(r Row) {
		if filter == "" ||
			strings.Contains(strings.ToLower(r.UUID), filter) ||
			strings.Contains(r.Kind.String(), filter) ||
			strings.Contains(strings.ToLower(r.Name), filter) {
			rows = append(rows, r)
		}
	}

	for element, t := range store.Trackers() {
		keep(Row{UUID: t.UUID, Kind: shape.KindTracker, Element: element, Name: t.Name, Visible: t.Visible})
	}
	for element, a := range store.Auras() {
		keep(Row{UUID: a.UUID, Kind: shape.KindAura, Element: element, Name: a.Name, Visible: a.Visible})
	}
	for element, l := range store.Labels() {
		keep(Row{UUID: l.UUID, Kind: shape.KindLabel, Element: element, Name: l.Name, Visible: l.Visible})
	}
	return rows
}

// SortRows orders rows by a Column* index. Ties are broken by UUID so the
// order is stable between frames.
func SortRows(rows []Row, column int, ascending bool) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less, equal bool

		switch column {
		case ColumnKind:
			less, equal = a.Kind < b.Kind, a.Kind == b.Kind
		case ColumnElement:
			less, equal = a.Element < b.Element, a.Element == b.Element
		case ColumnName:
			less, equal = a.Name < b.Name, a.Name == b.Name
		case ColumnVisible:
			less, equal = !a.Visible && b.Visible, a.Visible == b.Visible
		default:
			less, equal = a.UUID < b.UUID, a.UUID == b.UUID
		}

		if equal {
			return a.UUID < b.UUID
		}
		if !ascending {
			return !less
		}
		return less
	})
}
