package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/vtt/overlay"
)

// Browser lists every overlay in a sortable, filterable table.
type Browser struct {
	filterText    string
	sortColumn    int
	sortAscending bool
	selected      string
	rowsPerPage   int
	currentPage   int
}

func NewBrowser(rowsPerPage int) *Browser {
	return &Browser{
		sortColumn:    ColumnElement,
		sortAscending: true,
		rowsPerPage:   rowsPerPage,
	}
}

// Selected returns the UUID of the selected overlay, or "" when none is selected
func (b *Browser) Selected() string {
	return b.selected
}

// Select marks an overlay as selected
func (b *Browser) Select(uuid string) {
	b.selected = uuid
}

// Page returns the rows shown on the current page, clamping the page index
func (b *Browser) Page(rows []Row) []Row {
	if b.rowsPerPage <= 0 {
		return rows
	}
	pages := (len(rows) + b.rowsPerPage - 1) / b.rowsPerPage
	if b.currentPage >= pages {
		b.currentPage = max(pages-1, 0)
	}
	start := b.currentPage * b.rowsPerPage
	end := min(start+b.rowsPerPage, len(rows))
	return rows[start:end]
}

func (b *Browser) Render(store *overlay.Store) {
	if !imgui.BeginV("Overlay Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &b.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		b.filterText = ""
	}

	rows := CollectRows(store, b.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("OverlayTable", 5, tableFlags, imgui.NewVec2(0, -30), 0) {
		imgui.TableSetupColumn("UUID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Element")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Visible")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			b.sortColumn = int(spec.ColumnIndex())
			b.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		SortRows(rows, b.sortColumn, b.sortAscending)

		for _, row := range b.Page(rows) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(row.UUID, row.UUID == b.selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.selected = row.UUID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Element))

			imgui.TableNextColumn()
			imgui.Text(row.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%v", row.Visible))
		}

		imgui.EndTable()
	}

	if imgui.Button("< Prev") && b.currentPage > 0 {
		b.currentPage--
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("Page %d (%d overlays)", b.currentPage+1, len(rows)))
	imgui.SameLine()
	if imgui.Button("Next >") && (b.currentPage+1)*b.rowsPerPage < len(rows) {
		b.currentPage++
	}

	imgui.End()
}
