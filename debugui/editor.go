package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/vtt/overlay"
	"github.com/plus3/vtt/shape"
)

// Editor edits the selected overlay. Every edit goes through the store's
// Update methods, so rejected values never reach the record; the last
// rejection is shown under the fields.
type Editor struct {
	lastError string
	editing   string
}

// LastError returns the message of the most recent rejected edit
func (e *Editor) LastError() string {
	return e.lastError
}

// commit records the outcome of an update
func (e *Editor) commit(err error) {
	if err != nil {
		e.lastError = err.Error()
		return
	}
	e.lastError = ""
}

func (e *Editor) Render(store *overlay.Store, uuid string) {
	if !imgui.BeginV("Overlay Editor", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if uuid != e.editing {
		e.editing = uuid
		e.lastError = ""
	}

	if uuid == "" {
		imgui.Text("No overlay selected")
		imgui.End()
		return
	}

	owner, ok := store.Owner(uuid)
	if !ok {
		imgui.Text(fmt.Sprintf("Overlay %s no longer exists", uuid))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("UUID: %s", uuid))
	imgui.Text(fmt.Sprintf("Element: %d", owner))
	imgui.Separator()

	switch store.Kind(uuid) {
	case shape.KindTracker:
		tr, _ := store.Tracker(uuid)
		edited := *tr
		if e.renderTracker(&edited) {
			e.commit(store.UpdateTracker(uuid, func(t *shape.Tracker) { *t = edited }))
		}
	case shape.KindAura:
		au, _ := store.Aura(uuid)
		edited := *au
		if e.renderAura(&edited) {
			e.commit(store.UpdateAura(uuid, func(a *shape.Aura) { *a = edited }))
		}
		if imgui.Button("Compute Outline") {
			_, err := store.AuraOutline(uuid)
			e.commit(err)
		}
	case shape.KindLabel:
		lb, _ := store.Label(uuid)
		edited := *lb
		if e.renderLabel(&edited) {
			e.commit(store.UpdateLabel(uuid, func(l *shape.Label) { *l = edited }))
		}
	}

	if e.lastError != "" {
		imgui.Separator()
		imgui.Text("Rejected: " + e.lastError)
	}

	imgui.End()
}

func (e *Editor) renderTracker(t *shape.Tracker) bool {
	changed := textField("Name", &t.Name)
	changed = checkbox("Visible", &t.Visible) || changed
	changed = checkbox("Draw", &t.Draw) || changed
	changed = floatField("Value", &t.Value) || changed
	changed = floatField("Max Value", &t.MaxValue) || changed
	changed = textField("Primary Color", &t.PrimaryColor) || changed
	changed = textField("Secondary Color", &t.SecondaryColor) || changed
	return changed
}

func (e *Editor) renderAura(a *shape.Aura) bool {
	changed := textField("Name", &a.Name)
	changed = checkbox("Active", &a.Active) || changed
	changed = checkbox("Vision Source", &a.VisionSource) || changed
	changed = checkbox("Visible", &a.Visible) || changed
	changed = floatField("Value", &a.Value) || changed
	changed = floatField("Dim", &a.Dim) || changed
	changed = floatField("Angle", &a.Angle) || changed
	changed = floatField("Direction", &a.Direction) || changed
	changed = textField("Colour", &a.Colour) || changed
	changed = textField("Border Colour", &a.BorderColour) || changed

	if a.LastPath == nil {
		imgui.Text("Outline: not computed")
	} else {
		imgui.Text(fmt.Sprintf("Outline: %d points", len(a.LastPath.Points)))
	}
	return changed
}

func (e *Editor) renderLabel(l *shape.Label) bool {
	changed := textField("Category", &l.Category)
	changed = textField("Name", &l.Name) || changed
	changed = checkbox("Visible", &l.Visible) || changed
	changed = textField("User", &l.User) || changed
	return changed
}

func checkbox(name string, v *bool) bool {
	return imgui.Checkbox(name, v)
}

func floatField(name string, v *float64) bool {
	f := float32(*v)
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat(fmt.Sprintf("##%s", name), &f) {
		*v = float64(f)
		return true
	}
	return false
}

func textField(name string, v *string) bool {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	return imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", v, imgui.InputTextFlagsNone, nil)
}
