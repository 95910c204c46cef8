package model

import (
	"github.com/soocke/pixel-overlay-go/domain/source"
)

// SlotsModel holds the currently loaded base and overlay resources.
// No synchronization needed: updates occur on the UI thread tick.
// The zero value is ready to use.
type SlotsModel struct {
	slots [len(source.Roles)]*source.ImageResource
}

// NewSlotsModel returns a pointer to a ready-to-use SlotsModel.
func NewSlotsModel() *SlotsModel { return &SlotsModel{} }

// Set stores res in role's slot, replacing any previous resource. It reports
// whether this call moved the model from "not both present" to "both present".
// Replacing a resource while both are already present reports false.
func (m *SlotsModel) Set(role source.Role, res *source.ImageResource) (completed bool) {
	if m == nil || !validRole(role) {
		return false
	}
	before := m.Both()
	m.slots[role] = res
	return !before && m.Both()
}

// Get returns the resource in role's slot or nil.
func (m *SlotsModel) Get(role source.Role) *source.ImageResource {
	if m == nil || !validRole(role) {
		return nil
	}
	return m.slots[role]
}

// Base and Overlay are shorthands for Get.
func (m *SlotsModel) Base() *source.ImageResource    { return m.Get(source.RoleBase) }
func (m *SlotsModel) Overlay() *source.ImageResource { return m.Get(source.RoleOverlay) }

// Both reports whether both slots are filled; the comparison view is active
// exactly when this holds.
func (m *SlotsModel) Both() bool {
	if m == nil {
		return false
	}
	return m.slots[source.RoleBase] != nil && m.slots[source.RoleOverlay] != nil
}

func validRole(r source.Role) bool { return r >= 0 && int(r) < len(source.Roles) }
