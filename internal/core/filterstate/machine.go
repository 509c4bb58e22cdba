package filterstate

import (
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// Machine applies transitions for one browsing session and mirrors the
// listing type into the address bar through the injected synchronizer.
// It is confined to the interaction goroutine: transitions run
// synchronously, so none can observe a half-applied predecessor.
type Machine struct {
	basePath string
	urlSync  port.URLSynchronizerPort
	state    State
}

// NewMachine starts a session on the department page at basePath (e.g.
// "/san-salvador") with the URL-driven listing type already active.
func NewMachine(basePath string, active TypeFilter, urlSync port.URLSynchronizerPort) *Machine {
	return &Machine{
		basePath: basePath,
		urlSync:  urlSync,
		state:    NewState(active),
	}
}

// State returns the current selection value.
func (m *Machine) State() State { return m.state }

// SetType switches the deal type and updates the address bar without a
// page transition, keeping the type segment shareable and crawlable.
func (m *Machine) SetType(t TypeFilter) {
	m.state = m.state.SetType(t)
	if m.urlSync != nil {
		m.urlSync.SetVisiblePath(m.VisiblePath())
	}
}

// VisiblePath is the canonical URL path for the current listing type.
func (m *Machine) VisiblePath() string {
	switch m.state.Type {
	case TypeSale:
		return m.basePath + "/venta"
	case TypeRent:
		return m.basePath + "/renta"
	default:
		return m.basePath
	}
}

func (m *Machine) SetSort(option domain.SortOption) { m.state = m.state.SetSort(option) }

func (m *Machine) ApplyPrice(min, max *float64) { m.state = m.state.ApplyPrice(min, max) }

func (m *Machine) ClearPrice() { m.state = m.state.ClearPrice() }

func (m *Machine) ToggleMunicipio(name string) { m.state = m.state.ToggleMunicipio(name) }

func (m *Machine) ToggleCategory(name string) { m.state = m.state.ToggleCategory(name) }

func (m *Machine) ClearAll() { m.state = m.state.ClearAll() }

func (m *Machine) RemoveChip(chipID string) { m.state = m.state.RemoveChip(chipID) }
