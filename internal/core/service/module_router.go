package service

import (
	"sync"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// moduleLabels maps each module to its translation key.
var moduleLabels = map[domain.Module]string{
	domain.ModuleDashboard:    "dashboard",
	domain.ModuleNyayaQA:      "nyayaQA",
	domain.ModuleDocGen:       "docGen",
	domain.ModuleRentGuard:    "rentGuard",
	domain.ModuleContractSafe: "contractSafe",
}

// RouterState is a snapshot of the module router.
type RouterState struct {
	Active     domain.Module
	DrawerOpen bool
}

// NavItem is one entry of the navigation drawer.
type NavItem struct {
	ID     domain.Module `json:"id"`
	Label  string        `json:"label"`
	Active bool          `json:"active"`
}

// ModuleRouter tracks the active module and whether the navigation drawer
// is open.
type ModuleRouter struct {
	mu         sync.Mutex
	active     domain.Module
	drawerOpen bool
}

func NewModuleRouter() *ModuleRouter {
	return &ModuleRouter{active: domain.ModuleDashboard}
}

// SetActive changes the module without touching the drawer.
func (r *ModuleRouter) SetActive(m domain.Module) error {
	if !m.Valid() {
		return domain.ErrUnknownModule
	}
	r.mu.Lock()
	r.active = m
	r.mu.Unlock()
	return nil
}

// SelectFromDrawer changes the module and closes the drawer in one step.
func (r *ModuleRouter) SelectFromDrawer(m domain.Module) error {
	if !m.Valid() {
		return domain.ErrUnknownModule
	}
	r.mu.Lock()
	r.active = m
	r.drawerOpen = false
	r.mu.Unlock()
	return nil
}

// ToggleDrawer flips the drawer and returns its new state.
func (r *ModuleRouter) ToggleDrawer() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawerOpen = !r.drawerOpen
	return r.drawerOpen
}

func (r *ModuleRouter) SetDrawer(open bool) {
	r.mu.Lock()
	r.drawerOpen = open
	r.mu.Unlock()
}

func (r *ModuleRouter) Snapshot() RouterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RouterState{Active: r.active, DrawerOpen: r.drawerOpen}
}

// Navigation lists every module in drawer order with its translated label.
func (r *ModuleRouter) Navigation(t ports.Translator) []NavItem {
	active := r.Snapshot().Active
	items := make([]NavItem, 0, len(domain.Modules))
	for _, m := range domain.Modules {
		items = append(items, NavItem{
			ID:     m,
			Label:  t.T(moduleLabels[m]),
			Active: m == active,
		})
	}
	return items
}
