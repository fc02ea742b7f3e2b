package service

import (
	"errors"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

func TestModuleRouter_Defaults(t *testing.T) {
	st := NewModuleRouter().Snapshot()
	if st.Active != domain.ModuleDashboard || st.DrawerOpen {
		t.Fatalf("unexpected initial state: %+v", st)
	}
}

func TestModuleRouter_SelectFromDrawerCloses(t *testing.T) {
	r := NewModuleRouter()
	r.SetDrawer(true)

	if err := r.SelectFromDrawer(domain.ModuleDocGen); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	st := r.Snapshot()
	if st.Active != domain.ModuleDocGen || st.DrawerOpen {
		t.Fatalf("expected docgen with closed drawer, got %+v", st)
	}
}

func TestModuleRouter_SetActiveKeepsDrawer(t *testing.T) {
	r := NewModuleRouter()
	if open := r.ToggleDrawer(); !open {
		t.Fatalf("toggle should open the drawer")
	}
	if err := r.SetActive(domain.ModuleRentGuard); err != nil {
		t.Fatalf("set active failed: %v", err)
	}
	if st := r.Snapshot(); st.Active != domain.ModuleRentGuard || !st.DrawerOpen {
		t.Fatalf("programmatic change must not close the drawer: %+v", st)
	}
}

func TestModuleRouter_RejectsUnknownModule(t *testing.T) {
	r := NewModuleRouter()
	if err := r.SetActive("billing"); !errors.Is(err, domain.ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
	if err := r.SelectFromDrawer("billing"); !errors.Is(err, domain.ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
	if r.Snapshot().Active != domain.ModuleDashboard {
		t.Fatalf("state changed on invalid module")
	}
}

func TestModuleRouter_Navigation(t *testing.T) {
	r := NewModuleRouter()
	_ = r.SetActive(domain.ModuleContractSafe)

	items := r.Navigation(echoTranslator{})
	if len(items) != len(domain.Modules) {
		t.Fatalf("expected %d items, got %d", len(domain.Modules), len(items))
	}
	if items[1].ID != domain.ModuleNyayaQA || items[1].Label != "t:nyayaQA" {
		t.Fatalf("unexpected item: %+v", items[1])
	}
	for _, it := range items {
		if it.Active != (it.ID == domain.ModuleContractSafe) {
			t.Fatalf("wrong active flag on %+v", it)
		}
	}
}
