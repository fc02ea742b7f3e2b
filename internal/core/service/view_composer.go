package service

import (
	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

var roleDashboards = map[domain.Role]domain.Screen{
	domain.RoleCitizen: domain.ScreenCitizenDashboard,
	domain.RoleLawyer:  domain.ScreenLawyerDashboard,
	domain.RoleAdmin:   domain.ScreenAdminDashboard,
}

var featureScreens = map[domain.Module]domain.Screen{
	domain.ModuleNyayaQA:      domain.ScreenNyayaQA,
	domain.ModuleDocGen:       domain.ScreenDocGen,
	domain.ModuleRentGuard:    domain.ScreenRentGuard,
	domain.ModuleContractSafe: domain.ScreenContractSafe,
}

var screenTitles = map[domain.Screen]string{
	domain.ScreenLanding:          "welcomeTitle",
	domain.ScreenCitizenDashboard: "citizenDashboard",
	domain.ScreenLawyerDashboard:  "lawyerDashboard",
	domain.ScreenAdminDashboard:   "adminDashboard",
	domain.ScreenNyayaQA:          "nyayaQA",
	domain.ScreenDocGen:           "docGen",
	domain.ScreenRentGuard:        "rentGuard",
	domain.ScreenContractSafe:     "contractSafe",
}

// View is a composed screen with its display title.
type View struct {
	Screen domain.Screen `json:"screen"`
	Module domain.Module `json:"module"`
	Role   domain.Role   `json:"role,omitempty"`
	Title  string        `json:"title"`
}

// ViewComposer maps a session and the active module to the screen to render.
// It has no state and no side effects.
type ViewComposer struct{}

func NewViewComposer() ViewComposer { return ViewComposer{} }

// Compose applies, in order:
//  1. anonymous: feature module, else the landing dashboard;
//  2. authenticated on the dashboard: the role dashboard, or landing for an
//     unknown role;
//  3. authenticated on a feature module: that module for every role;
//  4. authenticated on an unknown module: as rule 2.
func (ViewComposer) Compose(s domain.Session, m domain.Module) domain.Screen {
	id, ok := s.Identity()
	if !ok {
		if screen, ok := featureScreens[m]; ok {
			return screen
		}
		return domain.ScreenLanding
	}

	if screen, ok := featureScreens[m]; ok {
		return screen
	}
	if screen, ok := roleDashboards[id.Role()]; ok {
		return screen
	}
	return domain.ScreenLanding
}

// Describe composes the screen and resolves its title.
func (c ViewComposer) Describe(s domain.Session, m domain.Module, t ports.Translator) View {
	screen := c.Compose(s, m)
	v := View{Screen: screen, Module: m, Title: t.T(screenTitles[screen])}
	if id, ok := s.Identity(); ok {
		v.Role = id.Role()
	}
	return v
}
