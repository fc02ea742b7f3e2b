package domain

// Module is the top-level area selected in the portal.
type Module string

const (
	ModuleDashboard    Module = "dashboard"
	ModuleNyayaQA      Module = "nyayaqa"
	ModuleDocGen       Module = "docgen"
	ModuleRentGuard    Module = "rentguard"
	ModuleContractSafe Module = "contractsafe"
)

// Modules lists every module in navigation order.
var Modules = []Module{
	ModuleDashboard,
	ModuleNyayaQA,
	ModuleDocGen,
	ModuleRentGuard,
	ModuleContractSafe,
}

// Valid reports whether m names a known module.
func (m Module) Valid() bool {
	return m == ModuleDashboard || m.IsFeature()
}

// IsFeature reports whether m is one of the four role-agnostic feature modules.
func (m Module) IsFeature() bool {
	switch m {
	case ModuleNyayaQA, ModuleDocGen, ModuleRentGuard, ModuleContractSafe:
		return true
	}
	return false
}

// ParseModule validates a module identifier coming from outside the process.
func ParseModule(s string) (Module, error) {
	m := Module(s)
	if !m.Valid() {
		return "", ErrUnknownModule
	}
	return m, nil
}

// Screen is the variant the view composer decides to render.
type Screen string

const (
	ScreenLanding          Screen = "landing"
	ScreenCitizenDashboard Screen = "citizen_dashboard"
	ScreenLawyerDashboard  Screen = "lawyer_dashboard"
	ScreenAdminDashboard   Screen = "admin_dashboard"
	ScreenNyayaQA          Screen = "nyayaqa"
	ScreenDocGen           Screen = "docgen"
	ScreenRentGuard        Screen = "rentguard"
	ScreenContractSafe     Screen = "contractsafe"
)
