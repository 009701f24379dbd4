package catalog

// Exoplanet is one planet of an exoplanet system. Radius is in Earth
// radii; imaging/RV radii are published estimates. A zero equilibrium
// temperature means no reliable published value.
type Exoplanet struct {
	Name         string
	RadiusEarths float64
	SemiMajorAU  float64
	PeriodDays   float64
	EquilibriumK float64
	Method       string
	Color        string
}

// System is an exoplanet host star with its planets, ordered by
// semi-major axis. HabInnerAU/HabOuterAU bound the optimistic
// habitable zone rendered as a ring shell.
type System struct {
	Name           string
	Star           string // spectral summary
	StarRadiusSuns float64
	StarColor      string
	DistanceLY     float64
	HabInnerAU     float64
	HabOuterAU     float64
	Planets        []Exoplanet
}

// Detection methods.
const (
	MethodTransit = "Transit"
	MethodRV      = "Radial velocity"
	MethodImaging = "Direct imaging"
)

// Systems is the exoplanet catalog: compact, display-grade values.
var Systems = []System{
	{
		Name: "TRAPPIST-1", Star: "M8V ultracool dwarf", StarRadiusSuns: 0.121,
		StarColor: "#ff6b4a", DistanceLY: 40.7, HabInnerAU: 0.022, HabOuterAU: 0.054,
		Planets: []Exoplanet{
			{"TRAPPIST-1 b", 1.12, 0.0115, 1.51, 400, MethodTransit, "#d98a5e"},
			{"TRAPPIST-1 c", 1.10, 0.0158, 2.42, 342, MethodTransit, "#d09066"},
			{"TRAPPIST-1 d", 0.79, 0.0223, 4.05, 288, MethodTransit, "#c7a178"},
			{"TRAPPIST-1 e", 0.92, 0.0293, 6.10, 251, MethodTransit, "#7fae8e"},
			{"TRAPPIST-1 f", 1.05, 0.0385, 9.21, 219, MethodTransit, "#6f9fb0"},
			{"TRAPPIST-1 g", 1.13, 0.0468, 12.35, 199, MethodTransit, "#6a92c2"},
			{"TRAPPIST-1 h", 0.76, 0.0619, 18.77, 173, MethodTransit, "#8ba0c9"},
		},
	},
	{
		Name: "Kepler-90", Star: "G0V sun-like star", StarRadiusSuns: 1.2,
		StarColor: "#fff3c9", DistanceLY: 2840, HabInnerAU: 1.0, HabOuterAU: 1.8,
		Planets: []Exoplanet{
			{"Kepler-90 b", 1.31, 0.074, 7.01, 0, MethodTransit, "#caa27d"},
			{"Kepler-90 c", 1.18, 0.089, 8.72, 0, MethodTransit, "#c49a76"},
			{"Kepler-90 i", 1.32, 0.107, 14.45, 0, MethodTransit, "#bd926f"},
			{"Kepler-90 d", 2.88, 0.32, 59.74, 0, MethodTransit, "#9fb2c4"},
			{"Kepler-90 e", 2.67, 0.42, 91.94, 0, MethodTransit, "#94aac0"},
			{"Kepler-90 f", 2.89, 0.48, 124.91, 0, MethodTransit, "#8aa2bb"},
			{"Kepler-90 g", 8.13, 0.71, 210.61, 0, MethodTransit, "#c9b694"},
			{"Kepler-90 h", 11.32, 1.01, 331.60, 0, MethodTransit, "#d4bd92"},
		},
	},
	{
		Name: "Kepler-11", Star: "G6V star with a packed inner system", StarRadiusSuns: 1.06,
		StarColor: "#ffeebf", DistanceLY: 2150, HabInnerAU: 0.9, HabOuterAU: 1.6,
		Planets: []Exoplanet{
			{"Kepler-11 b", 1.80, 0.091, 10.30, 0, MethodTransit, "#c7a07a"},
			{"Kepler-11 c", 2.87, 0.107, 13.02, 0, MethodTransit, "#b6a88f"},
			{"Kepler-11 d", 3.12, 0.155, 22.68, 0, MethodTransit, "#a3abaf"},
			{"Kepler-11 e", 4.19, 0.195, 31.99, 0, MethodTransit, "#96a7ba"},
			{"Kepler-11 f", 2.49, 0.250, 46.69, 0, MethodTransit, "#8fa3b3"},
			{"Kepler-11 g", 3.33, 0.466, 118.38, 0, MethodTransit, "#879bab"},
		},
	},
	{
		Name: "TOI-700", Star: "M2V red dwarf", StarRadiusSuns: 0.42,
		StarColor: "#ff8c5a", DistanceLY: 101.4, HabInnerAU: 0.12, HabOuterAU: 0.23,
		Planets: []Exoplanet{
			{"TOI-700 b", 1.01, 0.0677, 9.98, 0, MethodTransit, "#cc9468"},
			{"TOI-700 c", 2.63, 0.0929, 16.05, 0, MethodTransit, "#b49a84"},
			{"TOI-700 e", 0.95, 0.134, 27.81, 0, MethodTransit, "#79a491"},
			{"TOI-700 d", 1.19, 0.163, 37.42, 269, MethodTransit, "#6c9cb4"},
		},
	},
	{
		Name: "Proxima Centauri", Star: "M5.5V flare star, our nearest neighbor", StarRadiusSuns: 0.154,
		StarColor: "#ff5c3d", DistanceLY: 4.25, HabInnerAU: 0.032, HabOuterAU: 0.082,
		Planets: []Exoplanet{
			{"Proxima Centauri d", 0.81, 0.029, 5.12, 0, MethodRV, "#c89775"},
			{"Proxima Centauri b", 1.07, 0.0486, 11.19, 234, MethodRV, "#6fa3a0"},
			{"Proxima Centauri c", 1.60, 1.489, 1928, 0, MethodRV, "#7b8fb0"},
		},
	},
	{
		Name: "55 Cancri", Star: "G8V primary of a wide binary", StarRadiusSuns: 0.94,
		StarColor: "#ffe9b8", DistanceLY: 41, HabInnerAU: 0.59, HabOuterAU: 1.43,
		Planets: []Exoplanet{
			{"55 Cancri e", 1.88, 0.0154, 0.74, 1958, MethodTransit, "#e06a3f"},
			{"55 Cancri b", 4.80, 0.1134, 14.65, 0, MethodRV, "#c4a985"},
			{"55 Cancri c", 3.00, 0.2373, 44.39, 0, MethodRV, "#a9a79a"},
			{"55 Cancri f", 3.10, 0.774, 260.91, 0, MethodRV, "#83a0a8"},
			{"55 Cancri d", 13.00, 5.957, 5169, 0, MethodRV, "#c8b68f"},
		},
	},
	{
		Name: "GJ 667C", Star: "M1.5V member of a triple system", StarRadiusSuns: 0.33,
		StarColor: "#ff7e52", DistanceLY: 23.6, HabInnerAU: 0.095, HabOuterAU: 0.25,
		Planets: []Exoplanet{
			{"GJ 667C b", 1.94, 0.0505, 7.20, 0, MethodRV, "#c59570"},
			{"GJ 667C c", 1.54, 0.125, 28.14, 247, MethodRV, "#6da294"},
			{"GJ 667C f", 1.40, 0.156, 39.03, 0, MethodRV, "#6f9aa9"},
		},
	},
	{
		Name: "K2-138", Star: "K1V star with a resonant chain", StarRadiusSuns: 0.86,
		StarColor: "#ffd9a0", DistanceLY: 660, HabInnerAU: 0.55, HabOuterAU: 1.1,
		Planets: []Exoplanet{
			{"K2-138 b", 1.51, 0.0338, 2.35, 0, MethodTransit, "#cf9c70"},
			{"K2-138 c", 2.30, 0.0445, 3.56, 0, MethodTransit, "#c3a07e"},
			{"K2-138 d", 2.39, 0.0562, 5.40, 0, MethodTransit, "#b3a392"},
			{"K2-138 e", 3.39, 0.0781, 8.26, 0, MethodTransit, "#9ca6af"},
			{"K2-138 f", 2.90, 0.1043, 12.76, 0, MethodTransit, "#8fa2b4"},
			{"K2-138 g", 3.01, 0.23, 41.97, 0, MethodTransit, "#8399ad"},
		},
	},
	{
		Name: "Kepler-186", Star: "M1V dwarf", StarRadiusSuns: 0.47,
		StarColor: "#ff9a64", DistanceLY: 580, HabInnerAU: 0.22, HabOuterAU: 0.40,
		Planets: []Exoplanet{
			{"Kepler-186 b", 1.07, 0.0378, 3.89, 0, MethodTransit, "#cb9a72"},
			{"Kepler-186 c", 1.25, 0.0574, 7.27, 0, MethodTransit, "#bf9c7e"},
			{"Kepler-186 d", 1.40, 0.0861, 13.34, 0, MethodTransit, "#ab9e8d"},
			{"Kepler-186 e", 1.27, 0.11, 22.41, 0, MethodTransit, "#94a19c"},
			{"Kepler-186 f", 1.17, 0.432, 129.94, 188, MethodTransit, "#5f9e8f"},
		},
	},
	{
		Name: "HR 8799", Star: "A5V star imaged with its giants in orbit", StarRadiusSuns: 1.44,
		StarColor: "#e8f0ff", DistanceLY: 133, HabInnerAU: 4.5, HabOuterAU: 9.5,
		Planets: []Exoplanet{
			{"HR 8799 e", 13.4, 16.4, 18250, 0, MethodImaging, "#d8a06a"},
			{"HR 8799 d", 13.4, 27, 36500, 0, MethodImaging, "#d09a66"},
			{"HR 8799 c", 14.6, 42.9, 69350, 0, MethodImaging, "#c89462"},
			{"HR 8799 b", 13.4, 68, 164250, 0, MethodImaging, "#c08e5e"},
		},
	},
	{
		Name: "HD 40307", Star: "K2.5V dwarf with a super-Earth retinue", StarRadiusSuns: 0.72,
		StarColor: "#ffcf96", DistanceLY: 42, HabInnerAU: 0.43, HabOuterAU: 0.85,
		Planets: []Exoplanet{
			{"HD 40307 b", 1.40, 0.047, 4.31, 0, MethodRV, "#c89b73"},
			{"HD 40307 c", 1.60, 0.080, 9.62, 0, MethodRV, "#bd9d80"},
			{"HD 40307 d", 1.80, 0.132, 20.43, 0, MethodRV, "#ab9f90"},
			{"HD 40307 e", 1.30, 0.19, 34.62, 0, MethodRV, "#98a19d"},
			{"HD 40307 f", 1.50, 0.247, 51.76, 0, MethodRV, "#8a9ea9"},
			{"HD 40307 g", 1.70, 0.60, 197.8, 0, MethodRV, "#6d9aa6"},
		},
	},
	{
		Name: "GJ 876", Star: "M4V dwarf with a Laplace resonance", StarRadiusSuns: 0.38,
		StarColor: "#ff7042", DistanceLY: 15.2, HabInnerAU: 0.11, HabOuterAU: 0.22,
		Planets: []Exoplanet{
			{"GJ 876 d", 1.70, 0.0208, 1.94, 0, MethodRV, "#d4925f"},
			{"GJ 876 c", 12.0, 0.1296, 30.09, 0, MethodRV, "#c9ab7e"},
			{"GJ 876 b", 13.0, 0.2083, 61.12, 0, MethodRV, "#c4a878"},
			{"GJ 876 e", 4.00, 0.3343, 124.26, 0, MethodRV, "#9aa4ae"},
		},
	},
}

// SystemsByName maps normalized system names to their catalog entries.
var SystemsByName = func() map[string]System {
	m := make(map[string]System, len(Systems))
	for _, s := range Systems {
		m[normalizeName(s.Name)] = s
	}
	return m
}()

// LookupSystem finds an exoplanet system by name, case-insensitive.
func LookupSystem(name string) (System, bool) {
	s, ok := SystemsByName[normalizeName(name)]
	return s, ok
}

// PlanetCount returns the total number of cataloged exoplanets.
func PlanetCount() int {
	var n int
	for _, s := range Systems {
		n += len(s.Planets)
	}
	return n
}
