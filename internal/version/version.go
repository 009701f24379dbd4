// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Exoplanet system scenes, per-body range rate, scene JSON export
// 0.3.0 - JPL Horizons vector integration with Kepler fallback, comet tail stacks
// 0.2.0 - Magnetosphere lobes, ring arcs, sun-direction indicator, belt shells
// 0.1.0 - Initial release: orrery TUI, layered body shells, catalog browser
