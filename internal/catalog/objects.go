package catalog

// Objects is the solar-system catalog. Orbital elements are J2000 mean
// elements from the JPL approximate-ephemeris tables; moon orbits are
// parent-relative mean radii. HorizonsID values are NAIF ids; 0 means
// the object has no usable Horizons vector lookup and positions always
// come from the Kepler fallback.
var Objects = []Object{
	{Name: "Sun", Code: "SUN", Kind: KindStar, RadiusKm: 695700, AxialTiltDeg: 7.25,
		Color: "#fdb813", HorizonsID: 10,
		Blurb: "G2V dwarf holding 99.86% of the system's mass."},

	// Planets
	{Name: "Mercury", Code: "MERCURY", Kind: KindPlanet, Parent: "SUN", RadiusKm: 2439.7,
		SemiMajorAU: 0.38709843, PeriodDays: 87.969, Eccentricity: 0.20563661,
		InclinationDeg: 7.00559432, NodeDeg: 48.33961819, PerihelionDeg: 77.45771895,
		MeanLongitudeDeg: 252.25166724, AxialTiltDeg: 0.034, Color: "#8c8680", HorizonsID: 199,
		Blurb: "Cratered iron world swinging closest to the Sun."},
	{Name: "Venus", Code: "VENUS", Kind: KindPlanet, Parent: "SUN", RadiusKm: 6051.8,
		SemiMajorAU: 0.72333566, PeriodDays: 224.701, Eccentricity: 0.00677672,
		InclinationDeg: 3.39467605, NodeDeg: 76.67984255, PerihelionDeg: 131.76755713,
		MeanLongitudeDeg: 181.9797085, AxialTiltDeg: 177.36, Color: "#e6c89c", HorizonsID: 299,
		Blurb: "Runaway-greenhouse twin spinning slowly backwards."},
	{Name: "Earth", Code: "EARTH", Kind: KindPlanet, Parent: "SUN", RadiusKm: 6371.0,
		SemiMajorAU: 1.00000261, PeriodDays: 365.256, Eccentricity: 0.01671123,
		InclinationDeg: -0.00001531, NodeDeg: 0, PerihelionDeg: 102.93768193,
		MeanLongitudeDeg: 100.46457166, AxialTiltDeg: 23.44, Color: "#2a66de", HorizonsID: 399,
		Blurb: "The only known harbor of life."},
	{Name: "Mars", Code: "MARS", Kind: KindPlanet, Parent: "SUN", RadiusKm: 3389.5,
		SemiMajorAU: 1.52371034, PeriodDays: 686.98, Eccentricity: 0.0933941,
		InclinationDeg: 1.84969142, NodeDeg: 49.55953891, PerihelionDeg: -23.94362959,
		MeanLongitudeDeg: -4.55343205, AxialTiltDeg: 25.19, Color: "#c1440e", HorizonsID: 499,
		Blurb: "Rust-red desert with the system's tallest volcano."},
	{Name: "Jupiter", Code: "JUPITER", Kind: KindPlanet, Parent: "SUN", RadiusKm: 69911,
		SemiMajorAU: 5.202887, PeriodDays: 4332.59, Eccentricity: 0.04838624,
		InclinationDeg: 1.30439695, NodeDeg: 100.47390909, PerihelionDeg: 14.72847983,
		MeanLongitudeDeg: 34.39644051, AxialTiltDeg: 3.13, Color: "#d8ca9d", HorizonsID: 599,
		Blurb: "Gas giant outweighing every other planet combined."},
	{Name: "Saturn", Code: "SATURN", Kind: KindPlanet, Parent: "SUN", RadiusKm: 58232,
		SemiMajorAU: 9.53667594, PeriodDays: 10759.22, Eccentricity: 0.05386179,
		InclinationDeg: 2.48599187, NodeDeg: 113.66242448, PerihelionDeg: 92.59887831,
		MeanLongitudeDeg: 49.95424423, AxialTiltDeg: 26.73, Color: "#ead6b8", HorizonsID: 699,
		Blurb: "Ringed giant light enough to float in water."},
	{Name: "Uranus", Code: "URANUS", Kind: KindPlanet, Parent: "SUN", RadiusKm: 25362,
		SemiMajorAU: 19.18916464, PeriodDays: 30685.4, Eccentricity: 0.04725744,
		InclinationDeg: 0.77263783, NodeDeg: 74.01692503, PerihelionDeg: 170.9542763,
		MeanLongitudeDeg: 313.23810451, AxialTiltDeg: 97.77, Color: "#afdbf5", HorizonsID: 799,
		Blurb: "Ice giant rolling around its orbit on its side."},
	{Name: "Neptune", Code: "NEPTUNE", Kind: KindPlanet, Parent: "SUN", RadiusKm: 24622,
		SemiMajorAU: 30.06992276, PeriodDays: 60189.0, Eccentricity: 0.00859048,
		InclinationDeg: 1.77004347, NodeDeg: 131.78422574, PerihelionDeg: 44.96476227,
		MeanLongitudeDeg: -55.12002969, AxialTiltDeg: 28.32, Color: "#366896", HorizonsID: 899,
		Blurb: "Supersonic winds on the farthest major planet."},

	// Dwarf planets and large KBOs
	{Name: "Ceres", Code: "CERES", Kind: KindDwarf, Parent: "SUN", RadiusKm: 469.7,
		SemiMajorAU: 2.7653, PeriodDays: 1681, Eccentricity: 0.0758,
		InclinationDeg: 10.586, NodeDeg: 80.393, PerihelionDeg: 73.597,
		MeanLongitudeDeg: 95.989, Color: "#9c9487", HorizonsID: 2000001,
		Blurb: "Largest body of the asteroid belt, briny and round."},
	{Name: "Pluto", Code: "PLUTO", Kind: KindDwarf, Parent: "SUN", RadiusKm: 1188.3,
		SemiMajorAU: 39.48211675, PeriodDays: 90560, Eccentricity: 0.2488273,
		InclinationDeg: 17.14001206, NodeDeg: 110.30393684, PerihelionDeg: 224.06891629,
		MeanLongitudeDeg: 238.9288178, AxialTiltDeg: 122.53, Color: "#c9b29a", HorizonsID: 999,
		Blurb: "Heart-marked dwarf in a 2:3 dance with Neptune."},
	{Name: "Eris", Code: "ERIS", Kind: KindDwarf, Parent: "SUN", RadiusKm: 1163,
		SemiMajorAU: 67.864, PeriodDays: 203830, Eccentricity: 0.44177,
		InclinationDeg: 44.04, NodeDeg: 35.951, PerihelionDeg: 151.639,
		MeanLongitudeDeg: 204.16, Color: "#d9d9d0", HorizonsID: 2136199,
		Blurb: "Scattered-disk dwarf that demoted Pluto."},
	{Name: "Haumea", Code: "HAUMEA", Kind: KindDwarf, Parent: "SUN", RadiusKm: 816,
		SemiMajorAU: 43.335, PeriodDays: 104025, Eccentricity: 0.19126,
		InclinationDeg: 28.21, NodeDeg: 121.9, PerihelionDeg: 239.512,
		MeanLongitudeDeg: 240.582, Color: "#d8cfc4", HorizonsID: 2136108,
		Blurb: "Egg-shaped dwarf spinning once every four hours."},
	{Name: "Makemake", Code: "MAKEMAKE", Kind: KindDwarf, Parent: "SUN", RadiusKm: 715,
		SemiMajorAU: 45.791, PeriodDays: 111845, Eccentricity: 0.16254,
		InclinationDeg: 29.011, NodeDeg: 79.382, PerihelionDeg: 296.534,
		MeanLongitudeDeg: 268.05, Color: "#b8907a", HorizonsID: 2136472,
		Blurb: "Bright methane-frosted classical KBO."},
	{Name: "Quaoar", Code: "QUAOAR", Kind: KindDwarf, Parent: "SUN", RadiusKm: 555,
		SemiMajorAU: 43.69, PeriodDays: 105495, Eccentricity: 0.04,
		InclinationDeg: 7.99, NodeDeg: 188.9, PerihelionDeg: 336.4,
		MeanLongitudeDeg: 276, Color: "#8a6f5c", HorizonsID: 2050000,
		Blurb: "Cubewano with an impossibly distant thin ring."},
	{Name: "Sedna", Code: "SEDNA", Kind: KindDwarf, Parent: "SUN", RadiusKm: 500,
		SemiMajorAU: 506, PeriodDays: 4163000, Eccentricity: 0.855,
		InclinationDeg: 11.93, NodeDeg: 144.5, PerihelionDeg: 95.8,
		MeanLongitudeDeg: 94, Color: "#b0412e", HorizonsID: 2090377,
		Blurb: "Inner-Oort sentinel that never nears the planets."},

	// Asteroids
	{Name: "Vesta", Code: "VESTA", Kind: KindAsteroid, Parent: "SUN", RadiusKm: 262.7,
		SemiMajorAU: 2.3615, PeriodDays: 1325.75, Eccentricity: 0.0887,
		InclinationDeg: 7.14, NodeDeg: 103.81, PerihelionDeg: 254.54,
		MeanLongitudeDeg: 350.4, Color: "#a89c8e", HorizonsID: 2000004,
		Blurb: "Basaltic protoplanet scarred by the Rheasilvia basin."},
	{Name: "Pallas", Code: "PALLAS", Kind: KindAsteroid, Parent: "SUN", RadiusKm: 256,
		SemiMajorAU: 2.7698, PeriodDays: 1686, Eccentricity: 0.2302,
		InclinationDeg: 34.84, NodeDeg: 173.09, PerihelionDeg: 123.14,
		MeanLongitudeDeg: 201.4, Color: "#8f8f8f", HorizonsID: 2000002,
		Blurb: "Highly inclined heavyweight of the main belt."},
	{Name: "Juno", Code: "JUNO", Kind: KindAsteroid, Parent: "SUN", RadiusKm: 123,
		SemiMajorAU: 2.6692, PeriodDays: 1593, Eccentricity: 0.2569,
		InclinationDeg: 12.99, NodeDeg: 169.85, PerihelionDeg: 57.99,
		MeanLongitudeDeg: 91, Color: "#9a9086", HorizonsID: 2000003,
		Blurb: "One of the four asteroids found before 1810."},
	{Name: "Hygiea", Code: "HYGIEA", Kind: KindAsteroid, Parent: "SUN", RadiusKm: 217,
		SemiMajorAU: 3.1392, PeriodDays: 2030, Eccentricity: 0.1121,
		InclinationDeg: 3.84, NodeDeg: 283.2, PerihelionDeg: 235.5,
		MeanLongitudeDeg: 27.5, Color: "#6e6a66", HorizonsID: 2000010,
		Blurb: "Dark carbonaceous anchor of the outer belt."},

	// Comets (Kepler-only: Horizons addresses comets by designation,
	// which the vector client does not speak)
	{Name: "1P/Halley", Code: "1P", Kind: KindComet, Parent: "SUN", RadiusKm: 5.5,
		SemiMajorAU: 17.834, PeriodDays: 27509.1, Eccentricity: 0.96714,
		InclinationDeg: 162.26, NodeDeg: 58.42, PerihelionDeg: 169.75,
		MeanLongitudeDeg: 236.15, Color: "#bcd4e6",
		Blurb: "The once-a-lifetime visitor, back in 2061."},
	{Name: "2P/Encke", Code: "2P", Kind: KindComet, Parent: "SUN", RadiusKm: 2.4,
		SemiMajorAU: 2.215, PeriodDays: 1204, Eccentricity: 0.8483,
		InclinationDeg: 11.78, NodeDeg: 334.57, PerihelionDeg: 161.12,
		MeanLongitudeDeg: 93, Color: "#a9c0cf",
		Blurb: "Shortest-period comet, parent of the Taurids."},
	{Name: "67P/Churyumov-Gerasimenko", Code: "67P", Kind: KindComet, Parent: "SUN", RadiusKm: 2.0,
		SemiMajorAU: 3.463, PeriodDays: 2355, Eccentricity: 0.641,
		InclinationDeg: 7.04, NodeDeg: 50.14, PerihelionDeg: 62.92,
		MeanLongitudeDeg: 271.1, Color: "#9fb6c4",
		Blurb: "The rubber-duck nucleus Rosetta orbited."},
	{Name: "Hale-Bopp", Code: "HALE-BOPP", Kind: KindComet, Parent: "SUN", RadiusKm: 30,
		SemiMajorAU: 186, PeriodDays: 925000, Eccentricity: 0.995,
		InclinationDeg: 89.4, NodeDeg: 282.47, PerihelionDeg: 53.06,
		MeanLongitudeDeg: 53.45, Color: "#cfe3ef",
		Blurb: "The great comet of 1997, visible for 18 months."},

	// Belt markers (geometry comes from the Sun's shell table)
	{Name: "Asteroid belt", Code: "BELT", Kind: KindBelt, Parent: "SUN",
		SemiMajorAU: 2.7, Color: "#7a715f",
		Blurb: "Scattered rubble between Mars and Jupiter."},
	{Name: "Kuiper belt", Code: "KUIPER", Kind: KindBelt, Parent: "SUN",
		SemiMajorAU: 40, Color: "#5d6b7a",
		Blurb: "Icy disk of leftovers beyond Neptune."},

	// Earth's moon
	{Name: "Moon", Code: "MOON", Kind: KindMoon, Parent: "EARTH", RadiusKm: 1737.4,
		OrbitKm: 384399, PeriodDays: 27.322, InclinationDeg: 5.145, Color: "#c8c8c8",
		HorizonsID: 301, Blurb: "Our tide-raising companion."},

	// Moons of Mars
	{Name: "Phobos", Code: "PHOBOS", Kind: KindMoon, Parent: "MARS", RadiusKm: 11.27,
		OrbitKm: 9376, PeriodDays: 0.3189, InclinationDeg: 1.09, Color: "#8d8174",
		HorizonsID: 401, Blurb: "Doomed moonlet spiralling toward Mars."},
	{Name: "Deimos", Code: "DEIMOS", Kind: KindMoon, Parent: "MARS", RadiusKm: 6.2,
		OrbitKm: 23463, PeriodDays: 1.263, InclinationDeg: 0.93, Color: "#9a8f82",
		HorizonsID: 402, Blurb: "Smooth, dusty outer moon of Mars."},

	// Moons of Jupiter
	{Name: "Metis", Code: "METIS", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 21.5,
		OrbitKm: 128000, PeriodDays: 0.295, Color: "#9d948a",
		HorizonsID: 516, Blurb: "Innermost shepherd of Jupiter's main ring."},
	{Name: "Adrastea", Code: "ADRASTEA", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 8.2,
		OrbitKm: 129000, PeriodDays: 0.298, Color: "#958c82",
		HorizonsID: 515, Blurb: "Tiny ring-moon found in Voyager images."},
	{Name: "Amalthea", Code: "AMALTHEA", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 83.5,
		OrbitKm: 181400, PeriodDays: 0.498, InclinationDeg: 0.37, Color: "#b0543a",
		HorizonsID: 505, Blurb: "Reddest object in the solar system."},
	{Name: "Thebe", Code: "THEBE", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 49.3,
		OrbitKm: 221900, PeriodDays: 0.675, InclinationDeg: 1.08, Color: "#a08a76",
		HorizonsID: 514, Blurb: "Source of the outer gossamer ring."},
	{Name: "Io", Code: "IO", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 1821.6,
		OrbitKm: 421800, PeriodDays: 1.769, InclinationDeg: 0.04, Color: "#ffe066",
		HorizonsID: 501, Blurb: "The most volcanically active body known."},
	{Name: "Europa", Code: "EUROPA", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 1560.8,
		OrbitKm: 671100, PeriodDays: 3.551, InclinationDeg: 0.47, Color: "#d6c9a8",
		HorizonsID: 502, Blurb: "Cracked ice shell over a global ocean."},
	{Name: "Ganymede", Code: "GANYMEDE", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 2634.1,
		OrbitKm: 1070400, PeriodDays: 7.155, InclinationDeg: 0.2, Color: "#b5a48c",
		HorizonsID: 503, Blurb: "Largest moon, bigger than Mercury."},
	{Name: "Callisto", Code: "CALLISTO", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 2410.3,
		OrbitKm: 1882700, PeriodDays: 16.689, InclinationDeg: 0.19, Color: "#8a7f70",
		HorizonsID: 504, Blurb: "Ancient, saturated cratered surface."},
	{Name: "Himalia", Code: "HIMALIA", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 69.8,
		OrbitKm: 11461000, PeriodDays: 250.56, InclinationDeg: 27.5, Color: "#978f85",
		HorizonsID: 506, Blurb: "Largest of Jupiter's captured moons."},
	{Name: "Elara", Code: "ELARA", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 43,
		OrbitKm: 11741000, PeriodDays: 259.6, InclinationDeg: 26.6, Color: "#8e887e",
		HorizonsID: 507, Blurb: "Second of the Himalia prograde group."},
	{Name: "Lysithea", Code: "LYSITHEA", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 18,
		OrbitKm: 11717000, PeriodDays: 259.2, InclinationDeg: 28.3, Color: "#89837a",
		HorizonsID: 510, Blurb: "Faint member of the Himalia group."},
	{Name: "Carme", Code: "CARME", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 23,
		OrbitKm: 23404000, PeriodDays: -702, InclinationDeg: 164, Color: "#7e7870",
		HorizonsID: 511, Blurb: "Retrograde captured head of its family."},
	{Name: "Pasiphae", Code: "PASIPHAE", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 30,
		OrbitKm: 23624000, PeriodDays: -708, InclinationDeg: 151, Color: "#837d74",
		HorizonsID: 508, Blurb: "Distant retrograde irregular."},
	{Name: "Sinope", Code: "SINOPE", Kind: KindMoon, Parent: "JUPITER", RadiusKm: 19,
		OrbitKm: 23939000, PeriodDays: -725, InclinationDeg: 158, Color: "#7a746c",
		HorizonsID: 509, Blurb: "Outermost of Jupiter's named moons for decades."},

	// Moons of Saturn
	{Name: "Pan", Code: "PAN", Kind: KindMoon, Parent: "SATURN", RadiusKm: 14.1,
		OrbitKm: 133584, PeriodDays: 0.575, Color: "#cdbfa3",
		HorizonsID: 618, Blurb: "Ravioli-shaped sweeper of the Encke gap."},
	{Name: "Atlas", Code: "ATLAS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 15.1,
		OrbitKm: 137670, PeriodDays: 0.602, Color: "#d0c2a6",
		HorizonsID: 615, Blurb: "Flying-saucer moon at the A ring's edge."},
	{Name: "Prometheus", Code: "PROMETHEUS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 43.1,
		OrbitKm: 139380, PeriodDays: 0.613, Color: "#cabca0",
		HorizonsID: 616, Blurb: "Inner shepherd sculpting the F ring."},
	{Name: "Pandora", Code: "PANDORA", Kind: KindMoon, Parent: "SATURN", RadiusKm: 40.7,
		OrbitKm: 141720, PeriodDays: 0.629, Color: "#c7b99d",
		HorizonsID: 617, Blurb: "Outer shepherd of the F ring."},
	{Name: "Epimetheus", Code: "EPIMETHEUS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 58.1,
		OrbitKm: 151410, PeriodDays: 0.694, InclinationDeg: 0.34, Color: "#bfb296",
		HorizonsID: 611, Blurb: "Swaps orbits with Janus every four years."},
	{Name: "Janus", Code: "JANUS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 89.5,
		OrbitKm: 151460, PeriodDays: 0.695, InclinationDeg: 0.16, Color: "#c2b599",
		HorizonsID: 610, Blurb: "Co-orbital partner of Epimetheus."},
	{Name: "Mimas", Code: "MIMAS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 198.2,
		OrbitKm: 185539, PeriodDays: 0.942, InclinationDeg: 1.57, Color: "#b8b2a8",
		HorizonsID: 601, Blurb: "The Death Star moon with the Herschel crater."},
	{Name: "Enceladus", Code: "ENCELADUS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 252.1,
		OrbitKm: 237948, PeriodDays: 1.37, InclinationDeg: 0.01, Color: "#e8ecef",
		HorizonsID: 602, Blurb: "Snow-white moon venting its buried ocean."},
	{Name: "Tethys", Code: "TETHYS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 531.1,
		OrbitKm: 294619, PeriodDays: 1.888, InclinationDeg: 1.12, Color: "#cfd2d4",
		HorizonsID: 603, Blurb: "Ice moon split by the Ithaca Chasma."},
	{Name: "Telesto", Code: "TELESTO", Kind: KindMoon, Parent: "SATURN", RadiusKm: 12.4,
		OrbitKm: 294619, PeriodDays: 1.888, Color: "#c4c7c9",
		HorizonsID: 613, Blurb: "Leading trojan of Tethys."},
	{Name: "Calypso", Code: "CALYPSO", Kind: KindMoon, Parent: "SATURN", RadiusKm: 10.7,
		OrbitKm: 294619, PeriodDays: 1.888, Color: "#c0c3c5",
		HorizonsID: 614, Blurb: "Trailing trojan of Tethys."},
	{Name: "Dione", Code: "DIONE", Kind: KindMoon, Parent: "SATURN", RadiusKm: 561.4,
		OrbitKm: 377396, PeriodDays: 2.737, InclinationDeg: 0.02, Color: "#c9ccce",
		HorizonsID: 604, Blurb: "Wispy-terrain moon with a tenuous oxygen veil."},
	{Name: "Helene", Code: "HELENE", Kind: KindMoon, Parent: "SATURN", RadiusKm: 17.6,
		OrbitKm: 377396, PeriodDays: 2.737, Color: "#bcbfc1",
		HorizonsID: 612, Blurb: "Trojan moon leading Dione."},
	{Name: "Rhea", Code: "RHEA", Kind: KindMoon, Parent: "SATURN", RadiusKm: 763.8,
		OrbitKm: 527108, PeriodDays: 4.518, InclinationDeg: 0.35, Color: "#c3c6c8",
		HorizonsID: 605, Blurb: "Saturn's second-largest moon."},
	{Name: "Titan", Code: "TITAN", Kind: KindMoon, Parent: "SATURN", RadiusKm: 2574.7,
		OrbitKm: 1221870, PeriodDays: 15.945, InclinationDeg: 0.33, Color: "#e3a857",
		HorizonsID: 606, Blurb: "Methane rain on a smoggy orange world."},
	{Name: "Hyperion", Code: "HYPERION", Kind: KindMoon, Parent: "SATURN", RadiusKm: 135,
		OrbitKm: 1481009, PeriodDays: 21.277, InclinationDeg: 0.43, Color: "#ad9f89",
		HorizonsID: 607, Blurb: "Sponge-like moon tumbling chaotically."},
	{Name: "Iapetus", Code: "IAPETUS", Kind: KindMoon, Parent: "SATURN", RadiusKm: 734.5,
		OrbitKm: 3560820, PeriodDays: 79.322, InclinationDeg: 15.47, Color: "#9b9181",
		HorizonsID: 608, Blurb: "Two-toned moon with an equatorial ridge."},
	{Name: "Phoebe", Code: "PHOEBE", Kind: KindMoon, Parent: "SATURN", RadiusKm: 106.5,
		OrbitKm: 12929400, PeriodDays: -550.31, InclinationDeg: 175.3, Color: "#6f6a64",
		HorizonsID: 609, Blurb: "Retrograde captured centaur feeding a dark ring."},

	// Moons of Uranus
	{Name: "Cordelia", Code: "CORDELIA", Kind: KindMoon, Parent: "URANUS", RadiusKm: 20.1,
		OrbitKm: 49770, PeriodDays: 0.335, Color: "#9fb4bf",
		HorizonsID: 706, Blurb: "Inner shepherd of the epsilon ring."},
	{Name: "Ophelia", Code: "OPHELIA", Kind: KindMoon, Parent: "URANUS", RadiusKm: 21.4,
		OrbitKm: 53790, PeriodDays: 0.376, Color: "#9cb1bc",
		HorizonsID: 707, Blurb: "Outer shepherd of the epsilon ring."},
	{Name: "Cressida", Code: "CRESSIDA", Kind: KindMoon, Parent: "URANUS", RadiusKm: 39.8,
		OrbitKm: 61780, PeriodDays: 0.464, Color: "#98adb8",
		HorizonsID: 709, Blurb: "Member of the crowded Portia group."},
	{Name: "Juliet", Code: "JULIET", Kind: KindMoon, Parent: "URANUS", RadiusKm: 46.8,
		OrbitKm: 64360, PeriodDays: 0.493, Color: "#95aab5",
		HorizonsID: 711, Blurb: "Small dark moon on a crowded lane."},
	{Name: "Portia", Code: "PORTIA", Kind: KindMoon, Parent: "URANUS", RadiusKm: 67.6,
		OrbitKm: 66090, PeriodDays: 0.513, Color: "#92a7b2",
		HorizonsID: 712, Blurb: "Largest of the inner Uranian moons."},
	{Name: "Puck", Code: "PUCK", Kind: KindMoon, Parent: "URANUS", RadiusKm: 81,
		OrbitKm: 86010, PeriodDays: 0.762, InclinationDeg: 0.32, Color: "#8fa4af",
		HorizonsID: 715, Blurb: "Voyager's last-minute Uranian discovery."},
	{Name: "Miranda", Code: "MIRANDA", Kind: KindMoon, Parent: "URANUS", RadiusKm: 235.8,
		OrbitKm: 129390, PeriodDays: 1.413, InclinationDeg: 4.23, Color: "#b7c3ca",
		HorizonsID: 705, Blurb: "Patchwork moon with 20 km cliffs."},
	{Name: "Ariel", Code: "ARIEL", Kind: KindMoon, Parent: "URANUS", RadiusKm: 578.9,
		OrbitKm: 191020, PeriodDays: 2.52, InclinationDeg: 0.26, Color: "#c2cdd3",
		HorizonsID: 701, Blurb: "Brightest and youngest Uranian surface."},
	{Name: "Umbriel", Code: "UMBRIEL", Kind: KindMoon, Parent: "URANUS", RadiusKm: 584.7,
		OrbitKm: 266300, PeriodDays: 4.144, InclinationDeg: 0.21, Color: "#7d868c",
		HorizonsID: 702, Blurb: "Darkest of the big five, oddly uniform."},
	{Name: "Titania", Code: "TITANIA", Kind: KindMoon, Parent: "URANUS", RadiusKm: 788.4,
		OrbitKm: 435910, PeriodDays: 8.706, InclinationDeg: 0.34, Color: "#aab6bd",
		HorizonsID: 703, Blurb: "Largest moon of Uranus, canyon-scored."},
	{Name: "Oberon", Code: "OBERON", Kind: KindMoon, Parent: "URANUS", RadiusKm: 761.4,
		OrbitKm: 583520, PeriodDays: 13.463, InclinationDeg: 0.06, Color: "#a2aeb5",
		HorizonsID: 704, Blurb: "Outermost of the five classical moons."},

	// Moons of Neptune
	{Name: "Naiad", Code: "NAIAD", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 33,
		OrbitKm: 48227, PeriodDays: 0.294, InclinationDeg: 4.75, Color: "#7f93a8",
		HorizonsID: 803, Blurb: "Innermost moon, skimming Neptune's clouds."},
	{Name: "Thalassa", Code: "THALASSA", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 41,
		OrbitKm: 50074, PeriodDays: 0.311, Color: "#7c90a5",
		HorizonsID: 804, Blurb: "Dances an avoidance waltz with Naiad."},
	{Name: "Despina", Code: "DESPINA", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 75,
		OrbitKm: 52526, PeriodDays: 0.335, Color: "#7a8ea3",
		HorizonsID: 805, Blurb: "Ring-moon just inside the Le Verrier ring."},
	{Name: "Galatea", Code: "GALATEA", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 87.4,
		OrbitKm: 61953, PeriodDays: 0.429, Color: "#778ba0",
		HorizonsID: 806, Blurb: "Shepherd confining the Adams ring arcs."},
	{Name: "Larissa", Code: "LARISSA", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 97,
		OrbitKm: 73548, PeriodDays: 0.555, Color: "#74889d",
		HorizonsID: 807, Blurb: "Lumpy moon recovered by Voyager 2."},
	{Name: "Proteus", Code: "PROTEUS", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 210,
		OrbitKm: 117646, PeriodDays: 1.122, InclinationDeg: 0.52, Color: "#71859a",
		HorizonsID: 808, Blurb: "As large as a body can be and stay lumpy."},
	{Name: "Triton", Code: "TRITON", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 1353.4,
		OrbitKm: 354759, PeriodDays: -5.877, InclinationDeg: 157, Color: "#cfd8dd",
		HorizonsID: 801, Blurb: "Captured KBO with nitrogen geysers, orbiting backwards."},
	{Name: "Nereid", Code: "NEREID", Kind: KindMoon, Parent: "NEPTUNE", RadiusKm: 170,
		OrbitKm: 5513818, PeriodDays: 360.13, InclinationDeg: 7.23, Color: "#93a2b0",
		HorizonsID: 802, Blurb: "Wildly eccentric outer moon."},

	// Moons of dwarf planets
	{Name: "Charon", Code: "CHARON", Kind: KindMoon, Parent: "PLUTO", RadiusKm: 606,
		OrbitKm: 19591, PeriodDays: 6.387, InclinationDeg: 0.08, Color: "#a99d93",
		HorizonsID: 901, Blurb: "Half Pluto's size; a true binary partner."},
	{Name: "Styx", Code: "STYX", Kind: KindMoon, Parent: "PLUTO", RadiusKm: 5.2,
		OrbitKm: 42656, PeriodDays: 20.16, Color: "#b4aaa1",
		HorizonsID: 905, Blurb: "Faintest of Pluto's small moons."},
	{Name: "Nix", Code: "NIX", Kind: KindMoon, Parent: "PLUTO", RadiusKm: 19.8,
		OrbitKm: 48694, PeriodDays: 24.85, Color: "#beb5ac",
		HorizonsID: 902, Blurb: "Tumbling chaotic rotator."},
	{Name: "Kerberos", Code: "KERBEROS", Kind: KindMoon, Parent: "PLUTO", RadiusKm: 6.3,
		OrbitKm: 57783, PeriodDays: 32.17, Color: "#aca39a",
		HorizonsID: 904, Blurb: "Double-lobed charcoal moonlet."},
	{Name: "Hydra", Code: "HYDRA", Kind: KindMoon, Parent: "PLUTO", RadiusKm: 19,
		OrbitKm: 64738, PeriodDays: 38.2, Color: "#c3bab1",
		HorizonsID: 903, Blurb: "Outermost of Pluto's five moons."},
	{Name: "Dysnomia", Code: "DYSNOMIA", Kind: KindMoon, Parent: "ERIS", RadiusKm: 350,
		OrbitKm: 37300, PeriodDays: 15.79, Color: "#b9b9b2",
		Blurb: "Eris's lone known companion."},
	{Name: "Hi'iaka", Code: "HIIAKA", Kind: KindMoon, Parent: "HAUMEA", RadiusKm: 160,
		OrbitKm: 49880, PeriodDays: 49.12, Color: "#c6beb4",
		Blurb: "Larger of Haumea's two moons."},
	{Name: "Namaka", Code: "NAMAKA", Kind: KindMoon, Parent: "HAUMEA", RadiusKm: 85,
		OrbitKm: 25657, PeriodDays: 18.28, Color: "#b3aba1",
		Blurb: "Inner moon of Haumea."},
	{Name: "MK2", Code: "MK2", Kind: KindMoon, Parent: "MAKEMAKE", RadiusKm: 87.5,
		OrbitKm: 21100, PeriodDays: 12.4, Color: "#544e48",
		Blurb: "Charcoal-dark moon of Makemake."},
}
