package catalog

// BuiltinObjects is a small starter set of bright deep-sky objects so the
// instrument is usable before a full catalog database is installed.
// Coordinates are J2000, degrees.
func BuiltinObjects() []Object {
	return []Object{
		{CatalogCode: "M", Designation: 1, ObjectType: "Nb", Constellation: "Tau", RA: 83.633, Dec: 22.015, Magnitude: 8.4},
		{CatalogCode: "M", Designation: 13, ObjectType: "Gb", Constellation: "Her", RA: 250.423, Dec: 36.460, Magnitude: 5.8},
		{CatalogCode: "M", Designation: 27, ObjectType: "PN", Constellation: "Vul", RA: 299.902, Dec: 22.721, Magnitude: 7.4},
		{CatalogCode: "M", Designation: 31, ObjectType: "Gx", Constellation: "And", RA: 10.685, Dec: 41.269, Magnitude: 3.4},
		{CatalogCode: "M", Designation: 33, ObjectType: "Gx", Constellation: "Tri", RA: 23.462, Dec: 30.660, Magnitude: 5.7},
		{CatalogCode: "M", Designation: 42, ObjectType: "Nb", Constellation: "Ori", RA: 83.822, Dec: -5.391, Magnitude: 4.0},
		{CatalogCode: "M", Designation: 44, ObjectType: "OC", Constellation: "Cnc", RA: 130.100, Dec: 19.667, Magnitude: 3.1},
		{CatalogCode: "M", Designation: 45, ObjectType: "OC", Constellation: "Tau", RA: 56.850, Dec: 24.117, Magnitude: 1.6},
		{CatalogCode: "M", Designation: 51, ObjectType: "Gx", Constellation: "CVn", RA: 202.470, Dec: 47.195, Magnitude: 8.4},
		{CatalogCode: "M", Designation: 57, ObjectType: "PN", Constellation: "Lyr", RA: 283.396, Dec: 33.029, Magnitude: 8.8},
		{CatalogCode: "M", Designation: 81, ObjectType: "Gx", Constellation: "UMa", RA: 148.888, Dec: 69.065, Magnitude: 6.9},
		{CatalogCode: "M", Designation: 101, ObjectType: "Gx", Constellation: "UMa", RA: 210.802, Dec: 54.349, Magnitude: 7.9},
		{CatalogCode: "M", Designation: 104, ObjectType: "Gx", Constellation: "Vir", RA: 189.998, Dec: -11.623, Magnitude: 8.0},
		{CatalogCode: "N", Designation: 869, ObjectType: "OC", Constellation: "Per", RA: 34.750, Dec: 57.133, Magnitude: 5.3},
		{CatalogCode: "N", Designation: 2244, ObjectType: "C+N", Constellation: "Mon", RA: 97.983, Dec: 4.950, Magnitude: 4.8},
		{CatalogCode: "N", Designation: 4565, ObjectType: "Gx", Constellation: "Com", RA: 189.087, Dec: 25.988, Magnitude: 9.6},
		{CatalogCode: "N", Designation: 6960, ObjectType: "Nb", Constellation: "Cyg", RA: 311.983, Dec: 30.717, Magnitude: 7.0},
		{CatalogCode: "N", Designation: 7000, ObjectType: "Nb", Constellation: "Cyg", RA: 314.750, Dec: 44.533, Magnitude: 4.0},
		{CatalogCode: "N", Designation: 7293, ObjectType: "PN", Constellation: "Aqr", RA: 337.411, Dec: -20.837, Magnitude: 7.3},
		{CatalogCode: "I", Designation: 434, ObjectType: "Nb", Constellation: "Ori", RA: 85.246, Dec: -2.458, Magnitude: 7.3},
		{CatalogCode: "I", Designation: 1396, ObjectType: "C+N", Constellation: "Cep", RA: 324.746, Dec: 57.489, Magnitude: 3.5},
		{CatalogCode: "I", Designation: 5146, ObjectType: "Nb", Constellation: "Cyg", RA: 328.354, Dec: 47.267, Magnitude: 7.2},
	}
}
