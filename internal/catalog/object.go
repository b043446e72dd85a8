package catalog

import "strconv"

// Object is a single catalog record. Instances are produced by Store lookups
// and are read-only afterwards; lists and the shared target state hold
// references to the same values.
type Object struct {
	CatalogCode   string  `json:"catalog" yaml:"catalog"`
	Designation   int     `json:"designation" yaml:"designation"`
	ObjectType    string  `json:"obj_type" yaml:"obj_type"`
	Constellation string  `json:"const" yaml:"const"`
	RA            float64 `json:"ra" yaml:"ra"`
	Dec           float64 `json:"dec" yaml:"dec"`
	Magnitude     float64 `json:"mag,omitempty" yaml:"mag,omitempty"`
	Size          string  `json:"size,omitempty" yaml:"size,omitempty"`
}

// ID is the identity of an object: catalog code plus designation.
type ID struct {
	CatalogCode string
	Designation int
}

func (o Object) ID() ID {
	return ID{CatalogCode: o.CatalogCode, Designation: o.Designation}
}

// Name renders the display form, e.g. "M31" or "N7000".
func (o Object) Name() string {
	return o.CatalogCode + strconv.Itoa(o.Designation)
}

// Catalog describes one searchable catalog. DesignatorWidth drives the size
// of the digit-entry buffer; it is configuration, not a property of any
// particular catalog's position in the list.
type Catalog struct {
	Code            string `yaml:"code" validate:"required"`
	Name            string `yaml:"name" validate:"required"`
	DesignatorWidth int    `yaml:"designator_width" validate:"required,min=1,max=8"`
}

//nolint:gochecknoglobals // immutable lookup table used across the package.
var typeLabels = map[string]string{
	"Gx":  "Galaxy",
	"OC":  "Open Cluster",
	"Gb":  "Globular",
	"Nb":  "Nebula",
	"PN":  "Planetary",
	"DN":  "Dark Nebula",
	"C+N": "Cluster + Neb",
	"Ast": "Asterism",
	"Kt":  "Knot",
	"***": "Triple Star",
	"D*":  "Double Star",
	"*":   "Star",
	"?":   "Unknown",
}

// TypeLabel maps an object-type code to its display label. Unknown codes pass
// through unchanged.
func TypeLabel(code string) string {
	if label, ok := typeLabels[code]; ok {
		return label
	}
	return code
}
