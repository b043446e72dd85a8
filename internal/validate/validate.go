// Package validate is a thin wrapper around go-playground/validator so the
// whole binary shares one validator instance. Config structs and catalog
// definitions declare constraints via `validate:` tags, e.g.
//
//	DesignatorWidth int `yaml:"designator_width" validate:"required,min=1,max=8"`
package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	once sync.Once
	inst *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		inst = validator.New(validator.WithRequiredStructEnabled())
	})
	return inst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
