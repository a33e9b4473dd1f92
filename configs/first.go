package configs

import (
	"errors"
	"fmt"
)

// First returns the value at path in the first config file defining it, or
// the zero value if none does. Invalid configs panic; callers run
// Loader.Check before resolving values.
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}

// Configured is First at the path T names.
func Configured[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
