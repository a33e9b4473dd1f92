package cmds

// Var defines a flag taking one value on the global executor.
func Var[T any](name string, desc string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(desc))
	return value
}

// Switch defines a flag without value, reporting whether it was given.
func Switch(name string, desc string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(desc))
	return value
}

// Collect defines a repeatable flag. Every occurrence appends its value.
func Collect[T any](name string, desc string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc(desc))
	return values
}
