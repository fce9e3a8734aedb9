package cmds

// Var defines a flag taking one argument. "name." resets it to the zero value.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Args("<value>"))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines a boolean flag; "!name" turns it off.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable "+name))
	return &value
}
