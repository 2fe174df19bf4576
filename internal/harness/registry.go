package harness

// The registry backs the runner's discovery surface: groups are
// registered once input generation has bound them to a concrete buffer,
// then looked up by name.

var (
	registry = map[string]Group{}
	regOrder []string
)

// Register adds g to the registry, replacing any group with the same
// name.
func Register(g Group) {
	if _, ok := registry[g.Name]; !ok {
		regOrder = append(regOrder, g.Name)
	}
	registry[g.Name] = g
}

// Groups returns the registered group names in registration order.
func Groups() []string {
	out := make([]string, len(regOrder))
	copy(out, regOrder)
	return out
}

// Lookup returns the named group.
func Lookup(name string) (Group, bool) {
	g, ok := registry[name]
	return g, ok
}
