package gamedata

// ObjectRegistry holds loaded object definitions in draw order.
type ObjectRegistry struct {
	objects []ObjectDef
}

// NewObjectRegistry creates a registry from loaded object definitions.
func NewObjectRegistry(objects []ObjectDef) *ObjectRegistry {
	return &ObjectRegistry{objects: objects}
}

// PlayerIndex returns the position of the player definition, or -1.
func (r *ObjectRegistry) PlayerIndex() int {
	for i := range r.objects {
		if r.objects[i].Player {
			return i
		}
	}
	return -1
}

// All returns all object definitions in draw order.
func (r *ObjectRegistry) All() []ObjectDef {
	return r.objects
}

// Count returns the number of objects in the registry.
func (r *ObjectRegistry) Count() int {
	return len(r.objects)
}
