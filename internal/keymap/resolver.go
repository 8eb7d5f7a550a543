package keymap

// Resolver maps key strings to actions per context. Callers pass the
// contexts they are in, most specific first, so a page binding shadows
// a broader one on the same key.
type Resolver struct {
	byContext map[string]map[string]Action
}

// NewResolver indexes bindings by context. A key bound twice in the same
// context resolves to the later binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byContext: make(map[string]map[string]Action)}
	for _, b := range bindings {
		keys := r.byContext[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.byContext[b.Context] = keys
		}
		for _, k := range b.Keys {
			keys[k] = b.Action
		}
	}
	return r
}

// ResolveIn returns the action bound to key in the first context that
// binds it, or "" when none does.
func (r *Resolver) ResolveIn(key string, contexts ...string) Action {
	for _, ctx := range contexts {
		if a, ok := r.byContext[ctx][key]; ok {
			return a
		}
	}
	return ""
}
