package lispy

import "io"

// binding is one (name, Value) pair in an Env's association list.
type binding struct {
	name string
	val  Value
}

// Env is a lexically scoped environment: an ordered association list of
// name/value pairs plus an optional parent (spec §3.3). Lookup walks to the
// root; a local Put writes in the current Env; Def walks to the root and
// writes there. Values stored in an Env are owned copies: Get returns a
// fresh copy, Put and Def consume a copy of their input.
type Env struct {
	parent   *Env
	bindings []binding

	// out is the destination for print, set once on the root Env. Builtins
	// that write output (print, load's error reporting) reach it through
	// Output, never by importing os directly, so tests can capture it.
	out io.Writer
}

// NewEnv creates an empty Env with the given parent, which may be nil.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent}
}

// Parent returns e's parent, or nil at the root.
func (e *Env) Parent() *Env { return e.parent }

// SetOutput sets the writer that print and load's diagnostic output go to.
// It is meaningful only on the root Env; Output walks to the root to find
// it.
func (e *Env) SetOutput(w io.Writer) { e.Root().out = w }

// Output returns the root Env's configured writer, defaulting to io.Discard
// if none was set, so a freshly constructed Env used outside a REPL or file
// loader (e.g. in a unit test) never panics on a nil writer.
func (e *Env) Output() io.Writer {
	if out := e.Root().out; out != nil {
		return out
	}
	return io.Discard
}

// SetParent splices a new parent onto e. Used by the evaluator's call
// dispatch to splice a lambda's captured environment onto the caller's
// environment for the extent of one call (spec §4.4); e is always a
// private copy obtained from Env.Get or Fun.Copy by the time this is
// called, so the splice never reaches back into a stored binding.
func (e *Env) SetParent(parent *Env) { e.parent = parent }

// Root returns the ancestor with no parent.
func (e *Env) Root() *Env {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Get performs a linear scan of e, then recurses into the parent chain; if
// no binding is found anywhere, it returns an Unbound symbol Err. It never
// mutates the environment, and returns a fresh copy of the stored value so
// the caller cannot alias the binding.
func (e *Env) Get(sym Sym) Value {
	for env := e; env != nil; env = env.parent {
		for _, b := range env.bindings {
			if b.name == string(sym) {
				return b.val.Copy()
			}
		}
	}
	return UnboundSymbolError{Name: string(sym)}.AsErr()
}

// Put binds sym to v in e itself: if sym already exists locally, its value
// is replaced; otherwise a new binding is appended. v is copied before
// storage.
func (e *Env) Put(sym Sym, v Value) {
	name := string(sym)
	for i := range e.bindings {
		if e.bindings[i].name == name {
			e.bindings[i].val = v.Copy()
			return
		}
	}
	e.bindings = append(e.bindings, binding{name: name, val: v.Copy()})
}

// Def walks to the root of e's parent chain and Puts there, making the
// binding visible from every descendant Env.
func (e *Env) Def(sym Sym, v Value) {
	e.Root().Put(sym, v)
}

// Copy returns a deep copy of e's own bindings (and transitively, of any
// Value they hold). The parent is shared, not copied: a parent Env is
// referenced, never owned, by any of its children.
func (e *Env) Copy() *Env {
	if e == nil {
		return nil
	}
	out := &Env{parent: e.parent, bindings: make([]binding, len(e.bindings))}
	for i, b := range e.bindings {
		out.bindings[i] = binding{name: b.name, val: b.val.Copy()}
	}
	return out
}

// Bindings returns the names currently bound directly in e, in insertion
// order, without walking the parent chain. Used by introspection and tests.
func (e *Env) Bindings() []string {
	names := make([]string, len(e.bindings))
	for i, b := range e.bindings {
		names[i] = b.name
	}
	return names
}
