package lower

import "strconv"

// mangler is a stable, bijective mapping from source function names to
// short mangled identifiers (state item 2): successive decimal
// strings, allocated the first time a name is seen. The same source
// name always resolves to the same mangled name, whether encountered at
// its declaration or at a call site.
type mangler struct {
	next    int
	toShort map[string]string
}

func newMangler() *mangler {
	return &mangler{toShort: map[string]string{}}
}

// mangle returns the mangled name for name, allocating a fresh one on
// first use.
func (m *mangler) mangle(name string) string {
	if short, ok := m.toShort[name]; ok {
		return short
	}
	short := strconv.Itoa(m.next)
	m.next++
	m.toShort[name] = short
	return short
}
