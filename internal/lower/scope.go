package lower

import "strconv"

// scope is an explicit stack of small hash-based sets: push on block
// entry, pop on exit. Shadow-suffix generation checks every entry in the
// stack, not just the innermost.
type scope struct {
	taken []map[string]bool
	remap []map[string]string
}

func newScope() *scope {
	s := &scope{}
	s.push()
	return s
}

func (s *scope) push() {
	s.taken = append(s.taken, map[string]bool{})
	s.remap = append(s.remap, map[string]string{})
}

func (s *scope) pop() {
	s.taken = s.taken[:len(s.taken)-1]
	s.remap = s.remap[:len(s.remap)-1]
}

func (s *scope) isTaken(name string) bool {
	for _, m := range s.taken {
		if m[name] {
			return true
		}
	}
	return false
}

// declare registers name in the current block, returning its canonical
// name: name itself if free in the whole visible chain, otherwise
// name suffixed 0, 1, 2, … with the first unused suffix. The mapping
// from name to canonical is recorded in the current block's remap layer
// only, so it does not leak once the block is popped.
func (s *scope) declare(name string) string {
	canonical := name
	if s.isTaken(canonical) {
		for i := 0; ; i++ {
			candidate := suffixed(name, i)
			if !s.isTaken(candidate) {
				canonical = candidate
				break
			}
		}
	}
	top := len(s.taken) - 1
	s.taken[top][canonical] = true
	s.remap[top][name] = canonical
	return canonical
}

func suffixed(name string, n int) string {
	return name + strconv.Itoa(n)
}

// lookup resolves a referenced identifier to its canonical name, checking
// the remap table from innermost to outermost block. Unmapped names pass
// through unchanged.
func (s *scope) lookup(name string) string {
	canon, _ := s.lookupOK(name)
	return canon
}

// lookupOK is like lookup but also reports whether name was found bound
// anywhere in the visible chain, distinguishing a genuinely unbound
// reference from one that happens to need no remapping.
func (s *scope) lookupOK(name string) (string, bool) {
	for i := len(s.remap) - 1; i >= 0; i-- {
		if canon, ok := s.remap[i][name]; ok {
			return canon, true
		}
	}
	return name, false
}

// bindParam registers a function parameter as visible under its source
// name with no remapping, since parameters shadow nothing.
func (s *scope) bindParam(name string) {
	top := len(s.taken) - 1
	s.taken[top][name] = true
	s.remap[top][name] = name
}
