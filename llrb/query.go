package llrb

import "github.com/bnclabs/fliptree/api"

// Ordered queries. Every descent resolves the physical slots through
// leftof/rightof, a plain pointer walk would read swapped subtrees
// under red nodes and miss keys.

// Get value for key. Returned value is a reference into the index,
// valid until the next mutation on this key.
func (llrb *LLRB) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, api.ErrorNilKey
	}
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Get(): on dead tree, call the programmer")
	}
	llrb.n_lookups++
	if nd := llrb.getkey(llrb.getroot(), key); nd != nil {
		return nd.value, nil
	}
	return nil, api.ErrorKeyMissing
}

// Contains return true if key is present in the index.
func (llrb *LLRB) Contains(key []byte) bool {
	if key == nil {
		return false
	}
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Contains(): on dead tree, call the programmer")
	}
	llrb.n_lookups++
	return llrb.getkey(llrb.getroot(), key) != nil
}

// Min return the entry with the smallest key.
func (llrb *LLRB) Min() (key, value []byte, err error) {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Min(): on dead tree, call the programmer")
	}
	nd := llrb.getmin(llrb.getroot())
	if nd == nil {
		return nil, nil, api.ErrorEmptyIndex
	}
	llrb.n_lookups++
	return nd.key, nd.value, nil
}

// Max return the entry with the largest key.
func (llrb *LLRB) Max() (key, value []byte, err error) {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Max(): on dead tree, call the programmer")
	}
	nd := llrb.getmax(llrb.getroot())
	if nd == nil {
		return nil, nil, api.ErrorEmptyIndex
	}
	llrb.n_lookups++
	return nd.key, nd.value, nil
}

// Floor return the largest key in the index less than or equal to
// key.
func (llrb *LLRB) Floor(key []byte) ([]byte, error) {
	if key == nil {
		return nil, api.ErrorNilKey
	}
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Floor(): on dead tree, call the programmer")
	}
	llrb.n_lookups++
	if nd := llrb.getfloor(llrb.getroot(), key); nd != nil {
		return nd.key, nil
	}
	return nil, api.ErrorNoFloor
}

// Ceiling return the smallest key in the index greater than or equal
// to key.
func (llrb *LLRB) Ceiling(key []byte) ([]byte, error) {
	if key == nil {
		return nil, api.ErrorNilKey
	}
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Ceiling(): on dead tree, call the programmer")
	}
	llrb.n_lookups++
	if nd := llrb.getceiling(llrb.getroot(), key); nd != nil {
		return nd.key, nil
	}
	return nil, api.ErrorNoCeiling
}

// Range iterate over entries between lowkey and highkey, both
// inclusive, in ascending order. Iteration stops when callb return
// false.
func (llrb *LLRB) Range(lo, hi []byte, callb func(key, value []byte) bool) error {
	if lo == nil || hi == nil {
		return api.ErrorNilKey
	}
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Range(): on dead tree, call the programmer")
	}
	llrb.n_ranges++
	if api.Binarycmp(lo, hi, false) > 0 {
		return nil
	}
	llrb.dorange(llrb.getroot(), lo, hi, callb)
	return nil
}

// Keys return all keys in ascending order, an empty slice when the
// index is empty.
func (llrb *LLRB) Keys() [][]byte {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Keys(): on dead tree, call the programmer")
	}
	llrb.n_ranges++
	keys := make([][]byte, 0, subtreesize(llrb.getroot()))
	return llrb.allkeys(llrb.getroot(), keys)
}

// KeysRange return all keys between lo and hi, both inclusive, in
// ascending order.
func (llrb *LLRB) KeysRange(lo, hi []byte) ([][]byte, error) {
	keys := make([][]byte, 0)
	err := llrb.Range(lo, hi, func(key, _ []byte) bool {
		keys = append(keys, key)
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

//---- tree walks.

func (llrb *LLRB) getkey(nd *Llrbnode, key []byte) *Llrbnode {
	for nd != nil {
		if nd.gtkey(key, false) {
			nd = llrb.leftof(nd)
		} else if nd.ltkey(key, false) {
			nd = llrb.rightof(nd)
		} else {
			return nd
		}
	}
	return nil
}

func (llrb *LLRB) getmin(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	for {
		lft := llrb.leftof(nd)
		if lft == nil {
			return nd
		}
		nd = lft
	}
}

func (llrb *LLRB) getmax(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	for {
		rgt := llrb.rightof(nd)
		if rgt == nil {
			return nd
		}
		nd = rgt
	}
}

func (llrb *LLRB) getfloor(nd *Llrbnode, key []byte) *Llrbnode {
	if nd == nil {
		return nil
	}
	if !nd.ltkey(key, false) && !nd.gtkey(key, false) {
		return nd
	}
	if nd.gtkey(key, false) {
		return llrb.getfloor(llrb.leftof(nd), key)
	}
	if fnd := llrb.getfloor(llrb.rightof(nd), key); fnd != nil {
		return fnd
	}
	return nd
}

func (llrb *LLRB) getceiling(nd *Llrbnode, key []byte) *Llrbnode {
	if nd == nil {
		return nil
	}
	if !nd.ltkey(key, false) && !nd.gtkey(key, false) {
		return nd
	}
	if nd.ltkey(key, false) {
		return llrb.getceiling(llrb.rightof(nd), key)
	}
	if fnd := llrb.getceiling(llrb.leftof(nd), key); fnd != nil {
		return fnd
	}
	return nd
}

func (llrb *LLRB) dorange(
	nd *Llrbnode, lo, hi []byte, callb func(key, value []byte) bool) bool {

	if nd == nil {
		return true
	}
	if nd.gtkey(lo, false) {
		if !llrb.dorange(llrb.leftof(nd), lo, hi, callb) {
			return false
		}
	}
	if nd.gekey(lo, false) && nd.lekey(hi, false) {
		if !callb(nd.key, nd.value) {
			return false
		}
	}
	if nd.ltkey(hi, false) {
		return llrb.dorange(llrb.rightof(nd), lo, hi, callb)
	}
	return true
}

func (llrb *LLRB) allkeys(nd *Llrbnode, keys [][]byte) [][]byte {
	if nd == nil {
		return keys
	}
	keys = llrb.allkeys(llrb.leftof(nd), keys)
	keys = append(keys, nd.key)
	return llrb.allkeys(llrb.rightof(nd), keys)
}
