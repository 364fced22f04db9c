package llrb

import "fmt"

import "github.com/bnclabs/fliptree/api"
import "github.com/bnclabs/fliptree/lib"

// Llrbnode defines a node in LLRB tree. There is no color field,
// color is encoded in the order of the left and right pointers.
type Llrbnode struct {
	left  *Llrbnode
	right *Llrbnode
	size  int64 // number of entries in the subtree rooted here
	key   []byte
	value []byte
}

func newnode(key, value []byte) *Llrbnode {
	nd := &Llrbnode{size: 1}
	nd.setkey(key).setvalue(value)
	return nd
}

func (nd *Llrbnode) setkey(key []byte) *Llrbnode {
	nd.key = lib.Fixbuffer(nil, int64(len(key)))
	copy(nd.key, key)
	return nd
}

func (nd *Llrbnode) setvalue(value []byte) *Llrbnode {
	nd.value = lib.Fixbuffer(nil, int64(len(value)))
	copy(nd.value, value)
	return nd
}

// Key return the key byte-slice for this entry.
func (nd *Llrbnode) Key() []byte {
	if nd == nil {
		return nil
	}
	return nd.key
}

// Value return the value byte-slice for this entry.
func (nd *Llrbnode) Value() []byte {
	if nd == nil {
		return nil
	}
	return nd.value
}

// subtreesize return the entry count rooted at nd, zero for nil.
func subtreesize(nd *Llrbnode) int64 {
	if nd == nil {
		return 0
	}
	return nd.size
}

//---- indexer api

func (nd *Llrbnode) ltkey(other []byte, partial bool) bool {
	return api.Binarycmp(nd.key, other, partial) == -1
}

func (nd *Llrbnode) lekey(other []byte, partial bool) bool {
	cmp := api.Binarycmp(nd.key, other, partial)
	return cmp == -1 || cmp == 0
}

func (nd *Llrbnode) gtkey(other []byte, partial bool) bool {
	return api.Binarycmp(nd.key, other, partial) == 1
}

func (nd *Llrbnode) gekey(other []byte, partial bool) bool {
	cmp := api.Binarycmp(nd.key, other, partial)
	return cmp == 0 || cmp == 1
}

//---- maintanence methods.

func (nd *Llrbnode) repr() string {
	return fmt.Sprintf("%q size:%v", nd.key, nd.size)
}

func (nd *Llrbnode) pprint(prefix string) {
	if nd == nil {
		fmt.Printf("%v\n", nd)
		return
	}
	fmt.Printf("%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Printf("%vleft: ", prefix)
	nd.left.pprint(prefix)
	fmt.Printf("%vright: ", prefix)
	nd.right.pprint(prefix)
}
