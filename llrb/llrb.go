package llrb

import "io"
import "fmt"
import "sync"
import "time"
import "strings"
import "unsafe"
import "sync/atomic"

import "github.com/bnclabs/fliptree/api"
import "github.com/bnclabs/fliptree/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// LLRB manage a single instance of in-memory sorted index using
// left-leaning-red-black tree. Nodes don't store a color bit, the
// color of a node is inferred from the arrangement of its children,
// refer to package documentation. Operations are serialized under a
// single mutex, color inference updates statistics even on lookup
// paths, so there are no concurrent readers here.
type LLRB struct {
	llrbstats
	h_upsertdepth *lib.HistogramInt64
	h_redwalk     *lib.HistogramInt64

	name     string
	root     unsafe.Pointer // *Llrbnode
	borntime time.Time
	dead     bool
	mu       sync.Mutex
	// shadow is the per-mutation color memo, nil while at rest.
	// Refer color.go for why mutations need it.
	shadow map[*Llrbnode]bool

	// settings
	memcapacity int64
	minkeysize  int64
	maxkeysize  int64
	minvalsize  int64
	maxvalsize  int64
	setts       s.Settings
	logprefix   string
}

// NewLLRB a new instance of in-memory sorted index.
func NewLLRB(name string, setts s.Settings) *LLRB {
	llrb := &LLRB{name: name, borntime: time.Now()}
	llrb.logprefix = fmt.Sprintf("llrb [%v]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.setts = setts

	llrb.h_upsertdepth = lib.NewhistorgramInt64(1, 256, 1)
	llrb.h_redwalk = lib.NewhistorgramInt64(1, 256, 1)

	memcap := humanize.Bytes(uint64(llrb.memcapacity))
	infof("%v started with %v memcapacity ...\n", llrb.logprefix, memcap)
	return llrb
}

//---- Index{} interface.

var _ api.Index = (*LLRB)(nil)

// ID is same as the name supplied while creating the LLRB instance.
func (llrb *LLRB) ID() string {
	return llrb.name
}

// Count return the number of items indexed.
func (llrb *LLRB) Count() int64 {
	return subtreesize(llrb.getroot())
}

// IsEmpty return true if the index has no entries.
func (llrb *LLRB) IsEmpty() bool {
	return llrb.Count() == 0
}

// Destroy release all resources held by the tree. No other method
// call are allowed after Destroy.
func (llrb *LLRB) Destroy() error {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Destroy(): already dead tree, call the programmer")
	}
	llrb.dead = true
	llrb.setroot(nil)
	llrb.setts = nil
	infof("%v destroyed\n", llrb.logprefix)
	return nil
}

// Upsert insert or update key, value pair. Upserting a nil value is
// the tombstone convention and deletes the key.
func (llrb *LLRB) Upsert(key, value []byte) error {
	if key == nil {
		return api.ErrorNilKey
	} else if value == nil {
		return llrb.Delete(key)
	}

	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Upsert(): on dead tree, call the programmer")
	}
	if err := llrb.validklenvlen(key, value); err != nil {
		return err
	}

	llrb.shadow = map[*Llrbnode]bool{}
	defer func() { llrb.shadow = nil }()
	llrb.mark(llrb.getroot(), false)

	root, oldvalue, found := llrb.upsert(llrb.getroot(), 1 /*depth*/, key, value)
	llrb.setroot(root)
	llrb.blackenroot()
	llrb.upsertcounts(key, value, oldvalue, found)
	return nil
}

func (llrb *LLRB) upsert(
	nd *Llrbnode, depth int64,
	key, value []byte) (root *Llrbnode, oldvalue []byte, found bool) {

	if nd == nil {
		llrb.h_upsertdepth.Add(depth)
		return llrb.newnode(key, value), nil, false
	}

	llrb.pinchildren(nd)
	if nd.gtkey(key, false) {
		var lft *Llrbnode
		lft, oldvalue, found = llrb.upsert(llrb.leftof(nd), depth+1, key, value)
		setlinks(nd, lft, llrb.rightof(nd), llrb.isred(nd))
	} else if nd.ltkey(key, false) {
		var rgt *Llrbnode
		rgt, oldvalue, found = llrb.upsert(llrb.rightof(nd), depth+1, key, value)
		setlinks(nd, llrb.leftof(nd), rgt, llrb.isred(nd))
	} else {
		oldvalue, found = nd.value, true
		nd.setvalue(value)
		llrb.h_upsertdepth.Add(depth)
	}

	nd = llrb.walkuprot23(nd)
	nd.size = subtreesize(nd.left) + subtreesize(nd.right) + 1
	return nd, oldvalue, found
}

// Delete key from index. Deleting an absent key is a no-op.
func (llrb *LLRB) Delete(key []byte) error {
	if key == nil {
		return api.ErrorNilKey
	}

	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("Delete(): on dead tree, call the programmer")
	}

	root := llrb.getroot()
	if llrb.getkey(root, key) == nil {
		return nil
	}

	llrb.shadow = map[*Llrbnode]bool{}
	defer func() { llrb.shadow = nil }()
	llrb.mark(root, false)
	llrb.pinchildren(root)
	llrb.pinchildren(root.left)
	llrb.pinchildren(root.right)

	// feed a red down the spine the deletion will descend.
	if !llrb.isred(root.left) && !llrb.isred(root.right) {
		if root.gtkey(key, false) {
			if lft := llrb.leftof(root); lft != nil && !llrb.isred(llrb.leftof(lft)) {
				root = llrb.rootredleft(root)
			}
		} else {
			if rgt := llrb.rightof(root); rgt != nil && !llrb.isred(llrb.leftof(rgt)) {
				root = llrb.rootredright(root)
			}
		}
	}

	root, deleted := llrb.dodelete(root, key)
	llrb.setroot(root)
	llrb.blackenroot()
	llrb.delcounts(deleted)
	return nil
}

func (llrb *LLRB) dodelete(
	nd *Llrbnode, key []byte) (newnd, deleted *Llrbnode) {

	if nd == nil {
		return nil, nil
	}
	llrb.pinchildren(nd)
	llrb.pinchildren(nd.left)
	llrb.pinchildren(nd.right)

	if nd.gtkey(key, false) {
		lft := llrb.leftof(nd)
		if lft == nil { // key is absent
			return nd, nil
		}
		if !llrb.isred(lft) && !llrb.isred(llrb.leftof(lft)) {
			nd = llrb.moveredleft(nd)
		}
		lft, deleted = llrb.dodelete(llrb.leftof(nd), key)
		setlinks(nd, lft, llrb.rightof(nd), llrb.isred(nd))

	} else {
		if llrb.isred(llrb.leftof(nd)) {
			nd = llrb.rotateright(nd)
		}
		// if matching node is a logical leaf, unlink it and let the
		// lone child, if any, ride up.
		if !nd.ltkey(key, false) && !nd.gtkey(key, false) {
			if llrb.rightof(nd) == nil {
				lft := llrb.leftof(nd)
				llrb.mark(lft, false) // absorbs the unlinked black
				return lft, nd
			}
		}
		rgt := llrb.rightof(nd)
		if rgt != nil && !llrb.isred(rgt) && !llrb.isred(llrb.leftof(rgt)) {
			nd = llrb.moveredright(nd)
		}
		if !nd.ltkey(key, false) && !nd.gtkey(key, false) {
			// replace this node with its successor from the logical
			// right subtree and delete the successor node instead.
			var subdeleted *Llrbnode
			rgt, subdeleted = llrb.deletemin(llrb.rightof(nd))
			if subdeleted == nil {
				panic("dodelete(): no successor node, call the programmer")
			}
			setlinks(nd, llrb.leftof(nd), rgt, llrb.isred(nd))
			deleted = &Llrbnode{key: nd.key, value: nd.value, size: 1}
			nd.key, nd.value = subdeleted.key, subdeleted.value
		} else {
			rgt, deleted = llrb.dodelete(llrb.rightof(nd), key)
			setlinks(nd, llrb.leftof(nd), rgt, llrb.isred(nd))
		}
	}

	return llrb.balance(nd), deleted
}

// DeleteMin delete the entry with the smallest key and return it.
func (llrb *LLRB) DeleteMin() (key, value []byte, err error) {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("DeleteMin(): on dead tree, call the programmer")
	}

	root := llrb.getroot()
	if root == nil {
		return nil, nil, api.ErrorEmptyIndex
	}

	llrb.shadow = map[*Llrbnode]bool{}
	defer func() { llrb.shadow = nil }()
	llrb.mark(root, false)
	llrb.pinchildren(root)
	llrb.pinchildren(root.left)
	llrb.pinchildren(root.right)

	if !llrb.isred(root.left) && !llrb.isred(root.right) {
		if lft := llrb.leftof(root); lft != nil && !llrb.isred(llrb.leftof(lft)) {
			root = llrb.rootredleft(root)
		}
	}

	root, deleted := llrb.deletemin(root)
	llrb.setroot(root)
	llrb.blackenroot()
	llrb.delcounts(deleted)
	return deleted.key, deleted.value, nil
}

func (llrb *LLRB) deletemin(nd *Llrbnode) (newnd, deleted *Llrbnode) {
	if nd == nil {
		return nil, nil
	}
	llrb.pinchildren(nd)
	llrb.pinchildren(nd.left)
	llrb.pinchildren(nd.right)
	lft := llrb.leftof(nd)
	if lft == nil {
		// nd is the minimum, the lone child, if any, rides up.
		rgt := llrb.rightof(nd)
		llrb.mark(rgt, false) // absorbs the unlinked black
		return rgt, nd
	}
	if !llrb.isred(lft) && !llrb.isred(llrb.leftof(lft)) {
		nd = llrb.moveredleft(nd)
	}
	lft, deleted = llrb.deletemin(llrb.leftof(nd))
	setlinks(nd, lft, llrb.rightof(nd), llrb.isred(nd))
	return llrb.balance(nd), deleted
}

// DeleteMax delete the entry with the largest key and return it.
func (llrb *LLRB) DeleteMax() (key, value []byte, err error) {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	if llrb.dead {
		panic("DeleteMax(): on dead tree, call the programmer")
	}

	root := llrb.getroot()
	if root == nil {
		return nil, nil, api.ErrorEmptyIndex
	}

	llrb.shadow = map[*Llrbnode]bool{}
	defer func() { llrb.shadow = nil }()
	llrb.mark(root, false)
	llrb.pinchildren(root)
	llrb.pinchildren(root.left)
	llrb.pinchildren(root.right)

	if !llrb.isred(root.left) && !llrb.isred(root.right) {
		if rgt := llrb.rightof(root); rgt != nil && !llrb.isred(llrb.leftof(rgt)) {
			root = llrb.rootredright(root)
		}
	}

	root, deleted := llrb.deletemax(root)
	llrb.setroot(root)
	llrb.blackenroot()
	llrb.delcounts(deleted)
	return deleted.key, deleted.value, nil
}

func (llrb *LLRB) deletemax(nd *Llrbnode) (newnd, deleted *Llrbnode) {
	if nd == nil {
		return nil, nil
	}
	llrb.pinchildren(nd)
	llrb.pinchildren(nd.left)
	llrb.pinchildren(nd.right)
	if llrb.isred(llrb.leftof(nd)) {
		nd = llrb.rotateright(nd)
	}
	rgt := llrb.rightof(nd)
	if rgt == nil {
		// nd is the maximum, the lone child, if any, rides up.
		lft := llrb.leftof(nd)
		llrb.mark(lft, false) // absorbs the unlinked black
		return lft, nd
	}
	if !llrb.isred(rgt) && !llrb.isred(llrb.leftof(rgt)) {
		nd = llrb.moveredright(nd)
	}
	rgt, deleted = llrb.deletemax(llrb.rightof(nd))
	setlinks(nd, llrb.leftof(nd), rgt, llrb.isred(nd))
	return llrb.balance(nd), deleted
}

//---- local methods.

func (llrb *LLRB) getroot() *Llrbnode {
	return (*Llrbnode)(atomic.LoadPointer(&llrb.root))
}

func (llrb *LLRB) setroot(root *Llrbnode) {
	atomic.StorePointer(&llrb.root, unsafe.Pointer(root))
}

func (llrb *LLRB) newnode(key, value []byte) *Llrbnode {
	llrb.n_nodes++
	nd := newnode(key, value)
	llrb.mark(nd, true) // fresh nodes join as red
	return nd
}

func (llrb *LLRB) validklenvlen(key, value []byte) error {
	if x := int64(len(key)); x < llrb.minkeysize || x > llrb.maxkeysize {
		warnf("%v key size %v outside {%v,%v}\n",
			llrb.logprefix, x, llrb.minkeysize, llrb.maxkeysize)
		return api.ErrorKeySizeExceeded
	}
	if x := int64(len(value)); x < llrb.minvalsize || x > llrb.maxvalsize {
		warnf("%v value size %v outside {%v,%v}\n",
			llrb.logprefix, x, llrb.minvalsize, llrb.maxvalsize)
		return api.ErrorValueSizeExceeded
	}
	memory := llrb.keymemory + llrb.valmemory
	if memory+int64(len(key)+len(value)) > llrb.memcapacity {
		errorf("%v memory %v exceeds capacity %v\n",
			llrb.logprefix, memory, llrb.memcapacity)
		return api.ErrorMemoryExceeded
	}
	return nil
}

func (llrb *LLRB) upsertcounts(key, value, oldvalue []byte, found bool) {
	if found {
		llrb.n_updates++
		llrb.valmemory += int64(len(value)) - int64(len(oldvalue))
		return
	}
	llrb.n_count++
	llrb.n_inserts++
	llrb.keymemory += int64(len(key))
	llrb.valmemory += int64(len(value))
}

func (llrb *LLRB) delcounts(nd *Llrbnode) {
	if nd == nil {
		return
	}
	llrb.n_count--
	llrb.n_deletes++
	llrb.n_frees++
	llrb.keymemory -= int64(len(nd.key))
	llrb.valmemory -= int64(len(nd.value))
}

// Dotdump write out the tree in dot format to buffer, red links are
// colored.
func (llrb *LLRB) Dotdump(buffer io.Writer) {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()

	lines := []string{
		"digraph llrb {",
		"  node[shape=record];",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	buffer.Write([]byte("\n"))
	llrb.dotdump(llrb.getroot(), buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
	buffer.Write([]byte("\n"))
}

func (llrb *LLRB) dotdump(nd *Llrbnode, buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *Llrbnode) string {
		if llrb.isred(childnd) {
			return "red"
		}
		return "black"
	}

	key := nd.key
	lines := []string{
		fmt.Sprintf("  %s [label=\"{%s}\"];\n", key, key),
	}
	fmsg := "  %s -> %s [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, nd.left.key, whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, nd.right.key, whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	llrb.dotdump(nd.left, buffer)
	llrb.dotdump(nd.right, buffer)
}
