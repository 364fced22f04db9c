package llrb

import "fmt"
import "math"
import "errors"

import "github.com/bnclabs/fliptree/lib"

// height of the tree cannot exceed a certain limit. For example if
// the tree holds 1-million entries, a fully balanced tree shall have
// a height of 20 levels. maxheight provide some breathing space on
// top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, red links lean left when the tree is at rest.
var rightleaningred = errors.New("right leaning red spotted")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate check tree invariants and panic on failure: logical sort
// order, black balance, no consecutive reds, no right-leaning red at
// rest, subtree size arithmetic, memory accounting, height bound and
// stats coherence.
func (llrb *LLRB) Validate() {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()

	root := llrb.getroot()
	h := lib.NewhistorgramInt64(1, 256, 1)
	if llrb.isred(root) {
		panic(fmt.Errorf("Validate(): root is red"))
	}

	_, km, vm := llrb.validatetree(root, false /*fromred*/, 0 /*blacks*/, 1, h)
	if km != llrb.keymemory {
		fmsg := "Validate(): keymemory:%v != actual:%v"
		panic(fmt.Errorf(fmsg, llrb.keymemory, km))
	} else if vm != llrb.valmemory {
		fmsg := "Validate(): valmemory:%v != actual:%v"
		panic(fmt.Errorf(fmsg, llrb.valmemory, vm))
	}

	// `h_height`.max should not exceed certain limit.
	if h.Samples() > 8 {
		entries := llrb.Count()
		if float64(h.Max()) > maxheight(entries) {
			fmsg := "Validate(): max height %v exceeds log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), entries))
		}
	}

	llrb.validatestats()
}

func (llrb *LLRB) validatetree(
	nd *Llrbnode, fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, keymem, valmem int64) {

	if nd == nil {
		return blacks, 0, 0
	}
	h.Add(depth)

	red := llrb.isred(nd)
	if fromred && red {
		panic(redafterred)
	}
	if !red {
		blacks++
	}

	lft, rgt := llrb.leftof(nd), llrb.rightof(nd)
	if llrb.isred(rgt) {
		panic(rightleaningred)
	}
	if lft != nil && !lft.ltkey(nd.key, false) {
		fmsg := "Validate(): sort order, left node %q is >= node %q"
		panic(fmt.Errorf(fmsg, lft.key, nd.key))
	}
	if rgt != nil && !rgt.gtkey(nd.key, false) {
		fmsg := "Validate(): sort order, right node %q is <= node %q"
		panic(fmt.Errorf(fmsg, rgt.key, nd.key))
	}
	if nd.size != subtreesize(nd.left)+subtreesize(nd.right)+1 {
		fmsg := "Validate(): size %v != %v+%v+1 at %q"
		panic(fmt.Errorf(
			fmsg, nd.size, subtreesize(nd.left), subtreesize(nd.right), nd.key))
	}

	lblacks, lkm, lvm := llrb.validatetree(lft, red, blacks, depth+1, h)
	rblacks, rkm, rvm := llrb.validatetree(rgt, red, blacks, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}

	keymem = lkm + rkm + int64(len(nd.key))
	valmem = lvm + rvm + int64(len(nd.value))
	return lblacks, keymem, valmem
}

func (llrb *LLRB) validatestats() {
	// n_count should match (n_inserts - n_deletes)
	n_count := llrb.n_count
	n_inserts, n_deletes := llrb.n_inserts, llrb.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		panic(fmt.Errorf(fmsg, n_count, n_inserts, n_deletes))
	}
	// n_nodes should match n_inserts
	n_nodes := llrb.n_nodes
	if n_inserts != n_nodes {
		fmsg := "validatestats(): n_inserts:%v != n_nodes:%v"
		panic(fmt.Errorf(fmsg, n_inserts, n_nodes))
	}
	// n_deletes should match n_frees
	if lib.AbsInt64(n_deletes-llrb.n_frees) != 0 {
		fmsg := "validatestats(): n_deletes:%v != n_frees:%v"
		panic(fmt.Errorf(fmsg, n_deletes, llrb.n_frees))
	}
	// root size should match n_count
	if x := subtreesize(llrb.getroot()); x != n_count {
		fmsg := "validatestats(): root size:%v != n_count:%v"
		panic(fmt.Errorf(fmsg, x, n_count))
	}
}
