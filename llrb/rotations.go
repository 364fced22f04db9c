package llrb

// 2-3 tree fix-ups, expressed over the logical view. Every primitive
// reads its operands through leftof/rightof before touching any
// pointer, a rewrite changes what later color walks infer.

func (llrb *LLRB) rotateleft(nd *Llrbnode) *Llrbnode {
	x := llrb.rightof(nd)
	if x == nil {
		return nd
	}
	llrb.pinchildren(nd)
	llrb.pinchildren(x)
	ndl := llrb.leftof(nd)
	xl, xr := llrb.leftof(x), llrb.rightof(x)
	red := llrb.isred(nd)
	setlinks(nd, ndl, xl, true)
	setlinks(x, nd, xr, red)
	llrb.mark(nd, true)
	llrb.mark(x, red)
	x.size = nd.size
	nd.size = subtreesize(nd.left) + subtreesize(nd.right) + 1
	return x
}

func (llrb *LLRB) rotateright(nd *Llrbnode) *Llrbnode {
	x := llrb.leftof(nd)
	if x == nil {
		return nd
	}
	llrb.pinchildren(nd)
	llrb.pinchildren(x)
	ndr := llrb.rightof(nd)
	xl, xr := llrb.leftof(x), llrb.rightof(x)
	red := llrb.isred(nd)
	setlinks(nd, xr, ndr, true)
	setlinks(x, xl, nd, red)
	llrb.mark(nd, true)
	llrb.mark(x, red)
	x.size = nd.size
	nd.size = subtreesize(nd.left) + subtreesize(nd.right) + 1
	return x
}

// flipcolors invert nd and both children. Legal only on the two 2-3
// tree patterns, a red parent over two black children or a black
// parent over two red children, anything else is left untouched.
func (llrb *LLRB) flipcolors(nd *Llrbnode) {
	if nd == nil || nd.left == nil || nd.right == nil {
		return
	}
	ndred := llrb.isred(nd)
	lred, rred := llrb.isred(nd.left), llrb.isred(nd.right)
	if ndred && !lred && !rred {
		llrb.recolor(nd.left, true)
		llrb.recolor(nd.right, true)
		llrb.recolor(nd, false)
	} else if !ndred && lred && rred {
		llrb.recolor(nd.left, false)
		llrb.recolor(nd.right, false)
		llrb.recolor(nd, true)
	}
}

// walkuprot23 on the way back from insertion recursion, re-establish
// the left-leaning invariants.
func (llrb *LLRB) walkuprot23(nd *Llrbnode) *Llrbnode {
	if llrb.isred(llrb.rightof(nd)) && !llrb.isred(llrb.leftof(nd)) {
		nd = llrb.rotateleft(nd)
	}
	if lft := llrb.leftof(nd); llrb.isred(lft) && llrb.isred(llrb.leftof(lft)) {
		nd = llrb.rotateright(nd)
	}
	if llrb.isred(nd.left) && llrb.isred(nd.right) {
		llrb.flipcolors(nd)
	}
	return nd
}

// moveredleft borrow from the right sibling so the logical left
// child can give up an entry.
func (llrb *LLRB) moveredleft(nd *Llrbnode) *Llrbnode {
	llrb.flipcolors(nd)
	if llrb.isred(llrb.leftof(llrb.rightof(nd))) {
		lft := llrb.leftof(nd)
		x := llrb.rotateright(llrb.rightof(nd))
		setlinks(nd, lft, x, llrb.isred(nd))
		nd = llrb.rotateleft(nd)
		llrb.flipcolors(nd)
	}
	return nd
}

// moveredright borrow from the left sibling so the logical right
// child can give up an entry.
func (llrb *LLRB) moveredright(nd *Llrbnode) *Llrbnode {
	llrb.flipcolors(nd)
	if llrb.isred(llrb.leftof(llrb.leftof(nd))) {
		nd = llrb.rotateright(nd)
		llrb.flipcolors(nd)
	}
	return nd
}

// balance fix-ups on the way back from deletion recursion.
func (llrb *LLRB) balance(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	if llrb.isred(llrb.rightof(nd)) && !llrb.isred(llrb.leftof(nd)) {
		nd = llrb.rotateleft(nd)
	}
	if lft := llrb.leftof(nd); llrb.isred(lft) && llrb.isred(llrb.leftof(lft)) {
		nd = llrb.rotateright(nd)
	}
	if llrb.isred(nd.left) && llrb.isred(nd.right) {
		llrb.flipcolors(nd)
	}
	nd.size = subtreesize(nd.left) + subtreesize(nd.right) + 1
	return nd
}

// rootredleft feed a red down the logical left spine before a
// deletion descends from the root. The root stays black, instead
// both children redden, an even decrement of the black height, with
// the usual compensation when the right grandchild is red.
func (llrb *LLRB) rootredleft(root *Llrbnode) *Llrbnode {
	llrb.recolor(root.left, true)
	llrb.recolor(root.right, true)
	if llrb.isred(llrb.leftof(llrb.rightof(root))) {
		lft := llrb.leftof(root)
		x := llrb.rotateright(llrb.rightof(root))
		setlinks(root, lft, x, llrb.isred(root))
		root = llrb.rotateleft(root)
		llrb.flipcolors(root)
	}
	return root
}

// rootredright mirror of rootredleft for the logical right spine.
func (llrb *LLRB) rootredright(root *Llrbnode) *Llrbnode {
	llrb.recolor(root.left, true)
	llrb.recolor(root.right, true)
	if llrb.isred(llrb.leftof(llrb.leftof(root))) {
		root = llrb.rotateright(root)
		llrb.flipcolors(root)
	}
	return root
}
