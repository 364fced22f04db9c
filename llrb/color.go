package llrb

// Color inference. No node carries a color field, instead a red node
// keeps its larger subtree on the physical left while a black node
// keeps the natural order. For nodes with fewer than two children
// the swap is not observable, there the color comes from context: a
// lone child is red, a node whose sibling is present is black, and
// the root is black. Context means parent and sibling, so isred()
// starts from the root and walks down to the argument node.
//
// Because a single child slot cannot express a swap, the logical
// side of a lone child is resolved by comparing its key against the
// parent, never by which slot it occupies. Fix-ups are free to
// recolor one-child nodes without a structural footprint.
//
// The walk is only meaningful while the tree is at rest. Mid way
// through a mutation, rotations detach nodes from the root path and
// transient shapes cannot always express the color they are meant to
// carry, a red leaf with a sibling has no swap to show. Mutations
// therefore keep an operation-scoped memo, llrb.shadow: colors are
// pinned from the resting tree before a subtree is disturbed and
// updated as fix-ups recolor nodes. The memo is dropped once the
// operation completes, every resting red-black shape reads back
// faithfully from structure alone.

// isred return the inferred color of nd. O(height) per call when it
// has to walk, the walk length is sampled into h_redwalk.
func (llrb *LLRB) isred(nd *Llrbnode) bool {
	llrb.n_redchecks++
	if nd == nil {
		return false
	}
	if red, ok := llrb.shadow[nd]; ok {
		return red
	}
	depth, parent := int64(1), llrb.getroot()
	for parent != nil && parent != nd {
		if parent.left == nd {
			if parent.right == nil {
				return true // lone child
			}
			break
		}
		if parent.right == nd {
			if parent.left == nil {
				return true // lone child
			}
			break
		}
		if parent.left == nil {
			parent = parent.right
		} else if parent.right == nil {
			parent = parent.left
		} else if parent.left.gtkey(parent.right.key, false) {
			// parent is red, larger keys live on its physical left.
			if nd.ltkey(parent.key, false) {
				parent = parent.right
			} else {
				parent = parent.left
			}
		} else {
			if nd.ltkey(parent.key, false) {
				parent = parent.left
			} else {
				parent = parent.right
			}
		}
		depth++
	}
	llrb.h_redwalk.Add(depth)
	if nd.left != nil && nd.right != nil {
		return nd.left.gtkey(nd.right.key, false)
	}
	return false // sibling present, fewer than two children
}

// pinchildren memo the colors of nd's children before their context
// gets disturbed. The colors are derived locally from nd and the
// child, deletions rewrite ancestors on the way down and a walk from
// the root is not reliable once that happens. No-op outside
// mutations.
func (llrb *LLRB) pinchildren(nd *Llrbnode) {
	if llrb.shadow == nil || nd == nil {
		return
	}
	llrb.pinchild(nd, nd.left)
	llrb.pinchild(nd, nd.right)
}

func (llrb *LLRB) pinchild(parent, child *Llrbnode) {
	if child == nil {
		return
	}
	if _, ok := llrb.shadow[child]; ok {
		return
	}
	var red bool
	if parent.left == nil || parent.right == nil {
		red = true // lone child
	} else if child.left != nil && child.right != nil {
		red = child.left.gtkey(child.right.key, false)
	}
	llrb.shadow[child] = red
}

// mark record the color a fix-up just established for nd.
func (llrb *LLRB) mark(nd *Llrbnode, red bool) {
	if llrb.shadow != nil && nd != nil {
		llrb.shadow[nd] = red
	}
}

// lonechild return the only child of nd, nil when nd is a leaf or
// has both children.
func lonechild(nd *Llrbnode) *Llrbnode {
	if nd.left != nil && nd.right != nil {
		return nil
	}
	if nd.left != nil {
		return nd.left
	}
	return nd.right
}

// leftof return the child holding the logically smaller subtree of
// nd. With two children the red child-swap decides the slot. A lone
// child resolves by key comparison, a single slot cannot express the
// swap, so for one-child nodes the slot carries no meaning at all.
func (llrb *LLRB) leftof(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	if nd.left == nil || nd.right == nil {
		if child := lonechild(nd); child != nil && child.ltkey(nd.key, false) {
			return child
		}
		return nil
	}
	if llrb.isred(nd) {
		return nd.right
	}
	return nd.left
}

// rightof return the child holding the logically larger subtree.
func (llrb *LLRB) rightof(nd *Llrbnode) *Llrbnode {
	if nd == nil {
		return nil
	}
	if nd.left == nil || nd.right == nil {
		if child := lonechild(nd); child != nil && child.gtkey(nd.key, false) {
			return child
		}
		return nil
	}
	if llrb.isred(nd) {
		return nd.left
	}
	return nd.right
}

// flipchildren toggle nd's color by swapping its children. With
// fewer than two children there is nothing to swap, those nodes take
// their color from context and their lone child resolves by key.
func flipchildren(nd *Llrbnode) {
	if nd != nil && nd.left != nil && nd.right != nil {
		nd.left, nd.right = nd.right, nd.left
	}
}

// recolor drive nd to the requested color. The swap applies when the
// shape can express it, the memo carries the color either way.
func (llrb *LLRB) recolor(nd *Llrbnode, red bool) {
	if nd == nil {
		return
	}
	if llrb.isred(nd) != red {
		flipchildren(nd)
	}
	llrb.mark(nd, red)
}

// setlinks rewrite nd's child slots for the requested logical order
// and color. Lone children land on the slot the color convention
// expects, red keeps the larger subtree on the physical left.
func setlinks(nd, left, right *Llrbnode, red bool) {
	if red {
		nd.left, nd.right = right, left
	} else {
		nd.left, nd.right = left, right
	}
}

// blackenroot the root is black by definition but fix-ups can leave
// it structurally swapped, restore the natural order.
func (llrb *LLRB) blackenroot() {
	root := llrb.getroot()
	if root != nil && root.left != nil && root.right != nil {
		if root.left.gtkey(root.right.key, false) {
			flipchildren(root)
		}
	}
}
