/*
Package llrb implement a left-leaning red-black tree with no color
bit stored on the node.

A node's color is folded into the arrangement of its two child
pointers. Black nodes keep the natural binary-search-tree order, with
the smaller subtree on the physical left. Red nodes swap their
children, so the larger subtree sits on the physical left. A node
with a single child is red, a node whose sibling exists but has fewer
than two children is black, and the root is always black. Since the
convention is relative to the parent's perspective, recovering a
node's color means walking down from the root to find its parent and
sibling, an O(height) operation performed by isred().

A single child slot cannot express the swap, so the logical side of a
lone child is always resolved by comparing keys with its parent, never
by the slot it occupies.

The encoding saves the color bit but charges for it on every balance
decision. The per-walk cost is measured in the "h_redwalk" histogram
and the call count in "n_redchecks", both available from Stats().

Tree mutations go through the standard 2-3 tree algorithms, rotations
and color flips re-expressed as child-pointer rewrites.
*/
package llrb
