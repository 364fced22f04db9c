/*
Package fliptree implements an ordered key-value index as a
left-leaning red-black tree that does not store a color bit.

A node's color is encoded in the arrangement of its children: a red
node keeps its larger subtree on the physical left, a black node keeps
the natural order. Color is recovered on demand by walking down from
the root, trading lookup work per balance decision for a node layout
with no metadata at all.

Packages:

  api:  errors, index interface and key comparison.
  lib:  histograms and byte utilities.
  llrb: the tree implementation.
*/
package fliptree
