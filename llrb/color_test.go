package llrb

import "bytes"
import "testing"

// Structural expectations for the colorless encoding: red nodes keep
// the larger subtree on the physical left, lone children read as red,
// nodes with a sibling and fewer than two children read as black.

func TestColorLoneChild(t *testing.T) {
	for _, ns := range [][]int{{1, 2}, {2, 1}} {
		llrb := loadindex(t, "lonechild", ns...)

		root := llrb.getroot()
		if bytes.Compare(root.key, makekey(2)) != 0 {
			t.Fatalf("unexpected root %q", root.key)
		} else if root.right != nil {
			t.Fatalf("unexpected right child %q", root.right.key)
		} else if root.left == nil {
			t.Fatalf("expected lone left child")
		} else if bytes.Compare(root.left.key, makekey(1)) != 0 {
			t.Fatalf("unexpected left child %q", root.left.key)
		}
		if llrb.isred(root) {
			t.Errorf("root should be black")
		}
		if llrb.isred(root.left) == false {
			t.Errorf("lone child should be red")
		}
		llrb.Validate()
		llrb.Destroy()
	}
}

func TestColorFlip(t *testing.T) {
	llrb := loadindex(t, "flip", 1, 2, 3)
	defer llrb.Destroy()

	root := llrb.getroot()
	if bytes.Compare(root.key, makekey(2)) != 0 {
		t.Fatalf("unexpected root %q", root.key)
	} else if bytes.Compare(root.left.key, makekey(1)) != 0 {
		t.Fatalf("unexpected left %q", root.left.key)
	} else if bytes.Compare(root.right.key, makekey(3)) != 0 {
		t.Fatalf("unexpected right %q", root.right.key)
	}
	// after the color flip both children settle black, the root keeps
	// its natural child order.
	if llrb.isred(root) || llrb.isred(root.left) || llrb.isred(root.right) {
		t.Errorf("expected an all black tree")
	}
	llrb.Validate()
}

func TestColorSwappedChildren(t *testing.T) {
	llrb := loadindex(t, "swapped", 1, 2, 3, 10, 7)
	defer llrb.Destroy()

	root := llrb.getroot()
	if bytes.Compare(root.key, makekey(7)) != 0 {
		t.Fatalf("unexpected root %q", root.key)
	} else if bytes.Compare(root.right.key, makekey(10)) != 0 {
		t.Fatalf("unexpected right %q", root.right.key)
	}
	// the red node carries its larger subtree on the physical left.
	lft := root.left
	if bytes.Compare(lft.key, makekey(2)) != 0 {
		t.Fatalf("unexpected left %q", lft.key)
	} else if bytes.Compare(lft.left.key, makekey(3)) != 0 {
		t.Fatalf("unexpected swapped left %q", lft.left.key)
	} else if bytes.Compare(lft.right.key, makekey(1)) != 0 {
		t.Fatalf("unexpected swapped right %q", lft.right.key)
	}
	if llrb.isred(lft) == false {
		t.Errorf("swapped node should read red")
	}
	if llrb.isred(root) || llrb.isred(root.right) {
		t.Errorf("expected black root and right child")
	}
	if llrb.isred(lft.left) || llrb.isred(lft.right) {
		t.Errorf("expected black grandchildren")
	}
	// logical accessors resolve the swap.
	if nd := llrb.leftof(lft); bytes.Compare(nd.key, makekey(1)) != 0 {
		t.Errorf("unexpected logical left %q", nd.key)
	}
	if nd := llrb.rightof(lft); bytes.Compare(nd.key, makekey(3)) != 0 {
		t.Errorf("unexpected logical right %q", nd.key)
	}
	llrb.Validate()
}

func TestColorDeleteMin(t *testing.T) {
	llrb := loadindex(t, "colordelmin", 10, 20, 5)
	defer llrb.Destroy()

	root := llrb.getroot()
	if bytes.Compare(root.key, makekey(10)) != 0 {
		t.Fatalf("unexpected root %q", root.key)
	} else if bytes.Compare(root.left.key, makekey(5)) != 0 {
		t.Fatalf("unexpected left %q", root.left.key)
	} else if bytes.Compare(root.right.key, makekey(20)) != 0 {
		t.Fatalf("unexpected right %q", root.right.key)
	}

	if key, _, err := llrb.DeleteMin(); err != nil {
		t.Fatalf("unexpected %v", err)
	} else if bytes.Compare(key, makekey(5)) != 0 {
		t.Fatalf("unexpected %q", key)
	}

	root = llrb.getroot()
	if bytes.Compare(root.key, makekey(20)) != 0 {
		t.Fatalf("unexpected root %q", root.key)
	} else if root.right != nil {
		t.Fatalf("unexpected right child %q", root.right.key)
	} else if bytes.Compare(root.left.key, makekey(10)) != 0 {
		t.Fatalf("unexpected left child %q", root.left.key)
	}
	if llrb.isred(root.left) == false {
		t.Errorf("lone child should be red")
	}
	llrb.Validate()
}

func TestRedwalkStats(t *testing.T) {
	llrb := loadindex(t, "redwalk", 1, 2, 3, 10, 7, 20, 5, 50)
	defer llrb.Destroy()

	for _, n := range []int{1, 2, 3, 5, 7, 10, 20, 50} {
		if _, err := llrb.Get(makekey(n)); err != nil {
			t.Fatalf("Get(%v): %v", n, err)
		}
	}
	stats := llrb.Stats()
	if x := stats["n_redchecks"].(int64); x == 0 {
		t.Errorf("expected non zero n_redchecks")
	}
	h := stats["h_redwalk"].(map[string]interface{})
	if x := h["samples"].(int64); x == 0 {
		t.Errorf("expected red walk samples")
	}
}
