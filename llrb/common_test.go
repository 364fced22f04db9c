package llrb

import "fmt"
import "testing"

func makekey(n int) []byte {
	return []byte(fmt.Sprintf("key%08d", n))
}

func makeval(n int) []byte {
	return []byte(fmt.Sprintf("val%08d", n))
}

func loadindex(t *testing.T, name string, ns ...int) *LLRB {
	t.Helper()
	llrb := NewLLRB(name, Defaultsettings())
	for _, n := range ns {
		if err := llrb.Upsert(makekey(n), makeval(n)); err != nil {
			t.Fatalf("Upsert(%v): %v", n, err)
		}
	}
	return llrb
}

func TestMaxheight(t *testing.T) {
	if maxheight(1) != 3 {
		t.Errorf("unexpected %v", maxheight(1))
	} else if maxheight(2) != 6 {
		t.Errorf("unexpected %v", maxheight(2))
	} else if maxheight(5) != 4.643856189774724 {
		t.Errorf("unexpected %v", maxheight(5))
	} else if maxheight(99) != 13.258713240159219 {
		t.Errorf("unexpected %v", maxheight(99))
	}
}
