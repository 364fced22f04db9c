package llrb

import "bytes"
import "math/rand"
import "sort"
import "testing"

import "github.com/bnclabs/fliptree/api"
import "github.com/google/btree"
import "github.com/stretchr/testify/require"

type oracleitem struct {
	key   []byte
	value []byte
}

func (item *oracleitem) Less(than btree.Item) bool {
	return bytes.Compare(item.key, than.(*oracleitem).key) < 0
}

// drive a random mix of mutations against an oracle and verify the
// index agrees with it at every checkpoint.
func TestRandomOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	llrb := NewLLRB("randoracle", Defaultsettings())
	defer llrb.Destroy()
	oracle := btree.New(2)

	for i := 0; i < 5000; i++ {
		n := rnd.Intn(1000)
		switch rnd.Intn(10) {
		case 0:
			require.NoError(t, llrb.Delete(makekey(n)))
			oracle.Delete(&oracleitem{key: makekey(n)})

		case 1:
			if oracle.Len() > 0 {
				key, _, err := llrb.DeleteMin()
				require.NoError(t, err)
				min := oracle.DeleteMin().(*oracleitem)
				require.Equal(t, min.key, key)
			}

		case 2:
			if oracle.Len() > 0 {
				key, _, err := llrb.DeleteMax()
				require.NoError(t, err)
				max := oracle.DeleteMax().(*oracleitem)
				require.Equal(t, max.key, key)
			}

		default:
			value := makeval(rnd.Intn(100000))
			require.NoError(t, llrb.Upsert(makekey(n), value))
			oracle.ReplaceOrInsert(&oracleitem{key: makekey(n), value: value})
		}

		if i%500 == 0 {
			llrb.Validate()
			require.Equal(t, int64(oracle.Len()), llrb.Count())
		}
	}

	llrb.Validate()
	require.Equal(t, int64(oracle.Len()), llrb.Count())

	keys := llrb.Keys()
	require.Equal(t, oracle.Len(), len(keys))
	idx := 0
	oracle.Ascend(func(item btree.Item) bool {
		entry := item.(*oracleitem)
		require.Equal(t, entry.key, keys[idx])
		value, err := llrb.Get(entry.key)
		require.NoError(t, err)
		require.Equal(t, entry.value, value)
		idx++
		return true
	})
}

func TestRandomFloorCeiling(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	ns := rnd.Perm(500)[:200]
	llrb := loadindex(t, "randfloor", ns...)
	defer llrb.Destroy()
	llrb.Validate()

	keys := llrb.Keys()
	for i := 0; i < 200; i++ {
		lookup := makekey(rnd.Intn(520))

		idx := sort.Search(len(keys), func(j int) bool {
			return bytes.Compare(keys[j], lookup) > 0
		})
		key, err := llrb.Floor(lookup)
		if idx == 0 {
			require.Equal(t, api.ErrorNoFloor, err)
		} else {
			require.NoError(t, err)
			require.Equal(t, keys[idx-1], key)
		}

		idx = sort.Search(len(keys), func(j int) bool {
			return bytes.Compare(keys[j], lookup) >= 0
		})
		key, err = llrb.Ceiling(lookup)
		if idx == len(keys) {
			require.Equal(t, api.ErrorNoCeiling, err)
		} else {
			require.NoError(t, err)
			require.Equal(t, keys[idx], key)
		}
	}
}

// drain permuted loads from both ends, every insertion order must
// drain in sorted order with the tree staying valid at each step.
func TestRandomDrainMinMax(t *testing.T) {
	rnd := rand.New(rand.NewSource(37))
	for trial := 0; trial < 100; trial++ {
		llrb := loadindex(t, "randdrain", rnd.Perm(32)...)
		for i := 0; i < 32; i++ {
			key, value, err := llrb.DeleteMin()
			require.NoError(t, err)
			require.Equal(t, makekey(i), key)
			require.Equal(t, makeval(i), value)
			llrb.Validate()
		}
		require.True(t, llrb.IsEmpty())
		llrb.Destroy()

		llrb = loadindex(t, "randdrain", rnd.Perm(32)...)
		for i := 31; i >= 0; i-- {
			key, _, err := llrb.DeleteMax()
			require.NoError(t, err)
			require.Equal(t, makekey(i), key)
			llrb.Validate()
		}
		require.True(t, llrb.IsEmpty())
		llrb.Destroy()
	}
}

func TestRandomDeleteAll(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	ns := rnd.Perm(256)
	llrb := loadindex(t, "randdelall", ns...)
	defer llrb.Destroy()
	llrb.Validate()

	for i, n := range rnd.Perm(256) {
		require.NoError(t, llrb.Delete(makekey(n)))
		require.False(t, llrb.Contains(makekey(n)))
		require.Equal(t, int64(255-i), llrb.Count())
		if i%16 == 0 {
			llrb.Validate()
		}
	}
	require.True(t, llrb.IsEmpty())
	llrb.Validate()

	stats := llrb.Stats()
	require.Equal(t, int64(256), stats["n_deletes"].(int64))
	require.Equal(t, stats["n_deletes"], stats["n_frees"])
}
