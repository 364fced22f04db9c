package llrb

import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/fliptree/lib"

// llrbstats counters track the tree across its lifetime.
type llrbstats struct {
	n_count     int64 // number of entries in the tree
	n_inserts   int64
	n_updates   int64
	n_deletes   int64
	n_nodes     int64 // total nodes allocated
	n_frees     int64 // total nodes released
	n_lookups   int64
	n_ranges    int64
	n_redchecks int64 // number of isred() walks
	keymemory   int64 // byte size of all keys
	valmemory   int64 // byte size of all values
}

// Stats return a snapshot of index statistics. Histogram h_redwalk
// measures the per-call walk length of color inference, the price of
// not storing a color bit.
func (llrb *LLRB) Stats() map[string]interface{} {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()
	return llrb.stats(make(map[string]interface{}))
}

func (llrb *LLRB) stats(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = llrb.n_count
	stats["n_inserts"] = llrb.n_inserts
	stats["n_updates"] = llrb.n_updates
	stats["n_deletes"] = llrb.n_deletes
	stats["n_nodes"] = llrb.n_nodes
	stats["n_frees"] = llrb.n_frees
	stats["n_lookups"] = llrb.n_lookups
	stats["n_ranges"] = llrb.n_ranges
	stats["n_redchecks"] = llrb.n_redchecks
	stats["keymemory"] = llrb.keymemory
	stats["valmemory"] = llrb.valmemory
	stats["h_upsertdepth"] = llrb.h_upsertdepth.Fullstats()
	stats["h_redwalk"] = llrb.h_redwalk.Fullstats()
	return stats
}

// Log vital statistics through the configured logger.
func (llrb *LLRB) Log(human bool) {
	llrb.mu.Lock()
	defer llrb.mu.Unlock()

	stats := llrb.stats(make(map[string]interface{}))
	if human {
		kmem := humanize.Bytes(uint64(llrb.keymemory))
		vmem := humanize.Bytes(uint64(llrb.valmemory))
		capc := humanize.Bytes(uint64(llrb.memcapacity))
		fmsg := "%v entries %v, keymem %v, valmem %v, capacity %v\n"
		infof(fmsg, llrb.logprefix, llrb.n_count, kmem, vmem, capc)
	}
	infof("%v stats %v\n", llrb.logprefix, lib.Prettystats(stats, false))
}
