package llrb

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for llrb instance.
//
// "minkeysize" (int64, default: 1)
//		Minimum size allowed for key.
//
// "maxkeysize" (int64, default: 4096)
//		Maximum size allowed for key.
//
// "minvalsize" (int64, default: 0)
//		Minimum size allowed for value.
//
// "maxvalsize" (int64, default: 1048576)
//		Maximum size allowed for value.
//
// "memcapacity" (int64, default: free system RAM)
//		Maximum memory allowed for keys and values together.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"minkeysize":  int64(1),
		"maxkeysize":  int64(4096),
		"minvalsize":  int64(0),
		"maxvalsize":  int64(1024 * 1024),
		"memcapacity": int64(free),
	}
	return setts
}

func (llrb *LLRB) readsettings(setts s.Settings) *LLRB {
	llrb.minkeysize = setts.Int64("minkeysize")
	llrb.maxkeysize = setts.Int64("maxkeysize")
	llrb.minvalsize = setts.Int64("minvalsize")
	llrb.maxvalsize = setts.Int64("maxvalsize")
	llrb.memcapacity = setts.Int64("memcapacity")
	return llrb
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
