package api

import "errors"

// ErrorNilKey operation attempted with a nil key.
var ErrorNilKey = errors.New("nilKey")

// ErrorKeyMissing looked up key is not in the index.
var ErrorKeyMissing = errors.New("keyMissing")

// ErrorEmptyIndex structural query on an index with no entries.
var ErrorEmptyIndex = errors.New("emptyIndex")

// ErrorNoFloor no key in the index is less than or equal to the
// argument key.
var ErrorNoFloor = errors.New("noFloor")

// ErrorNoCeiling no key in the index is greater than or equal to the
// argument key.
var ErrorNoCeiling = errors.New("noCeiling")

// ErrorKeySizeExceeded key size is outside the configured
// minkeysize/maxkeysize window.
var ErrorKeySizeExceeded = errors.New("keySizeExceeded")

// ErrorValueSizeExceeded value size is outside the configured
// minvalsize/maxvalsize window.
var ErrorValueSizeExceeded = errors.New("valueSizeExceeded")

// ErrorMemoryExceeded accepting the entry would cross the configured
// memcapacity.
var ErrorMemoryExceeded = errors.New("memoryExceeded")
