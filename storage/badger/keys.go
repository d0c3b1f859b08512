package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/reelrank/core"
)

// Key prefixes for different data types
const (
	movieRecordPrefix  = "movrec"
	movieOrdinalPrefix = "movord"
	movieOrdinalSeq    = "movordseq"
)

// makeMovieKey generates a key for a movie by ID.
func makeMovieKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", movieRecordPrefix, id))
}

// makeOrdinalKey generates a composite key for the insertion-order index.
// Format: prefix:ordinal
func makeOrdinalKey(ordinal uint64) []byte {
	prefix := movieOrdinalPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort follows insertion order
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}
