package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is derived from record content so that re-importing the same movie
// produces the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MovieID generates the content-based ID for a movie record.
// Name and storyline are separated by a NUL byte so that boundary shifts
// between the two fields cannot collide.
func MovieID(name, storyline string) ID {
	return IDFromContent(name + "\x00" + storyline)
}

// Movie represents a single movie record in the catalog.
// Tokens holds the normalized storyline text and is populated by the
// ingestion pipeline; a movie with empty Tokens has not been processed yet.
type Movie struct {
	Id        ID
	Name      string
	Storyline string
	Tokens    []string
	AddedAt   time.Time
}

// Recommendation is a single ranked result returned to callers.
// ScorePercent is the cosine similarity expressed as a percentage,
// rounded to two decimal places.
type Recommendation struct {
	Name         string
	Storyline    string
	ScorePercent float64
}

// MinStorylineLen is the minimum raw storyline length (in bytes) for a
// record to be usable as training input. Shorter storylines carry too
// little signal to vectorize.
const MinStorylineLen = 20
