package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the domain types. The codecs keep the
// field order fixed; any change here is a persisted-format change and
// must bump the model artifact version.

// tokensMUS serializes a token list as a length-prefixed string slice.
var tokensMUS = ord.NewSliceSer[string](ord.String)

// IDMUS serializes an ID as a varint.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// MovieMUS serializes a Movie. AddedAt is stored as Unix microseconds.
var MovieMUS = movieMUS{}

type movieMUS struct{}

func (movieMUS) Marshal(m Movie, bs []byte) (n int) {
	n = IDMUS.Marshal(m.Id, bs)
	n += ord.String.Marshal(m.Name, bs[n:])
	n += ord.String.Marshal(m.Storyline, bs[n:])
	n += tokensMUS.Marshal(m.Tokens, bs[n:])
	n += varint.Int64.Marshal(m.AddedAt.UnixMicro(), bs[n:])
	return n
}

func (movieMUS) Unmarshal(bs []byte) (m Movie, n int, err error) {
	var n1 int
	m.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return m, n, err
	}
	m.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return m, n, err
	}
	m.Storyline, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return m, n, err
	}
	m.Tokens, n1, err = tokensMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return m, n, err
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return m, n, err
	}
	m.AddedAt = time.UnixMicro(micros).UTC()
	return m, n, nil
}

func (movieMUS) Size(m Movie) (size int) {
	size = IDMUS.Size(m.Id)
	size += ord.String.Size(m.Name)
	size += ord.String.Size(m.Storyline)
	size += tokensMUS.Size(m.Tokens)
	size += varint.Int64.Size(m.AddedAt.UnixMicro())
	return size
}

func (movieMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	n1, err = tokensMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return n, err
}
