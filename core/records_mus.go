package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for stored records. Timestamps are encoded as Unix
// microseconds in UTC.
var (
	IDMUS       = idMUS{}
	SnapshotMUS = snapshotMUS{}
	AliasMUS    = aliasMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return ID(u), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

type timeMUS struct{}

func (timeMUS) Marshal(v time.Time, bs []byte) (n int) {
	return varint.Int64.Marshal(v.UnixMicro(), bs)
}

func (timeMUS) Unmarshal(bs []byte) (v time.Time, n int, err error) {
	us, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	return time.UnixMicro(us).UTC(), n, nil
}

func (timeMUS) Size(v time.Time) (size int) {
	return varint.Int64.Size(v.UnixMicro())
}

// metadataMUS writes the entry count followed by key/value string pairs.
// A nil map and an empty map both encode as a zero count and decode as nil.
type metadataMUS struct{}

func (metadataMUS) Marshal(v map[string]string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for k, val := range v {
		n += ord.String.Marshal(k, bs[n:])
		n += ord.String.Marshal(val, bs[n:])
	}
	return
}

func (metadataMUS) Unmarshal(bs []byte) (v map[string]string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if length < 0 {
		return nil, n, ErrNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make(map[string]string, length)
	var (
		k, val string
		n1     int
	)
	for range length {
		k, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		val, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		v[k] = val
	}
	return v, n, nil
}

func (metadataMUS) Size(v map[string]string) (size int) {
	size = varint.Int.Size(len(v))
	for k, val := range v {
		size += ord.String.Size(k) + ord.String.Size(val)
	}
	return
}

type snapshotMUS struct{}

func (snapshotMUS) Marshal(v Snapshot, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.HTML, bs[n:])
	n += timeMUS{}.Marshal(v.CapturedAt, bs[n:])
	n += timeMUS{}.Marshal(v.InsertedAt, bs[n:])
	n += metadataMUS{}.Marshal(v.Metadata, bs[n:])
	return
}

func (snapshotMUS) Unmarshal(bs []byte) (v Snapshot, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	for _, s := range []*string{&v.Name, &v.URL, &v.HTML} {
		*s, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for _, t := range []*time.Time{&v.CapturedAt, &v.InsertedAt} {
		*t, n1, err = timeMUS{}.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	v.Metadata, n1, err = metadataMUS{}.Unmarshal(bs[n:])
	n += n1
	return
}

func (snapshotMUS) Size(v Snapshot) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.HTML)
	size += timeMUS{}.Size(v.CapturedAt)
	size += timeMUS{}.Size(v.InsertedAt)
	return size + metadataMUS{}.Size(v.Metadata)
}

type aliasMUS struct{}

func (aliasMUS) Marshal(v Alias, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Locator, bs[n:])
	n += timeMUS{}.Marshal(v.UpdatedAt, bs[n:])
	return
}

func (aliasMUS) Unmarshal(bs []byte) (v Alias, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Locator, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeMUS{}.Unmarshal(bs[n:])
	n += n1
	return
}

func (aliasMUS) Size(v Alias) (size int) {
	size = ord.String.Size(v.Name)
	size += ord.String.Size(v.Locator)
	return size + timeMUS{}.Size(v.UpdatedAt)
}
