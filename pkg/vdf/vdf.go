// Package vdf decodes the binary key/typed-value container format used by
// game launchers to store non-Steam shortcut entries.
//
// The container is a recursive map: each entry is a one-byte type tag, a
// null-terminated key and a type-specific value. Maps nest until a matching
// end-of-map tag at the same level. Any unrecognized tag or truncated value
// aborts the decode; partial data is unsafe to interpret as a game list.
package vdf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Type tags used by the binary container format.
const (
	tagMap    byte = 0x00
	tagString byte = 0x01
	tagUint32 byte = 0x02
	tagEnd    byte = 0x08
)

// ErrMalformed indicates the container held an unrecognized tag or was
// truncated. No records from such a container are usable.
var ErrMalformed = errors.New("malformed container")

// Kind discriminates the variants of Value.
type Kind int

const (
	// KindMap is a nested map of keyed values
	KindMap Kind = iota
	// KindString is a null-terminated UTF-8 string
	KindString
	// KindUint32 is a 4-byte little-endian unsigned integer
	KindUint32
)

// Value is one decoded node of the container tree: a map, a string or a
// uint32. The tagged variant keeps field lookups exhaustively checked
// instead of funneling everything through an untyped map.
type Value struct {
	kind Kind
	m    []MapEntry
	s    string
	u    uint32
}

// MapEntry is one key/value pair of a map node, in container order.
type MapEntry struct {
	Key   string
	Value *Value
}

// Kind returns the variant of the value.
func (v *Value) Kind() Kind { return v.kind }

// Str returns the string payload and true when the value is a string.
func (v *Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Uint32 returns the integer payload and true when the value is a uint32.
func (v *Value) Uint32() (uint32, bool) {
	return v.u, v.kind == KindUint32
}

// Entries returns the map entries in container order, or nil for leaves.
func (v *Value) Entries() []MapEntry {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}

// Get returns the value stored under key in a map node, or nil.
func (v *Value) Get(key string) *Value {
	for i := range v.m {
		if v.m[i].Key == key {
			return v.m[i].Value
		}
	}
	return nil
}

// GetFold returns the first value whose key matches any of the given names,
// tried in order. Containers written by different launcher versions disagree
// on field casing, so extraction falls back across spellings.
func (v *Value) GetFold(keys ...string) *Value {
	for _, key := range keys {
		if val := v.Get(key); val != nil {
			return val
		}
	}
	return nil
}

// Parse decodes raw container bytes into a value tree. The input buffer is
// never mutated. Returns ErrMalformed (wrapped with the failing offset) on
// any unrecognized tag or truncated field.
func Parse(data []byte) (*Value, error) {
	d := &decoder{data: data}
	root, err := d.parseMap(true)
	if err != nil {
		return nil, err
	}
	return root, nil
}

type decoder struct {
	data []byte
	pos  int
}

// parseMap decodes entries until an end-of-map tag, or until the buffer is
// exhausted when top is set (the outermost map has no closing tag in files
// written by some launcher versions).
func (d *decoder) parseMap(top bool) (*Value, error) {
	var entries []MapEntry

	for d.pos < len(d.data) {
		tag := d.data[d.pos]
		d.pos++

		if tag == tagEnd {
			return &Value{kind: KindMap, m: entries}, nil
		}

		key, err := d.readCString()
		if err != nil {
			return nil, err
		}

		var value *Value
		switch tag {
		case tagMap:
			value, err = d.parseMap(false)
		case tagString:
			var s string
			s, err = d.readCString()
			value = &Value{kind: KindString, s: s}
		case tagUint32:
			var u uint32
			u, err = d.readUint32()
			value = &Value{kind: KindUint32, u: u}
		default:
			return nil, fmt.Errorf("%w: unrecognized tag 0x%02x at offset %d", ErrMalformed, tag, d.pos-1)
		}
		if err != nil {
			return nil, err
		}

		entries = append(entries, MapEntry{Key: key, Value: value})
	}

	if !top {
		return nil, fmt.Errorf("%w: unterminated map at offset %d", ErrMalformed, d.pos)
	}
	return &Value{kind: KindMap, m: entries}, nil
}

// readCString reads a null-terminated string and consumes the terminator.
func (d *decoder) readCString() (string, error) {
	start := d.pos
	for d.pos < len(d.data) {
		if d.data[d.pos] == 0 {
			s := string(d.data[start:d.pos])
			d.pos++
			return s, nil
		}
		d.pos++
	}
	return "", fmt.Errorf("%w: unterminated string at offset %d", ErrMalformed, start)
}

// readUint32 reads a 4-byte little-endian unsigned integer.
func (d *decoder) readUint32() (uint32, error) {
	if d.pos+4 > len(d.data) {
		return 0, fmt.Errorf("%w: truncated integer at offset %d", ErrMalformed, d.pos)
	}
	u := binary.LittleEndian.Uint32(d.data[d.pos : d.pos+4])
	d.pos += 4
	return u, nil
}
