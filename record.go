package bitmask

import (
	"encoding/base64"
	"fmt"

	"github.com/hupe1980/bitmask/codec"
	"github.com/hupe1980/bitmask/internal/conv"
)

// Record is the transport form of a BitMask.
//
// Mask holds the base64 (standard, padded) encoding of every storage word in
// big-endian byte order, lowest word first. Length is the logical bit count.
type Record struct {
	Mask   string `json:"mask"`
	Length uint64 `json:"length"`
}

// ToRecord encodes the mask into its transport record.
func (m *BitMask[W]) ToRecord() Record {
	buf := make([]byte, 0, len(m.words)*int(width[W]()/8))
	for _, w := range m.words {
		buf = w.AppendBytes(buf)
	}
	return Record{
		Mask:   base64.StdEncoding.EncodeToString(buf),
		Length: uint64(m.length),
	}
}

// FromRecord decodes a transport record into a mask of W words.
//
// The decoded bytes must split into whole words, the word count must match
// Length, and no bit at or beyond Length may be set. On failure a
// *DecodeError is returned and no mask is built.
func FromRecord[W Word[W]](r Record) (*BitMask[W], error) {
	raw, err := base64.StdEncoding.DecodeString(r.Mask)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base64", cause: err}
	}

	wd := width[W]()
	size := int(wd / 8)
	if len(raw)%size != 0 {
		return nil, &DecodeError{Reason: fmt.Sprintf("%d bytes do not split into %d-byte words", len(raw), size)}
	}

	length, err := conv.Uint64ToUint(r.Length)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid length", cause: err}
	}
	if want := length/wd + 1; uint(len(raw)/size) != want {
		return nil, &DecodeError{Reason: fmt.Sprintf("%d words cannot hold length %d, want %d", len(raw)/size, length, want)}
	}

	var zero W
	words := make([]W, 0, len(raw)/size)
	for off := 0; off < len(raw); off += size {
		w, err := zero.FromBytes(raw[off : off+size])
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	m := &BitMask[W]{words: words, length: length}
	if !m.tailClear() {
		return nil, &DecodeError{Reason: fmt.Sprintf("bits set beyond length %d", length)}
	}
	return m, nil
}

// MarshalJSON implements json.Marshaler using the default codec.
func (m *BitMask[W]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(m.ToRecord())
}

// UnmarshalJSON implements json.Unmarshaler using the default codec.
func (m *BitMask[W]) UnmarshalJSON(data []byte) error {
	var r Record
	if err := codec.Default.Unmarshal(data, &r); err != nil {
		return &DecodeError{Reason: "invalid record", cause: err}
	}
	res, err := FromRecord[W](r)
	if err != nil {
		return err
	}
	*m = *res
	return nil
}

// Marshal encodes m as a record with c, or codec.Default if c is nil.
func Marshal[W Word[W]](c codec.Codec, m *BitMask[W]) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(m.ToRecord())
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return data, nil
}

// Unmarshal decodes a record encoded with c, or codec.Default if c is nil.
func Unmarshal[W Word[W]](c codec.Codec, data []byte) (*BitMask[W], error) {
	if c == nil {
		c = codec.Default
	}
	var r Record
	if err := c.Unmarshal(data, &r); err != nil {
		return nil, &DecodeError{Reason: "codec " + c.Name(), cause: err}
	}
	return FromRecord[W](r)
}
