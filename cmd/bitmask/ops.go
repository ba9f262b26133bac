package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/bitmask"
	"github.com/hupe1980/bitmask/codec"
	"github.com/hupe1980/bitmask/internal/logging"
)

// maskOps runs mask operations on encoded records for one word width.
type maskOps interface {
	render(ctx context.Context, rec []byte) (string, error)
	parse(ctx context.Context, bits string) ([]byte, error)
	count(ctx context.Context, rec []byte) (stats, error)
	get(ctx context.Context, rec []byte, i uint) (bool, error)
	set(ctx context.Context, rec []byte, i uint, v bool) ([]byte, error)
	combine(ctx context.Context, op string, a, b []byte) ([]byte, error)
	not(ctx context.Context, rec []byte) ([]byte, error)
	shift(ctx context.Context, op string, n uint, rec []byte) ([]byte, error)
}

type stats struct {
	Length        uint
	Ones          int
	TrailingZeros uint
}

// newOps selects the word type for width.
func newOps(width int, c codec.Codec, log *logging.Logger) (maskOps, error) {
	log = log.WithWidth(width).WithCodec(c.Name())
	switch width {
	case 8:
		return &typedOps[bitmask.Word8]{codec: c, log: log}, nil
	case 16:
		return &typedOps[bitmask.Word16]{codec: c, log: log}, nil
	case 32:
		return &typedOps[bitmask.Word32]{codec: c, log: log}, nil
	case 64:
		return &typedOps[bitmask.Word64]{codec: c, log: log}, nil
	case 128:
		return &typedOps[bitmask.Word128]{codec: c, log: log}, nil
	case 256:
		return &typedOps[bitmask.Word256]{codec: c, log: log}, nil
	default:
		return nil, fmt.Errorf("unsupported word width %d", width)
	}
}

type typedOps[W bitmask.Word[W]] struct {
	codec codec.Codec
	log   *logging.Logger
}

func (o *typedOps[W]) decode(ctx context.Context, rec []byte) (*bitmask.BitMask[W], error) {
	m, err := bitmask.Unmarshal[W](o.codec, rec)
	if err != nil {
		o.log.LogDecode(ctx, 0, err)
		return nil, err
	}
	o.log.LogDecode(ctx, m.Len(), nil)
	return m, nil
}

func (o *typedOps[W]) encode(ctx context.Context, op string, m *bitmask.BitMask[W]) ([]byte, error) {
	data, err := bitmask.Marshal(o.codec, m)
	o.log.LogOp(ctx, op, m.Len(), err)
	return data, err
}

func (o *typedOps[W]) render(ctx context.Context, rec []byte) (string, error) {
	m, err := o.decode(ctx, rec)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func (o *typedOps[W]) parse(ctx context.Context, bits string) ([]byte, error) {
	m, err := bitmask.Parse[W](bits)
	if err != nil {
		o.log.LogOp(ctx, "parse", 0, err)
		return nil, err
	}
	return o.encode(ctx, "parse", m)
}

func (o *typedOps[W]) count(ctx context.Context, rec []byte) (stats, error) {
	m, err := o.decode(ctx, rec)
	if err != nil {
		return stats{}, err
	}
	return stats{
		Length:        m.Len(),
		Ones:          m.CountOnes(),
		TrailingZeros: m.TrailingZeros(),
	}, nil
}

func (o *typedOps[W]) get(ctx context.Context, rec []byte, i uint) (bool, error) {
	m, err := o.decode(ctx, rec)
	if err != nil {
		return false, err
	}
	v, err := m.Get(i)
	if err != nil {
		o.log.LogOp(ctx, "get", m.Len(), err)
	}
	return v, err
}

func (o *typedOps[W]) set(ctx context.Context, rec []byte, i uint, v bool) ([]byte, error) {
	m, err := o.decode(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := m.Set(i, v); err != nil {
		o.log.LogOp(ctx, "set", m.Len(), err)
		return nil, err
	}
	return o.encode(ctx, "set", m)
}

func (o *typedOps[W]) combine(ctx context.Context, op string, a, b []byte) ([]byte, error) {
	ma, err := o.decode(ctx, a)
	if err != nil {
		return nil, err
	}
	mb, err := o.decode(ctx, b)
	if err != nil {
		return nil, err
	}

	var res *bitmask.BitMask[W]
	switch op {
	case "and":
		res = bitmask.And(ma, mb)
	case "or":
		res = bitmask.Or(ma, mb)
	case "xor":
		res = bitmask.Xor(ma, mb)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	return o.encode(ctx, op, res)
}

func (o *typedOps[W]) not(ctx context.Context, rec []byte) ([]byte, error) {
	m, err := o.decode(ctx, rec)
	if err != nil {
		return nil, err
	}
	return o.encode(ctx, "not", m.Not())
}

func (o *typedOps[W]) shift(ctx context.Context, op string, n uint, rec []byte) ([]byte, error) {
	m, err := o.decode(ctx, rec)
	if err != nil {
		return nil, err
	}
	switch op {
	case "shl":
		m.ShiftLeft(n)
	case "shr":
		m.ShiftRight(n)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	return o.encode(ctx, op, m)
}
