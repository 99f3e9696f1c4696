package segtree

import (
	"math"
	"reflect"
)

// Number is the constraint for values stored in a segment tree.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// merger combines the aggregates of two sibling nodes into the aggregate
// of their parent.
//
// For aggregates s, t, u, add must be associative:
//
//	add(add(s, t), u) == add(s, add(t, u))
//
// and identity must be the neutral element:
//
//	add(identity(), s) == s == add(s, identity())
type merger[N Number] interface {
	identity() N
	add(left, right N) N
	name() string
}

type sumMerger[N Number] struct{}

func (sumMerger[N]) identity() N         { return 0 }
func (sumMerger[N]) add(left, right N) N { return left + right }
func (sumMerger[N]) name() string        { return "sum" }

// minMerger uses the largest value of N as its neutral element.
type minMerger[N Number] struct {
	top N
}

func (m minMerger[N]) identity() N { return m.top }

func (minMerger[N]) add(left, right N) N {
	if right < left {
		return right
	}
	return left
}

func (minMerger[N]) name() string { return "min" }

// Infinity returns the sentinel used by minimum trees for empty ranges:
// +Inf for floating point kinds and the largest representable value for
// integer kinds.
func Infinity[N Number]() N {
	var n N
	switch reflect.TypeOf(n).Kind() {
	case reflect.Float32, reflect.Float64:
		v := math.Inf(1)
		return N(v)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return N(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return N(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return N(v)
	case reflect.Int:
		v := int64(math.MaxInt)
		return N(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)
		return N(v)
	case reflect.Uint:
		v := uint64(math.MaxUint)
		return N(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return N(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return N(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return N(v)
	}
	v := uint64(math.MaxUint64)
	return N(v)
}
