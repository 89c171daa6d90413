package qbe

import (
	"fortio.org/safecast"
)

type (
	// Type is a QBE value type: one of the base or extended types, the
	// internal Zero type, or an aggregate backed by a TypeDef. The zero
	// Type means "no type" and is valid only where a type is optional.
	Type struct {
		kind kind
		def  *TypeDef
	}

	kind int

	// TypeDef is an aggregate type definition. An Align of 0 means the
	// alignment is computed from the fields.
	TypeDef struct {
		Name  string
		Align uint64
		Items []TypeItem
	}

	// TypeItem is a field of an aggregate, repeated Repeat times.
	TypeItem struct {
		Type   Type
		Repeat int
	}
)

const (
	kindNone kind = iota

	kindWord
	kindLong
	kindSingle
	kindDouble

	kindZero

	kindByte
	kindSignedByte
	kindUnsignedByte
	kindHalfword
	kindSignedHalfword
	kindUnsignedHalfword

	kindAggregate
)

var (
	// Base types.
	Word   = Type{kind: kindWord}   // 32-bit integer
	Long   = Type{kind: kindLong}   // 64-bit integer
	Single = Type{kind: kindSingle} // 32-bit float
	Double = Type{kind: kindDouble} // 64-bit float

	// Zero is only meaningful inside data definitions.
	Zero = Type{kind: kindZero}

	// Extended types.
	Byte             = Type{kind: kindByte}
	SignedByte       = Type{kind: kindSignedByte}
	UnsignedByte     = Type{kind: kindUnsignedByte}
	Halfword         = Type{kind: kindHalfword}
	SignedHalfword   = Type{kind: kindSignedHalfword}
	UnsignedHalfword = Type{kind: kindUnsignedHalfword}
)

// Aggregate returns the type referring to td. td is borrowed, not copied:
// it must outlive every Type mentioning it.
func Aggregate(td *TypeDef) Type {
	return Type{kind: kindAggregate, def: td}
}

// ABI returns the C ABI type: extended types collapse to Word, everything
// else is unchanged.
func (t Type) ABI() Type {
	switch t.kind {
	case kindByte, kindSignedByte, kindUnsignedByte,
		kindHalfword, kindSignedHalfword, kindUnsignedHalfword:
		return Word
	}

	return t
}

// Base returns the closest base type: extended types collapse to Word and
// aggregates to Long, as aggregates are passed by pointer.
func (t Type) Base() Type {
	switch t.kind {
	case kindByte, kindSignedByte, kindUnsignedByte,
		kindHalfword, kindSignedHalfword, kindUnsignedHalfword:
		return Word
	case kindAggregate:
		return Long
	}

	return t
}

// Size returns the byte size of values of the type. Aggregates get the
// C layout: each field is padded to its own alignment and the total is
// padded to the aggregate's alignment.
func (t Type) Size() uint64 {
	switch t.kind {
	case kindByte, kindSignedByte, kindUnsignedByte, kindZero:
		return 1
	case kindHalfword, kindSignedHalfword, kindUnsignedHalfword:
		return 2
	case kindWord, kindSingle:
		return 4
	case kindLong, kindDouble:
		return 8
	case kindAggregate:
	default:
		panic(t.kind)
	}

	var off uint64

	for _, it := range t.def.Items {
		n, err := safecast.Conv[uint64](it.Repeat)
		if err != nil {
			panic(err)
		}

		a := it.Type.Align()
		off += (a - off%a) % a
		off += n * it.Type.Size()
	}

	a := t.Align()
	off += (a - off%a) % a

	return off
}

// Align returns the byte alignment for values of the type. An explicit
// TypeDef alignment overrides the computed one, which is the maximum
// alignment of the members, or 1 when there are none. Every other type
// aligns to its own size.
func (t Type) Align() uint64 {
	if t.kind != kindAggregate {
		return t.Size()
	}

	if t.def.Align != 0 {
		return t.def.Align
	}

	a := uint64(1)

	for _, it := range t.def.Items {
		if f := it.Type.Align(); f > a {
			a = f
		}
	}

	return a
}
