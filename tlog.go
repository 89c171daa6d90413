package qbe

import (
	"tlog.app/go/tlog/tlwire"
)

// TlogAppend implementations keep IL atoms readable when callers embed
// them in tlog records.

func (v Temporary) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendFormat(b, "%%%s", string(v))
}

func (v Global) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendFormat(b, "$%s", string(v))
}

func (v Const) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendFormat(b, "%d", uint64(v))
}

func (c Cond) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendFormat(b, "%s", condNames[c])
}

func (t Type) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if t == (Type{}) {
		return e.AppendNil(b)
	}

	return e.AppendFormat(b, "%s", t.String())
}
