package qbe

import (
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
)

// Append-based renderers producing textual QBE IL. String methods on the
// model types wrap these. Rendering panics on ill-formed models: unknown
// sum variants, non-temporary assign targets, aggregate types where the
// grammar forbids them.

var condNames = [...]string{"slt", "sle", "sgt", "sge", "eq", "ne", "o", "uo", "ult", "ule", "ugt", "uge"}

func (c Cond) String() string {
	return condNames[c]
}

func (v Temporary) String() string { return "%" + string(v) }
func (v Global) String() string    { return "$" + string(v) }
func (v Const) String() string     { return strconv.FormatUint(uint64(v), 10) }

// AppendValue renders an operand.
func AppendValue(b []byte, v Value) []byte {
	switch v := v.(type) {
	case Temporary:
		b = append(b, '%')
		b = append(b, string(v)...)
	case Global:
		b = append(b, '$')
		b = append(b, string(v)...)
	case Const:
		b = strconv.AppendUint(b, uint64(v), 10)
	default:
		panic(v)
	}

	return b
}

func (t Type) String() string {
	return string(t.Append(nil))
}

// Append renders the type tag: the single letter for base, internal and
// extended types, :name for aggregates.
func (t Type) Append(b []byte) []byte {
	switch t.kind {
	case kindWord:
		return append(b, 'w')
	case kindLong:
		return append(b, 'l')
	case kindSingle:
		return append(b, 's')
	case kindDouble:
		return append(b, 'd')
	case kindZero:
		return append(b, 'z')
	case kindByte:
		return append(b, 'b')
	case kindSignedByte:
		return append(b, "sb"...)
	case kindUnsignedByte:
		return append(b, "ub"...)
	case kindHalfword:
		return append(b, 'h')
	case kindSignedHalfword:
		return append(b, "sh"...)
	case kindUnsignedHalfword:
		return append(b, "uh"...)
	case kindAggregate:
		b = append(b, ':')
		b = append(b, t.def.Name...)

		return b
	default:
		panic(t.kind)
	}
}

// AppendInstr renders a single instruction without any indentation or
// assignment prefix.
func AppendInstr(b []byte, x Instr) []byte {
	switch x := x.(type) {
	case Add:
		return appendBinary(b, "add", x.L, x.R)
	case Sub:
		return appendBinary(b, "sub", x.L, x.R)
	case Mul:
		return appendBinary(b, "mul", x.L, x.R)
	case Div:
		return appendBinary(b, "div", x.L, x.R)
	case Rem:
		return appendBinary(b, "rem", x.L, x.R)
	case Udiv:
		return appendBinary(b, "udiv", x.L, x.R)
	case Urem:
		return appendBinary(b, "urem", x.L, x.R)
	case And:
		return appendBinary(b, "and", x.L, x.R)
	case Or:
		return appendBinary(b, "or", x.L, x.R)
	case Sar:
		return appendBinary(b, "sar", x.L, x.R)
	case Shr:
		return appendBinary(b, "shr", x.L, x.R)
	case Shl:
		return appendBinary(b, "shl", x.L, x.R)
	case Cmp:
		if x.Type.kind == kindAggregate {
			panic("cannot compare aggregate types")
		}

		b = append(b, 'c')
		b = append(b, condNames[x.Cond]...)
		b = x.Type.Append(b)

		return appendOperands(b, x.L, x.R)
	case Copy:
		return appendUnary(b, "copy", x.V)
	case Cast:
		return appendUnary(b, "cast", x.V)
	case Extsw:
		return appendUnary(b, "extsw", x.V)
	case Extuw:
		return appendUnary(b, "extuw", x.V)
	case Extsh:
		return appendUnary(b, "extsh", x.V)
	case Extuh:
		return appendUnary(b, "extuh", x.V)
	case Extsb:
		return appendUnary(b, "extsb", x.V)
	case Extub:
		return appendUnary(b, "extub", x.V)
	case Exts:
		return appendUnary(b, "exts", x.V)
	case Truncd:
		return appendUnary(b, "truncd", x.V)
	case Stosi:
		return appendUnary(b, "stosi", x.V)
	case Stoui:
		return appendUnary(b, "stoui", x.V)
	case Dtosi:
		return appendUnary(b, "dtosi", x.V)
	case Dtoui:
		return appendUnary(b, "dtoui", x.V)
	case Swtof:
		return appendUnary(b, "swtof", x.V)
	case Uwtof:
		return appendUnary(b, "uwtof", x.V)
	case Sltof:
		return appendUnary(b, "sltof", x.V)
	case Ultof:
		return appendUnary(b, "ultof", x.V)
	case Ret:
		if x.V == nil {
			return append(b, "ret"...)
		}

		return appendUnary(b, "ret", x.V)
	case Jmp:
		return hfmt.Appendf(b, "jmp @%s", x.Label)
	case Jnz:
		b = append(b, "jnz "...)
		b = AppendValue(b, x.V)

		return hfmt.Appendf(b, ", @%s, @%s", x.NonZero, x.Zero)
	case Hlt:
		return append(b, "hlt"...)
	case Call:
		b = hfmt.Appendf(b, "call $%s(", x.Name)

		for i, a := range x.Args {
			if i != 0 {
				b = append(b, ", "...)
			}

			if i == x.Variadic {
				b = append(b, "..., "...)
			}

			b = a.Type.Append(b)
			b = append(b, ' ')
			b = AppendValue(b, a.Value)
		}

		if x.Variadic == len(x.Args) {
			if len(x.Args) != 0 {
				b = append(b, ", "...)
			}

			b = append(b, "..."...)
		}

		return append(b, ')')
	case Alloc4:
		return hfmt.Appendf(b, "alloc4 %d", uint32(x))
	case Alloc8:
		return hfmt.Appendf(b, "alloc8 %d", uint64(x))
	case Alloc16:
		return hfmt.Appendf(b, "alloc16 %d", uint64(x))
	case Store:
		if x.Type.kind == kindAggregate {
			panic("cannot store to an aggregate type")
		}

		b = append(b, "store"...)
		b = x.Type.Append(b)

		return appendOperands(b, x.Val, x.Dest)
	case Load:
		if x.Type.kind == kindAggregate {
			panic("cannot load an aggregate type")
		}

		b = append(b, "load"...)
		b = x.Type.Append(b)
		b = append(b, ' ')

		return AppendValue(b, x.Src)
	case Blit:
		b = append(b, "blit "...)
		b = AppendValue(b, x.Src)
		b = append(b, ", "...)
		b = AppendValue(b, x.Dst)

		return hfmt.Appendf(b, ", %d", x.Len)
	case Vastart:
		return appendUnary(b, "vastart", x.List)
	case Vaarg:
		b = append(b, "vaarg"...)
		b = x.Type.Append(b)
		b = append(b, ' ')

		return AppendValue(b, x.List)
	case Phi:
		b = hfmt.Appendf(b, "phi @%s ", x.Label1)
		b = AppendValue(b, x.V1)
		b = hfmt.Appendf(b, ", @%s ", x.Label2)

		return AppendValue(b, x.V2)
	case DbgFile:
		return hfmt.Appendf(b, "dbgfile \"%s\"", string(x))
	case DbgLoc:
		if x.Col == 0 {
			return hfmt.Appendf(b, "dbgloc %d", x.Line)
		}

		return hfmt.Appendf(b, "dbgloc %d, %d", x.Line, x.Col)
	default:
		panic(x)
	}
}

func appendBinary(b []byte, op string, l, r Value) []byte {
	b = append(b, op...)

	return appendOperands(b, l, r)
}

func appendOperands(b []byte, l, r Value) []byte {
	b = append(b, ' ')
	b = AppendValue(b, l)
	b = append(b, ", "...)

	return AppendValue(b, r)
}

func appendUnary(b []byte, op string, v Value) []byte {
	b = append(b, op...)
	b = append(b, ' ')

	return AppendValue(b, v)
}

func (s Statement) String() string {
	return string(s.Append(nil))
}

// Append renders the statement: `%target =t instr` for assignments, the
// bare instruction for volatile statements.
func (s Statement) Append(b []byte) []byte {
	if s.Target == nil {
		return AppendInstr(b, s.Instr)
	}

	if _, ok := s.Target.(Temporary); !ok {
		panic("assign target must be a temporary")
	}

	b = AppendValue(b, s.Target)
	b = append(b, " ="...)
	b = s.Type.Append(b)
	b = append(b, ' ')

	return AppendInstr(b, s.Instr)
}

func appendBlockItem(b []byte, x BlockItem) []byte {
	switch x := x.(type) {
	case Statement:
		return x.Append(b)
	case Comment:
		return hfmt.Appendf(b, "# %s", string(x))
	default:
		panic(x)
	}
}

func (c Comment) String() string {
	return "# " + string(c)
}

func (blk *Block) String() string {
	return string(blk.Append(nil))
}

// Append renders the @label line and each item on its own tab-indented
// line, without a trailing newline.
func (blk *Block) Append(b []byte) []byte {
	b = append(b, '@')
	b = append(b, blk.Label...)
	b = append(b, '\n')

	for i, it := range blk.Items {
		if i != 0 {
			b = append(b, '\n')
		}

		b = append(b, '\t')
		b = appendBlockItem(b, it)
	}

	return b
}

func (l Linkage) String() string {
	return string(l.Append(nil))
}

// Append renders the linkage prefix including its trailing space, or
// nothing for a default private linkage.
func (l Linkage) Append(b []byte) []byte {
	if l.Exported {
		b = append(b, "export "...)
	}

	if l.ThreadLocal {
		b = append(b, "thread "...)
	}

	if l.Section != "" {
		b = hfmt.Appendf(b, "section \"%s\"", l.Section)

		if l.SecFlags != "" {
			b = hfmt.Appendf(b, " \"%s\"", l.SecFlags)
		}

		b = append(b, ' ')
	}

	return b
}

func (f *Function) String() string {
	return string(f.Append(nil))
}

func (f *Function) Append(b []byte) []byte {
	b = f.Linkage.Append(b)
	b = append(b, "function"...)

	if f.Ret != (Type{}) {
		b = append(b, ' ')
		b = f.Ret.Append(b)
	}

	b = hfmt.Appendf(b, " $%s(", f.Name)

	for i, p := range f.In {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = p.Type.Append(b)
		b = append(b, ' ')
		b = AppendValue(b, p.Name)
	}

	b = append(b, ") {\n"...)

	for _, blk := range f.Blocks {
		b = blk.Append(b)
		b = append(b, '\n')
	}

	return append(b, '}')
}

func (td *TypeDef) String() string {
	return string(td.Append(nil))
}

func (td *TypeDef) Append(b []byte) []byte {
	b = hfmt.Appendf(b, "type :%s = ", td.Name)

	if td.Align != 0 {
		b = hfmt.Appendf(b, "align %d ", td.Align)
	}

	b = append(b, "{ "...)

	for i, it := range td.Items {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = it.Type.Append(b)

		if it.Repeat > 1 {
			b = hfmt.Appendf(b, " %d", it.Repeat)
		}
	}

	return append(b, " }"...)
}

func (v Symbol) String() string {
	return string(appendDataItem(nil, v))
}

func (v Str) String() string {
	return string(appendDataItem(nil, v))
}

func (v ZeroInit) String() string {
	return string(appendDataItem(nil, v))
}

func appendDataItem(b []byte, x DataItem) []byte {
	switch x := x.(type) {
	case Symbol:
		if x.Offset != 0 {
			return hfmt.Appendf(b, "$%s +%d", x.Name, x.Offset)
		}

		b = append(b, '$')

		return append(b, x.Name...)
	case Str:
		return hfmt.Appendf(b, "\"%s\"", string(x))
	case Const:
		return strconv.AppendUint(b, uint64(x), 10)
	case ZeroInit:
		return hfmt.Appendf(b, "z %d", uint64(x))
	default:
		panic(x)
	}
}

func (d *DataDef) String() string {
	return string(d.Append(nil))
}

func (d *DataDef) Append(b []byte) []byte {
	b = d.Linkage.Append(b)
	b = hfmt.Appendf(b, "data $%s = ", d.Name)

	if d.Align != 0 {
		b = hfmt.Appendf(b, "align %d ", d.Align)
	}

	b = append(b, "{ "...)

	for i, it := range d.Items {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = it.Type.Append(b)
		b = append(b, ' ')
		b = appendDataItem(b, it.Item)
	}

	return append(b, " }"...)
}

func (m *Module) String() string {
	return string(m.Append(nil))
}

// Append renders type definitions first, then functions, then data, each
// in insertion order, each definition on its own newline-terminated
// chunk.
func (m *Module) Append(b []byte) []byte {
	for _, td := range m.Types {
		b = td.Append(b)
		b = append(b, '\n')
	}

	for _, f := range m.Functions {
		b = f.Append(b)
		b = append(b, '\n')
	}

	for _, d := range m.Data {
		b = d.Append(b)
		b = append(b, '\n')
	}

	return b
}
