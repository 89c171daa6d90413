package qbe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstrString(t *testing.T) {
	a := Temporary("a")
	b := Temporary("b")

	cases := []struct {
		want string
		in   Instr
	}{
		{"add %a, %b", Add{L: a, R: b}},
		{"sub %a, %b", Sub{L: a, R: b}},
		{"mul %a, %b", Mul{L: a, R: b}},
		{"div %a, %b", Div{L: a, R: b}},
		{"rem %a, %b", Rem{L: a, R: b}},
		{"udiv %a, %b", Udiv{L: a, R: b}},
		{"urem %a, %b", Urem{L: a, R: b}},
		{"and %a, %b", And{L: a, R: b}},
		{"or %a, %b", Or{L: a, R: b}},
		{"sar %a, 4", Sar{L: a, R: Const(4)}},
		{"shr %a, 4", Shr{L: a, R: Const(4)}},
		{"shl %a, 4", Shl{L: a, R: Const(4)}},

		{"cod %a, %b", Cmp{Type: Double, Cond: O, L: a, R: b}},
		{"cuod %a, %b", Cmp{Type: Double, Cond: Uo, L: a, R: b}},
		{"cultw %a, %b", Cmp{Type: Word, Cond: Ult, L: a, R: b}},
		{"csltw %a, %b", Cmp{Type: Word, Cond: Slt, L: a, R: b}},
		{"ceql %a, %b", Cmp{Type: Long, Cond: Eq, L: a, R: b}},
		{"cnew %a, %b", Cmp{Type: Word, Cond: Ne, L: a, R: b}},
		{"csgew %a, %b", Cmp{Type: Word, Cond: Sge, L: a, R: b}},
		{"cugtl %a, %b", Cmp{Type: Long, Cond: Ugt, L: a, R: b}},

		{"copy %a", Copy{V: a}},
		{"cast %a", Cast{V: a}},

		{"extsw %a", Extsw{V: a}},
		{"extuw %a", Extuw{V: a}},
		{"extsh %a", Extsh{V: a}},
		{"extuh %a", Extuh{V: a}},
		{"extsb %a", Extsb{V: a}},
		{"extub %a", Extub{V: a}},
		{"exts %a", Exts{V: a}},
		{"truncd %a", Truncd{V: a}},
		{"stosi %a", Stosi{V: a}},
		{"stoui %a", Stoui{V: a}},
		{"dtosi %a", Dtosi{V: a}},
		{"dtoui %a", Dtoui{V: a}},
		{"swtof %a", Swtof{V: a}},
		{"uwtof %a", Uwtof{V: a}},
		{"sltof %a", Sltof{V: a}},
		{"ultof %a", Ultof{V: a}},

		{"ret", Ret{}},
		{"ret %a", Ret{V: a}},
		{"jmp @loop", Jmp{Label: "loop"}},
		{"jnz %a, @then, @else", Jnz{V: a, NonZero: "then", Zero: "else"}},
		{"hlt", Hlt{}},

		{"alloc4 32", Alloc4(32)},
		{"alloc8 64", Alloc8(64)},
		{"alloc16 128", Alloc16(128)},

		{"storew %a, %b", Store{Type: Word, Dest: b, Val: a}},
		{"stored %a, %b", Store{Type: Double, Dest: b, Val: a}},
		{"loadw %a", Load{Type: Word, Src: a}},
		{"loadsb %a", Load{Type: SignedByte, Src: a}},
		{"blit %a, %b, 16", Blit{Src: a, Dst: b, Len: 16}},

		{"vastart %a", Vastart{List: a}},
		{"vaargl %a", Vaarg{Type: Long, List: a}},

		{"phi @start %1, @loop $tmp", Phi{Label1: "start", V1: Temporary("1"), Label2: "loop", V2: Global("tmp")}},

		{`dbgfile "main.c"`, DbgFile("main.c")},
		{"dbgloc 42", DbgLoc{Line: 42}},
		{"dbgloc 42, 7", DbgLoc{Line: 42, Col: 7}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, string(AppendInstr(nil, tc.in)))
	}
}

func TestCallString(t *testing.T) {
	cases := []struct {
		want string
		in   Call
	}{
		{"call $exit()", NewCall("exit")},
		{
			"call $add(w 1, w 1)",
			NewCall("add",
				TypedValue{Type: Word, Value: Const(1)},
				TypedValue{Type: Word, Value: Const(1)},
			),
		},
		{
			"call $printf(l $fmt, ..., w 0)",
			NewVariadicCall("printf", 1,
				TypedValue{Type: Long, Value: Global("fmt")},
				TypedValue{Type: Word, Value: Const(0)},
			),
		},
		{
			"call $f(w 0, ...)",
			NewVariadicCall("f", 1,
				TypedValue{Type: Word, Value: Const(0)},
			),
		},
		{
			"call $f(..., w 0)",
			NewVariadicCall("f", 0,
				TypedValue{Type: Word, Value: Const(0)},
			),
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, string(AppendInstr(nil, tc.in)))
	}
}

func TestAggregateRestrictions(t *testing.T) {
	agg := Aggregate(&TypeDef{Name: "person"})

	a := Temporary("a")
	b := Temporary("b")

	assert.Panics(t, func() { AppendInstr(nil, Cmp{Type: agg, Cond: Eq, L: a, R: b}) })
	assert.Panics(t, func() { AppendInstr(nil, Store{Type: agg, Dest: b, Val: a}) })
	assert.Panics(t, func() { AppendInstr(nil, Load{Type: agg, Src: a}) })
}

func TestInstrUnknown(t *testing.T) {
	assert.Panics(t, func() { AppendInstr(nil, "not an instruction") })
}
