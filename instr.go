package qbe

type (
	// Instr is a single QBE instruction: one of the types below.
	Instr any

	// Cond is a comparison kind. The result of a comparison is 1 when the
	// condition holds and 0 otherwise.
	Cond int

	// TypedValue is a value paired with its type, as passed to calls.
	TypedValue struct {
		Type  Type
		Value Value
	}
)

// Comparison kinds: signed and unsigned integer orderings, equality on any
// type, and the float NaN tests (O holds when neither operand is NaN, Uo
// when at least one is).
const (
	Slt Cond = iota
	Sle
	Sgt
	Sge

	Eq
	Ne

	O
	Uo

	Ult
	Ule
	Ugt
	Uge
)

// NoVariadic marks a Call without a variadic argument list.
const NoVariadic = -1

type (
	Add  struct{ L, R Value }
	Sub  struct{ L, R Value }
	Mul  struct{ L, R Value }
	Div  struct{ L, R Value }
	Rem  struct{ L, R Value }
	Udiv struct{ L, R Value }
	Urem struct{ L, R Value }
	And  struct{ L, R Value }
	Or   struct{ L, R Value }
	Sar  struct{ L, R Value }
	Shr  struct{ L, R Value }
	Shl  struct{ L, R Value }

	// Cmp compares L and R. Type must not be an aggregate.
	Cmp struct {
		Type Type
		Cond Cond
		L, R Value
	}

	// Copy copies a value. Cast reinterprets bits between an integer and a
	// float of the same width.
	Copy struct{ V Value }
	Cast struct{ V Value }

	// Integer extensions.
	Extsw struct{ V Value }
	Extuw struct{ V Value }
	Extsh struct{ V Value }
	Extuh struct{ V Value }
	Extsb struct{ V Value }
	Extub struct{ V Value }

	// Float precision changes.
	Exts   struct{ V Value }
	Truncd struct{ V Value }

	// Float to integer and integer to float conversions.
	Stosi struct{ V Value }
	Stoui struct{ V Value }
	Dtosi struct{ V Value }
	Dtoui struct{ V Value }
	Swtof struct{ V Value }
	Uwtof struct{ V Value }
	Sltof struct{ V Value }
	Ultof struct{ V Value }

	// Ret returns from the function. A nil V renders a bare ret.
	Ret struct{ V Value }

	// Jmp jumps to Label unconditionally.
	Jmp struct{ Label string }

	// Jnz jumps to NonZero when V is nonzero and to Zero otherwise.
	Jnz struct {
		V       Value
		NonZero string
		Zero    string
	}

	// Hlt terminates the program with an error.
	Hlt struct{}

	// Call calls the global Name. Variadic is the position in Args at
	// which the ... marker is inserted, NoVariadic for plain calls.
	Call struct {
		Name     string
		Args     []TypedValue
		Variadic int
	}

	// Stack allocations. The suffix is the alignment, the payload the
	// size in bytes.
	Alloc4  uint32
	Alloc8  uint64
	Alloc16 uint64

	// Store writes Val to the memory Dest points to. Type must not be an
	// aggregate.
	Store struct {
		Type Type
		Dest Value
		Val  Value
	}

	// Load reads a value from the memory Src points to. Type must not be
	// an aggregate.
	Load struct {
		Type Type
		Src  Value
	}

	// Blit copies Len bytes from Src to Dst.
	Blit struct {
		Src, Dst Value
		Len      uint64
	}

	// Vastart initializes the variable argument list at List.
	Vastart struct{ List Value }

	// Vaarg fetches the next argument from the list at List.
	Vaarg struct {
		Type Type
		List Value
	}

	// Phi selects V1 when control came from Label1 and V2 when it came
	// from Label2.
	Phi struct {
		Label1 string
		V1     Value
		Label2 string
		V2     Value
	}

	// DbgFile sets the source file for subsequent DbgLoc instructions.
	DbgFile string

	// DbgLoc records a source position. A Col of 0 means no column.
	DbgLoc struct {
		Line uint64
		Col  uint64
	}
)

// NewCall returns a non-variadic call.
func NewCall(name string, args ...TypedValue) Call {
	return Call{Name: name, Args: args, Variadic: NoVariadic}
}

// NewVariadicCall returns a call with the ... marker inserted at position
// variadic of the argument list, 0 <= variadic <= len(args).
func NewVariadicCall(name string, variadic int, args ...TypedValue) Call {
	return Call{Name: name, Args: args, Variadic: variadic}
}
