package qbe

type (
	// BlockItem is a Statement or a Comment.
	BlockItem any

	// Comment renders as a #-prefixed line.
	Comment string

	// Statement is a single instruction, optionally assigned to a
	// temporary. A nil Target makes the statement volatile; a non-nil
	// Target must be a Temporary.
	Statement struct {
		Target Value
		Type   Type
		Instr  Instr
	}

	// Block is a labelled straight-line sequence of statements, by
	// convention terminated by a jump.
	Block struct {
		Label string
		Items []BlockItem
	}
)

// Volatile wraps an instruction executed for effect only.
func Volatile(i Instr) Statement {
	return Statement{Instr: i}
}

// Assign wraps an instruction whose result is assigned to temp.
func Assign(temp Temporary, ty Type, i Instr) Statement {
	return Statement{Target: temp, Type: ty, Instr: i}
}

// AddComment appends a comment line.
func (b *Block) AddComment(s string) {
	b.Items = append(b.Items, Comment(s))
}

// AddInstr appends a volatile statement.
func (b *Block) AddInstr(i Instr) {
	b.Items = append(b.Items, Volatile(i))
}

// AssignInstr appends an assignment of i to temp. The result type is
// collapsed to a base type for every instruction but Call, which may
// return an aggregate.
func (b *Block) AssignInstr(temp Temporary, ty Type, i Instr) {
	if _, ok := i.(Call); !ok {
		ty = ty.Base()
	}

	b.Items = append(b.Items, Assign(temp, ty, i))
}

// Jumps reports whether the block ends with a control flow transfer: a
// volatile Ret, Jmp or Jnz.
func (b *Block) Jumps() bool {
	if len(b.Items) == 0 {
		return false
	}

	s, ok := b.Items[len(b.Items)-1].(Statement)
	if !ok || s.Target != nil {
		return false
	}

	switch s.Instr.(type) {
	case Ret, Jmp, Jnz:
		return true
	}

	return false
}
