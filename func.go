package qbe

type (
	// Param is a function parameter.
	Param struct {
		Type Type
		Name Temporary
	}

	// Function is a linked sequence of blocks with linkage, a name,
	// parameters and an optional return type (the zero Type means the
	// function returns nothing).
	Function struct {
		Linkage Linkage
		Name    string
		In      []Param
		Ret     Type
		Blocks  []*Block
	}
)

// NewFunction returns an empty function.
func NewFunction(linkage Linkage, name string, in []Param, ret Type) *Function {
	return &Function{
		Linkage: linkage,
		Name:    name,
		In:      in,
		Ret:     ret,
	}
}

// AddBlock appends a new empty block with the label and returns it for
// filling.
func (f *Function) AddBlock(label string) *Block {
	blk := &Block{Label: label}
	f.Blocks = append(f.Blocks, blk)

	return blk
}

// AddInstr appends a volatile statement to the last block.
func (f *Function) AddInstr(i Instr) {
	f.lastBlock().AddInstr(i)
}

// AssignInstr appends an assignment to the last block. See
// Block.AssignInstr for the result type rule.
func (f *Function) AssignInstr(temp Temporary, ty Type, i Instr) {
	f.lastBlock().AssignInstr(temp, ty, i)
}

func (f *Function) lastBlock() *Block {
	if len(f.Blocks) == 0 {
		panic("function has no blocks")
	}

	return f.Blocks[len(f.Blocks)-1]
}
