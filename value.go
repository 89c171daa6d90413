package qbe

type (
	// Value is an instruction operand: Temporary, Global or Const.
	Value any

	// Temporary is a function-scoped name. Renders %-prefixed.
	Temporary string

	// Global is a top-level symbol. Renders $-prefixed.
	Global string

	// Const is an integer literal. It doubles as the constant data item
	// in data definitions.
	Const uint64
)
