package qbe

type (
	// DataItem is a single initializer in a data definition: Symbol, Str,
	// Const or ZeroInit.
	DataItem any

	// Str is a string literal. It renders quoted but otherwise verbatim;
	// escaping is the caller's responsibility.
	Str string

	// Symbol references another global, with an optional byte offset
	// (0 renders no offset).
	Symbol struct {
		Name   string
		Offset uint64
	}

	// ZeroInit is n bytes of zero-initialized data.
	ZeroInit uint64

	// DataField is one typed initializer of a data definition.
	DataField struct {
		Type Type
		Item DataItem
	}

	// DataDef is a global data definition. An Align of 0 means natural
	// alignment.
	DataDef struct {
		Linkage Linkage
		Name    string
		Align   uint64
		Items   []DataField
	}
)

// NewDataDef returns a data definition. align of 0 means natural
// alignment.
func NewDataDef(linkage Linkage, name string, align uint64, items []DataField) *DataDef {
	return &DataDef{
		Linkage: linkage,
		Name:    name,
		Align:   align,
		Items:   items,
	}
}
