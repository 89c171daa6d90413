package qbe

// Module is a complete QBE IL file: type definitions, functions and data
// definitions. Insertion order within each collection is preserved and is
// the emission order.
type Module struct {
	Types     []*TypeDef
	Functions []*Function
	Data      []*DataDef
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{}
}

// AddType registers an aggregate type definition and returns it.
func (m *Module) AddType(td *TypeDef) *TypeDef {
	m.Types = append(m.Types, td)

	return td
}

// AddFunction registers a function and returns it.
func (m *Module) AddFunction(f *Function) *Function {
	m.Functions = append(m.Functions, f)

	return f
}

// AddData registers a data definition and returns it.
func (m *Module) AddData(d *DataDef) *DataDef {
	m.Data = append(m.Data, d)

	return d
}
