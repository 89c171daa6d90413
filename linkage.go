package qbe

// Linkage is the visibility and section placement of a function or data
// definition. Empty Section means the default section for the definition
// kind; SecFlags is only emitted together with Section.
type Linkage struct {
	Exported    bool
	ThreadLocal bool
	Section     string
	SecFlags    string
}

// Private returns linkage local to the module.
func Private() Linkage {
	return Linkage{}
}

// PrivateWithSection returns private linkage placed in the section.
func PrivateWithSection(section string) Linkage {
	return Linkage{Section: section}
}

// Public returns linkage visible outside the module.
func Public() Linkage {
	return Linkage{Exported: true}
}

// PublicWithSection returns public linkage placed in the section.
func PublicWithSection(section string) Linkage {
	return Linkage{Exported: true, Section: section}
}

// ThreadLocal returns private linkage in thread-local storage.
func ThreadLocal() Linkage {
	return Linkage{ThreadLocal: true}
}

// ExportedThreadLocal returns public linkage in thread-local storage.
func ExportedThreadLocal() Linkage {
	return Linkage{Exported: true, ThreadLocal: true}
}

// ThreadLocalWithSection returns private thread-local linkage placed in
// the section.
func ThreadLocalWithSection(section string) Linkage {
	return Linkage{ThreadLocal: true, Section: section}
}
