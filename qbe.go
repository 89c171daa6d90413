/*
Package qbe builds in-memory QBE intermediate language modules and renders
them to the textual IL accepted by the qbe compiler backend.

Process of code generation:

caller code -> build -> Module (type defs, functions, data defs) ->
render -> QBE IL text -> qbe -> assembly

Values and types compose into instructions, instructions are appended to
labelled blocks, blocks belong to functions, and functions, type definitions
and data definitions are registered with a Module. Rendering is pure: it
reads the model and produces text.

The package does not validate structural well-formedness beyond a few shape
invariants (assign targets, aggregate restrictions). Ill-formed models are
caller bugs and the renderer panics on them.
*/
package qbe
