// Package mob parses and serializes the typed section trees of .mob files.
//
// A section is an 8-byte header (id, total size including the header)
// followed by its payload. The root of a file has no header. Sections whose
// id resolves to format.SectionRecord hold consecutive child sections; every
// other type holds raw bytes interpreted through typed accessors:
//
//	tree, err := mob.Parse(data)
//	if err != nil {
//	    return err
//	}
//	objects, err := tree.Root().Find(mob.IDObjectDBFile)
//	...
//	name, err := node.AsString()
//
// Nodes live in an arena owned by their Tree; a Node is a small handle that is
// only valid together with that Tree. Children of a record are split on first
// structural access, so opening a large file only costs a copy of its bytes.
//
// Trees are not safe for concurrent use.
package mob
