// Package bim turns a decoded building-model geometry stream into a set
// of uniquely identified components. The low-level byte decoding is done
// by a Runtime collaborator; this package owns the per-entity extraction:
// scanning the per-vertex identifier attribute, building one geometry
// subset per entity, resolving names and categories, and absorbing
// per-entity metadata failures without aborting the load.
package bim
