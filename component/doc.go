// Package component defines the five-level component hierarchy and the
// immutable component record stored by the registry.
//
// The hierarchy is fixed and strictly ordered, shallowest first:
//
//	group -> set -> member -> section -> field
//
// A component carries a slug, its type, the slug of its parent one level up
// (empty only for groups) and an opaque attribute bag that is never
// interpreted by this module.
package component
