// Package registry stores components in five insertion-ordered collections,
// one per component type, and resolves queries against them.
//
// Registration never aborts: an invalid component is skipped, reported as a
// developer warning on the registry logger and kept in Diagnostics.
//
// # Ancestry queries
//
// Components only know their direct parent. A query for "all fields under
// group X" is resolved level by level: the sets under X are found first, then
// the members under those sets, then the sections, and finally the fields
// whose parent is one of those sections.
//
//	fields, err := reg.Query(registry.Query{
//	    Type:        component.Field,
//	    ParentType:  component.Group,
//	    ParentSlugs: registry.Slugs{"posts"},
//	})
package registry
