// Package populate fills a registry exactly once at startup.
//
// Population starts from one empty group per default group slug, lets every
// Filter rewrite that declarative Description, registers the resulting tree
// depth-first, and finally hands the registry to every Hook for direct
// registration. Declarative components are therefore always registered before
// imperative ones.
//
// A Description is usually read from the components section of a YAML file:
//
//	components:
//	  posts:
//	    label: Posts
//	    sets:
//	      writing:
//	        members:
//	          editor:
//	            sections:
//	              general:
//	                fields:
//	                  title:
//	                    label: Title
//
// At each level the key naming the next level's collection (sets, members,
// sections, fields) holds the children; every other key is an attribute.
package populate
