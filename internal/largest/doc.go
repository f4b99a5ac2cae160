// Package largest finds the biggest files in a directory tree.
//
// It walks the tree with a depth limit and a wildcard filename mask,
// keeps the top N files by size in a bounded min-heap, and tolerates
// unreadable entries by counting them instead of failing the walk.
package largest
