// Package treeprint renders a flat, slash-separated list of entry names
// (as produced by internal/store.Store.List) as an indented tree, the way
// `pm ls` displays the vault.
package treeprint
