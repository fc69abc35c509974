// Package store persists encrypted entries under a filesystem root:
// config.json at the root and one envelope file per entry inside a
// store/ subdirectory, addressed by a slash-separated name.
package store
