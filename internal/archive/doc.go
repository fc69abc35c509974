// Package archive packages a vault's config and entry store into a single
// zip or tar.gz file for `pm backup create`, alongside a manifest recording the
// backup's identity and contents.
package archive
