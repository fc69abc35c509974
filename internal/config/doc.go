// Package config assembles pm's configuration from command-line flags,
// environment variables, and an optional JSON file, in that priority order,
// mirroring the merge discipline of the original keeper's config package
// but trimmed to the fields a local, single-user tool needs.
package config
