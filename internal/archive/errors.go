package archive

import "errors"

// ErrNoConfig is returned when the source directory has no config.json,
// meaning the vault was never initialized.
var ErrNoConfig = errors.New("archive: vault is not initialized")
