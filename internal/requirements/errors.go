package requirements

import "errors"

// ErrManifestNotFound marks a manifest path that does not exist on disk.
// It is the only loader error NewFromFile tolerates: the manager is still
// constructed, with an empty requirement set, and the condition is exposed
// through Manager.ManifestMissing. Every other loader error propagates.
var ErrManifestNotFound = errors.New("requirements manifest not found")
