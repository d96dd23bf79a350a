package scrambler

import _ "embed"

// Version is the release of the library and the scrambler binary.
//
//go:embed VERSION
var Version string
