// Package words carries the embedded word list: the raw source consumed
// exactly once by the index builder. The blob is newline-delimited,
// lowercase ASCII, deduplicated, grouped by length by the packaging step.
package words

import _ "embed"

//go:embed words.txt
var raw []byte

// Raw returns the embedded word blob. Callers must treat it as read-only.
func Raw() []byte { return raw }
