// meta/meta.go
package meta

import "time"

// MAX_ROUNDS defines the number of rounds in a session.
const MAX_ROUNDS = 5

// Delta ranges, inclusive, for the persona a prompt favors.
const (
	FAVORED_MIN = 2
	FAVORED_MAX = 4
)

// Delta ranges, inclusive, for the persona a prompt works against.
const (
	DISFAVORED_MIN = -2
	DISFAVORED_MAX = 1
)

// Delta range, inclusive, for both personas on an unpredictable prompt.
const (
	WILD_MIN = -3
	WILD_MAX = 3
)

// PACE is the base unit of the delays between output lines.
const PACE = time.Second
