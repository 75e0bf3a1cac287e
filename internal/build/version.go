package build

import "fmt"

var (
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s - %s)", ProjectVersion, GitRef, BuildDate)
