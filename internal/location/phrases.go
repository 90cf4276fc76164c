package location

import "regexp"

// Work-arrangement phrase tables. The not-remote set is checked first and
// suppresses the remote/hybrid signals when it matches.
var (
	notRemotePattern = regexp.MustCompile(`(?i)\b(not remote|no remote|not work from home|no wfh|office only|required in office)\b`)
	remotePattern    = regexp.MustCompile(`(?i)\b(remote|work from home|wfh|anywhere)\b`)
	hybridPattern    = regexp.MustCompile(`(?i)\b(hybrid|flexible|some remote|part remote)\b`)

	relocationPattern = regexp.MustCompile(`(?i)open to relocation|willing to relocate|relocation|open to move|willing to move`)
)
