package common

import "strings"

// UnknownStr is rendered for enum values outside their declared range.
const UnknownStr = "unknown"

// PathSeparator separates the segments of a dotted field path.
const PathSeparator = "."

// JoinPath joins path segments with PathSeparator.
func JoinPath(segments ...string) string {
	return strings.Join(segments, PathSeparator)
}
