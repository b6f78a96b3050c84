package argparse

import "strings"

// DefaultPathSeparators strips both Unix and Windows style directories.
const DefaultPathSeparators = `/\`

// ExecName returns path with everything up to and including the last
// occurrence of any byte in separators removed.
//
//	ExecName("/usr/bin/tool", "/")          == "tool"
//	ExecName(`C:\tools\tool.exe`, `\`)      == "tool.exe"
func ExecName(path, separators string) string {
	if i := strings.LastIndexAny(path, separators); i >= 0 {
		return path[i+1:]
	}
	return path
}
