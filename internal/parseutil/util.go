package parseutil

import "strings"

// ParseRepoRef parses a combined repository reference into its namespace and
// repository name, as SCM-Manager addresses repositories.
//
// Example:
//    Input:
//           ref="build/my-app"
//   Output:
//          namespace="build"
//               name="my-app"
//
// A reference without a slash is treated as a bare namespace.
func ParseRepoRef(ref string) (namespace, name string) {
	namespace, name = splitStringOnceRune(ref, '/')
	return
}

func splitStringOnceRune(value string, delimiter rune) (a, b string) {
	const notFoundIndex = -1
	delimiterIndex := strings.IndexRune(value, delimiter)
	if delimiterIndex == notFoundIndex {
		a = value
		b = ""
		return
	}
	a = value[:delimiterIndex]
	b = value[delimiterIndex+1:] // +1 to skip the delimiter
	return
}
