package bus

import "strings"

// MatchRoutingKey reports whether key matches a topic pattern. Segments are separated
// by dots; "*" matches exactly one segment and "#" matches zero or more segments.
func MatchRoutingKey(pattern, key string) bool {
	return matchSegments(strings.Split(pattern, "."), strings.Split(key, "."))
}

func matchSegments(pattern, key []string) bool {
	for len(pattern) > 0 {
		head := pattern[0]
		if head == "#" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(key); i++ {
				if matchSegments(rest, key[i:]) {
					return true
				}
			}
			return false
		}
		if len(key) == 0 {
			return false
		}
		if head != "*" && head != key[0] {
			return false
		}
		pattern = pattern[1:]
		key = key[1:]
	}
	return len(key) == 0
}

// IsLiteral reports whether pattern contains no wildcard segments.
func IsLiteral(pattern string) bool {
	for _, seg := range strings.Split(pattern, ".") {
		if seg == "*" || seg == "#" {
			return false
		}
	}
	return true
}
