// Package fragment builds the generated Nginx snippets substituted into the
// rocket-nginx template. All builders are pure functions of their input.
package fragment

import (
	"fmt"
	"strings"
)

// DefaultIncludeRoot is the directory include directives point into.
const DefaultIncludeRoot = "conf.d"

const noQueryStrings = "# None.\n"

// QueryStringIgnore returns the block that strips the named query string keys
// from $rocket_args before the cache key is computed.
func QueryStringIgnore(names []string) string {
	if len(names) == 0 {
		return noQueryStrings
	}

	var b strings.Builder
	b.WriteString("set $rocket_args $args;\n")
	for _, name := range names {
		fmt.Fprintf(&b, "if ($rocket_args ~ (.*)(?:&|^)%s=[^&]*(.*)) { set $rocket_args $1$2; }\n", name)
	}

	b.WriteString("\n")
	b.WriteString("# Remove & at the beginning (if needed)\n")
	b.WriteString("if ($rocket_args ~ ^&(.*)) { set $rocket_args $1;  }\n\n")
	b.WriteString("set $rocket_args $is_args$rocket_args;\n")
	b.WriteString("\n")
	b.WriteString("# Do not count arguments if part of caching arguments\n")
	b.WriteString("if ($rocket_args ~ ^\\?$) {\n")
	b.WriteString("\tset $rocket_args \"\";\n")
	b.WriteString("\tset $rocket_is_args \"\";\n")
	b.WriteString("}\n")

	return b.String()
}

// Include returns the include statement for one header section of a profile.
func Include(root, profileName, section string) string {
	return fmt.Sprintf("include %s/%s/%s.*.conf;", root, profileName, section)
}

// CookieNames joins cookie names into a regex alternation.
func CookieNames(names []string) string {
	return strings.Join(names, "|")
}
