package addressgen

import (
	"fmt"
	"regexp"
	"strings"
)

// Resolver produces the value for one placeholder occurrence. Each occurrence
// in a template gets its own call, never a cached result.
type Resolver func() string

var placeholderRe = regexp.MustCompile(`\{([a-z]+)\}`)

// interpolate substitutes every {token} occurrence in the template, left to
// right, invoking the bound resolver once per occurrence. A token with no
// bound resolver yields ErrUnknownToken wrapped with the token and template.
func interpolate(template string, resolvers map[string]Resolver) (string, error) {
	var unknown error
	out := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		if unknown != nil {
			return m
		}
		name := strings.Trim(m, "{}")
		resolve, ok := resolvers[name]
		if !ok {
			unknown = fmt.Errorf("%w: %q in template %q", ErrUnknownToken, name, template)
			return m
		}
		return resolve()
	})
	if unknown != nil {
		return "", unknown
	}
	return out, nil
}

// templateTokens lists the placeholder names a template references, in order
// of appearance, duplicates included.
func templateTokens(template string) []string {
	matches := placeholderRe.FindAllStringSubmatch(template, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}
