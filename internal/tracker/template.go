package tracker

import (
	"fmt"
	"strings"
)

// MissingVariableError reports a placeholder in a template that has no
// corresponding entry in the variable map.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing template variable: %q", e.Name)
}

// RenderTemplate substitutes {name} placeholders in content using vars.
// A single linear pass: no escaping, no nested or recursive substitution.
// A referenced variable absent from vars yields a *MissingVariableError;
// entries in vars that content never references are ignored. A '{' with no
// matching '}' (or with another '{' before it) is treated as literal text.
func RenderTemplate(content string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(content))

	for i := 0; i < len(content); {
		c := content[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(content[i+1:], '}')
		if end < 0 {
			// No closing brace anywhere ahead; the rest is literal.
			b.WriteString(content[i:])
			break
		}

		name := content[i+1 : i+1+end]
		if name == "" || strings.ContainsAny(name, "{ \t\n") {
			// Not a placeholder token; emit the brace and move on.
			b.WriteByte('{')
			i++
			continue
		}

		value, ok := vars[name]
		if !ok {
			return "", &MissingVariableError{Name: name}
		}
		b.WriteString(value)
		i += end + 2 // past the closing brace
	}

	return b.String(), nil
}
