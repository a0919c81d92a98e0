package service

import "strings"

// RenderTemplate substitutes {{name}} tokens by literal string
// replacement. Unknown tokens are left in place; this is deliberately not
// a template language.
func RenderTemplate(body string, vars map[string]string) string {
	out := body
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}
