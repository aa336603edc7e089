// Package notifier sends email and WhatsApp notifications rendered
// from substitution templates. Email failures are reported to the
// caller; WhatsApp failures are logged and never block.
package notifier

import "regexp"

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Render substitutes {{key}} placeholders with values from vars.
// Substitution is literal with no escaping; placeholders with no
// matching key are stripped rather than left intact.
func Render(tpl string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		return vars[key]
	})
}
