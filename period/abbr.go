package period

import "strings"

// formatAbbr implements the zone-line abbreviation template rules: a
// std/dst pair separated by a slash, a %s placeholder for the rule's
// letter, or a literal template with neither.
func formatAbbr(template string, localOffset int, letter string) string {
	if i := strings.IndexByte(template, '/'); i >= 0 {
		std, dst := template[:i], template[i+1:]
		if localOffset == 0 {
			return std
		}
		return dst
	}
	if strings.Contains(template, "%s") {
		return strings.ReplaceAll(template, "%s", letter)
	}
	return template
}
