// core/gff/attrs.go
package gff

import "strings"

// attrValue extracts the value of a key from a GFF3 attribute column, a
// semicolon-delimited list of key=value pairs. The match is on the exact key
// (so "geneName=" never satisfies "Name="), the first occurrence wins, and
// the value runs to the next ';' or the end of the column.
func attrValue(attributes, key string) (string, bool) {
	for _, kv := range strings.Split(attributes, ";") {
		kv = strings.TrimSpace(kv)
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			continue
		}
		if kv[:eq] == key {
			return kv[eq+1:], true
		}
	}
	return "", false
}
