package core

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// GenerateDiff generates a line diff between current and desired content,
// rendered git-style with +/-/space prefixes. Used by `warden status --diff`
// to show drift between the last satisfied set and the manifest.
func GenerateDiff(current, desired string) string {
	dmp := diffmatchpatch.New()

	a, b, c := dmp.DiffLinesToChars(current, desired)
	diffs := dmp.DiffMain(a, b, false)
	result := dmp.DiffCharsToLines(diffs, c)

	var buff bytes.Buffer
	for _, diff := range result {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffEqual:
			prefix = "  "
		}
		for _, line := range strings.Split(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buff.WriteString(prefix + line + "\n")
		}
	}
	return buff.String()
}
