package actionitem

import (
	"regexp"
	"strings"
)

// pairRe matches a schema key with a plain string value anywhere in the text,
// whether or not the surrounding JSON is valid.
var pairRe = regexp.MustCompile(`"(` + KeyTask + `|` + KeyOwner + `|` + KeyDueDate + `)"` + ws + `*:` + ws + `*"([^"]*)"`)

// salvageTriplets is the last-resort strategy. It groups key/value pairs in
// order of appearance and emits a record each time all three keys have been
// seen. A key repeated before its group completes overwrites the earlier
// value. A trailing incomplete group is dropped.
func salvageTriplets(text string) (Candidate, bool) {
	matches := pairRe.FindAllStringSubmatch(RemoveTrailingCommas(text), -1)
	if len(matches) == 0 {
		return Candidate{}, false
	}

	var records []map[string]string
	current := make(map[string]string, len(SchemaKeys))
	for _, m := range matches {
		current[m[1]] = m[2]
		if len(current) < len(SchemaKeys) {
			continue
		}
		records = append(records, map[string]string{
			KeyTask:    strings.TrimSpace(current[KeyTask]),
			KeyOwner:   strings.TrimSpace(current[KeyOwner]),
			KeyDueDate: strings.TrimSpace(current[KeyDueDate]),
		})
		current = make(map[string]string, len(SchemaKeys))
	}

	if len(records) == 0 {
		return Candidate{}, false
	}
	return Candidate{Kind: KindSalvage, Salvaged: records}, true
}
