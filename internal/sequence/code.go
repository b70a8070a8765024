// Package sequence generates the human-readable entity codes ("TAR007").
// The next code is derived from the highest code already persisted for the
// kind; there is no dedicated counter collection.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// NextCode computes the successor of lastCode for the given prefix.
//
// An empty lastCode (no entity of the kind exists yet) yields "<prefix>001".
// Otherwise the prefix is stripped and the remainder parsed as a base-10
// integer. A remainder that does not parse (non-numeric, empty, overflowing,
// or a code that never carried the prefix) counts as 0, so generation falls
// back toward "<prefix>001" instead of refusing the write. Numbers are
// zero-padded to three digits and simply grow wider past 999 ("TAR1000").
func NextCode(prefix, lastCode string) string {
	number := 0
	if lastCode != "" {
		raw := strings.ReplaceAll(lastCode, prefix, "")
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			number = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, number+1)
}
