package metrics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// IssueIDPrefix prefixes every generated issue identifier
const IssueIDPrefix = "ISSUE-"

// ParseIssueNumber returns the numeric suffix of an "ISSUE-<digits>" identifier.
// ok is false when the prefix is missing or the suffix is not entirely digits.
func ParseIssueNumber(id string) (int, bool) {
	suffix, found := strings.CutPrefix(id, IssueIDPrefix)
	if !found || suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxIssueNumber returns the largest numeric suffix among ids, or 0 when none parse
func MaxIssueNumber(ids []string) int {
	highest := 0
	for _, id := range ids {
		if n, ok := ParseIssueNumber(id); ok && n > highest {
			highest = n
		}
	}
	return highest
}

// FormatIssueID formats n as "ISSUE-%03d"
func FormatIssueID(n int) types.IssueID {
	return types.IssueID(fmt.Sprintf("%s%03d", IssueIDPrefix, n))
}

// NextIssueID returns the identifier following the highest existing one, or ISSUE-001.
// It reads a point-in-time list, so two callers working from the same list get the same id.
func NextIssueID(existing []string) types.IssueID {
	return FormatIssueID(MaxIssueNumber(existing) + 1)
}
