package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SubmissionIDPrefix precedes the zero-padded sequence number of every id.
const SubmissionIDPrefix = "SUB-2024-"

// FormatSubmissionID renders sequence n as SUB-2024-NNN.
func FormatSubmissionID(n int) string {
	return fmt.Sprintf("%s%03d", SubmissionIDPrefix, n)
}

// SubmissionSeq extracts the numeric suffix of id.
func SubmissionSeq(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, SubmissionIDPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
