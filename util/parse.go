package util

import (
	"fmt"
	"strconv"
	"strings"
)

// IsPIDList reports whether s looks like a comma-separated PID list
// ("123" or "12,34"), as opposed to a process name pattern.
func IsPIDList(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != ',' {
			return false
		}
	}
	return true
}

// ParsePIDList parses a comma-separated PID list. Empty items are skipped,
// duplicates are dropped and order is preserved.
func ParsePIDList(s string) ([]int32, error) {
	var pids []int32
	seen := make(map[int32]bool)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		n, err := strconv.ParseInt(item, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PID %q", item)
		}
		pid := int32(n)
		if seen[pid] {
			continue
		}
		seen[pid] = true
		pids = append(pids, pid)
	}
	if len(pids) == 0 {
		return nil, fmt.Errorf("empty PID list %q", s)
	}
	return pids, nil
}
