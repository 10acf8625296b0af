package domain

import "strings"

// ValueOr returns *p when p is set, otherwise fallback.
func ValueOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

// CoalesceStr returns the first value that is non-empty after trimming.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
