package utils

import (
	"regexp"
	"strings"
)

const maxStringLength = 1000

var (
	scriptRe  = regexp.MustCompile(`(?is)<\s*script[^>]*>.*?<\s*/\s*script\s*>`)
	iframeRe  = regexp.MustCompile(`(?is)<\s*iframe[^>]*>.*?<\s*/\s*iframe\s*>|<\s*iframe[^>]*/?\s*>`)
	handlerRe = regexp.MustCompile(`(?i)\son\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
)

// SanitizeString trims, strips angle brackets, and truncates. Applied to
// every string value of an incoming payload. Truncation counts runes, not
// bytes, and trims again afterwards so the cut never leaves trailing
// whitespace or a split multi-byte character behind.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	if runes := []rune(s); len(runes) > maxStringLength {
		s = strings.TrimSpace(string(runes[:maxStringLength]))
	}
	return s
}

// SanitizeContent keeps markup but strips script/iframe tags and inline event
// handlers. Best-effort only; not a substitute for a real HTML sanitizer.
func SanitizeContent(s string) string {
	s = strings.TrimSpace(s)
	s = scriptRe.ReplaceAllString(s, "")
	s = iframeRe.ReplaceAllString(s, "")
	s = handlerRe.ReplaceAllString(s, "")
	return s
}

// SanitizeMap walks a decoded JSON object and sanitizes every string value in
// place, recursing into nested objects and arrays. Fields named "content"
// keep their markup but go through SanitizeContent instead. Idempotent.
func SanitizeMap(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		m[k] = sanitizeValue(k, v)
	}
	return m
}

func sanitizeValue(key string, v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		if key == "content" {
			return SanitizeContent(val)
		}
		return SanitizeString(val)
	case map[string]interface{}:
		return SanitizeMap(val)
	case []interface{}:
		for i, item := range val {
			val[i] = sanitizeValue(key, item)
		}
		return val
	default:
		return v
	}
}
