package llm

import "strings"

// CleanJSONBlock recovers the JSON value from a model response. Models wrap
// JSON in markdown fences or pad it with conversational text even when the
// prompt forbids both; this strips any fence and then cuts the first
// balanced object or array out of the surrounding prose. Responses with no
// JSON value at all are returned unchanged so the caller's unmarshal error
// names the real payload.
func CleanJSONBlock(text string) string {
	text = stripFence(strings.TrimSpace(text))

	objAt := strings.IndexByte(text, '{')
	arrAt := strings.IndexByte(text, '[')
	switch {
	case objAt >= 0 && (arrAt < 0 || objAt < arrAt):
		if v := extractJSONObject(text[objAt:]); v != "" {
			return v
		}
	case arrAt >= 0:
		if v := extractJSONArray(text[arrAt:]); v != "" {
			return v
		}
	}
	return text
}

// stripFence removes a surrounding markdown code fence, tolerating a
// language tag on the opening line ("```json", "```javascript").
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")

	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		tag := text[:nl]
		if len(tag) < 20 && !strings.ContainsAny(tag, " {[") {
			text = text[nl+1:]
		}
	}
	if end := strings.LastIndex(text, "```"); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

// extractJSONObject returns the balanced JSON object s starts with, or "".
func extractJSONObject(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced JSON array s starts with, or "".
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

// extractBalanced walks s counting open/closing delimiters, skipping over
// string literals so braces inside values ("Hello {name}!") do not count.
func extractBalanced(s string, open, closing byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '"':
			inString = !inString
		case inString:
		case s[i] == open:
			depth++
		case s[i] == closing:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
