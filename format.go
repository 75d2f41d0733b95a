package rdlog

import "strconv"

const (
	linePrefix    = "Log Level: "
	messagePrefix = "; Message: "
)

// AppendLine appends the canonical line for (level, msg) to dst:
//
//	Log Level: <code>; Message: <msg>\n
//
// msg is copied verbatim. No escaping, no truncation.
func AppendLine(dst []byte, level Level, msg string) []byte {
	dst = append(dst, linePrefix...)
	dst = strconv.AppendInt(dst, int64(level), 10)
	dst = append(dst, messagePrefix...)
	dst = append(dst, msg...)
	return append(dst, '\n')
}

// FormatLine returns AppendLine(nil, level, msg) as a string.
func FormatLine(level Level, msg string) string {
	return string(AppendLine(make([]byte, 0, len(linePrefix)+len(messagePrefix)+len(msg)+2), level, msg))
}
