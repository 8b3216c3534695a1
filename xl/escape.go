package xl

import "strings"

// textEscaper escapes element content. A carriage return is written as a
// character reference, since a literal one is folded into a line feed by
// XML line-end normalization.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
	"\r", "&#13;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
