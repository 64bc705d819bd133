// Package collate supplies the locale-aware name comparator used to order
// listings, driven by the usual POSIX locale environment variables.
package collate

import (
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// New returns a three-way string comparator for the user's preferred
// locale. LC_ALL wins over LC_COLLATE wins over LANG; the C and POSIX
// locales, unset variables, and unparseable values all degrade to the
// locale-neutral root collation.
func New() func(a, b string) int {
	c := collate.New(detectTag())
	return c.CompareString
}

// NewFor returns a comparator for an explicit BCP 47 or POSIX locale name.
func NewFor(locale string) func(a, b string) int {
	c := collate.New(parseTag(locale))
	return c.CompareString
}

func detectTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return parseTag(v)
		}
	}
	return language.Und
}

func parseTag(locale string) language.Tag {
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und
	}
	if tag, err := language.Parse(normalize(locale)); err == nil {
		return tag
	}
	return language.Und
}

// normalize turns a POSIX locale name like en_US.UTF-8 into the BCP 47
// form en-US that language.Parse accepts: drop the codeset and modifier,
// swap underscores for hyphens.
func normalize(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
