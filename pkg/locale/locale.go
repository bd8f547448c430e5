// Package locale resolves the locale the environment asks for and derives
// string orderings from it. Resolution follows POSIX precedence: LC_ALL
// first, then LANG, with the C locale as the default when neither is set.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Resolve returns the name of the ambient locale. A name the host cannot
// honor resolves to the empty string rather than an error, matching what
// callers want to report.
func Resolve() string {
	return resolve(os.Getenv("LC_ALL"), os.Getenv("LANG"))
}

func resolve(lcAll, lang string) string {
	name := lcAll
	if name == "" {
		name = lang
	}
	if name == "" {
		return "C"
	}
	if _, err := parse(name); err != nil {
		return ""
	}
	return name
}

// Compare is byte-wise lexicographic comparison. It ignores the active
// locale on purpose: callers that need collation use Comparer instead.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Comparer returns the string ordering the ambient locale implies. The C
// locale, an absent name, and names the host cannot honor all order by bytes.
func Comparer() func(a, b string) int {
	return comparerFor(Resolve())
}

func comparerFor(name string) func(a, b string) int {
	tag, err := parse(name)
	if err != nil || tag == language.Und {
		return Compare
	}
	return collate.New(tag).CompareString
}

// parse turns a POSIX locale name like de_DE.UTF-8@euro into a BCP-47 tag.
// The C and POSIX locales map to the undefined tag with no error.
func parse(name string) (language.Tag, error) {
	base := strings.SplitN(name, ".", 2)[0]
	base = strings.SplitN(base, "@", 2)[0]
	if base == "" || base == "C" || base == "POSIX" {
		return language.Und, nil
	}
	return language.Parse(strings.ReplaceAll(base, "_", "-"))
}
