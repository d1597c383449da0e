package gen

import (
	"go/token"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	acronyms = make(map[string]struct{})
	rules    = ruleset()
)

// addAcronym adds a new acronym to the naming rules. Words matching an
// acronym are upper-cased in generated identifiers.
func addAcronym(word string) {
	acronyms[strings.ToUpper(word)] = struct{}{}
	rules.AddAcronym(word)
}

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Common initialisms from golint.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS",
		"ID", "IP", "JSON", "JWT", "QPS", "RAM", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM", "XML", "XSRF", "XSS",
	} {
		acronyms[strings.ToUpper(w)] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// snake converts the given struct or field name into a snake_case.
//
//	Username => username
//	FullName => full_name
//	HTTPCode => http_code
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	runes := []rune(s)
	for i, r := range runes {
		// Start a new word on an upper-case letter that follows a lower-case
		// one ("userInfo"), or that ends an acronym ("HTTPCode").
		if i > 0 && i < len(runes)-1 && unicode.IsUpper(r) {
			prev, next := runes[i-1], runes[i+1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				j != i-1 && unicode.IsLower(next) && unicode.IsLetter(prev) {
				j = i
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// pascal converts the given name into a PascalCase.
//
//	user_info => UserInfo
//	full_name => FullName
//	user_id   => UserID
//	full-admin => FullAdmin
func pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		if _, ok := acronyms[strings.ToUpper(w)]; ok {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = rules.Capitalize(w)
	}
	return strings.Join(words, "")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// titleCase capitalizes the first letter of a string.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fieldIdent returns the Go form of a wire field name. Field names that
// differ only in their word separation ("someField", "some_field") map to
// the same identifier.
func fieldIdent(name string) string {
	if ident := pascal(snake(name)); ident != "" {
		return ident
	}
	return titleCase(name)
}

// AccessorName returns the name of the generated accessor for a field of
// the given object type, e.g. Post.someField => PostSomeField.
func AccessorName(typeName, fieldName string) string {
	return markerName(typeName) + fieldIdent(fieldName)
}

// lockMethod returns the unexported method that makes a marker interface
// unique and unimplementable outside the generated package.
func lockMethod(typeName string) string {
	return "is" + markerName(typeName)
}

// markerName returns the exported Go identifier of the marker declared for
// an object type, e.g. post => Post. Names that cannot be exported by
// capitalizing them (_post) get an X prefix.
func markerName(typeName string) string {
	name := titleCase(typeName)
	if !token.IsExported(name) {
		name = "X" + name
	}
	return name
}

// typeParam returns the name of the selection type parameter of a generic
// accessor. It never equals one of the given identifiers, so the type
// parameter cannot shadow a marker used in the same signature.
func typeParam(used ...string) string {
	name := "R"
	for i := 0; slices.Contains(used, name); i++ {
		name = "R" + strconv.Itoa(i)
	}
	return name
}
