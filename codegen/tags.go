package codegen

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagKey is the struct tag key read from member fields.
const TagKey = "accessor"

// ParseStructTag parses the content of an accessor tag or directive option
// list into a map. Entries are comma separated; each is either a flag
// (readonly) or a key=value pair (name=Alias). Values may be double quoted
// to carry commas or spaces. Keys and unquoted values are trimmed.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return result, nil
	}

	var key, value strings.Builder
	inValue := false
	inQuote := false
	quoted := false

	flush := func() error {
		k := strings.TrimSpace(key.String())
		v := value.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}
		if k == "" {
			if inValue || v != "" {
				return fmt.Errorf("missing key before %q", v)
			}
		} else {
			result[k] = v
		}
		key.Reset()
		value.Reset()
		inValue = false
		quoted = false
		return nil
	}

	for _, r := range tag {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
				continue
			}
			value.WriteRune(r)
		case !inValue && r == '=':
			inValue = true
		case r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		case inValue && r == '"' && strings.TrimSpace(value.String()) == "":
			value.Reset()
			inQuote = true
			quoted = true
		case inValue:
			value.WriteRune(r)
		default:
			key.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", tag)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return result, nil
}

// fieldTag returns the raw accessor tag of a field literal, as written
// between backquotes or double quotes.
func fieldTag(lit string) (string, bool) {
	if len(lit) < 2 {
		return "", false
	}
	var raw string
	if lit[0] == '`' {
		raw = strings.Trim(lit, "`")
	} else {
		var err error
		if raw, err = strconv.Unquote(lit); err != nil {
			return "", false
		}
	}
	return reflect.StructTag(raw).Lookup(TagKey)
}
