package accessor

import "strings"

// SplitGenericName splits the name of an instantiated generic type, as
// reported by reflect.Type.Name, into its base name and type arguments.
//
//	SplitGenericName("Pair[string,int]") // "Pair", ["string" "int"], true
//	SplitGenericName("Data")             // "Data", nil, false
//
// Type arguments may themselves contain brackets, parentheses or braces
// (map[string]int, func(int, string), struct { A int }); only top level
// commas separate arguments.
func SplitGenericName(name string) (base string, args []string, ok bool) {
	i := strings.IndexByte(name, '[')
	if i <= 0 || !strings.HasSuffix(name, "]") {
		return name, nil, false
	}
	base = name[:i]
	inner := name[i+1 : len(name)-1]
	if strings.TrimSpace(inner) == "" {
		return name, nil, false
	}

	depth := 0
	start := 0
	for j := 0; j < len(inner); j++ {
		switch inner[j] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
			if depth < 0 {
				return name, nil, false
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:j]))
				start = j + 1
			}
		}
	}
	if depth != 0 {
		return name, nil, false
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return base, args, true
}
