package codegen

import (
	"fmt"

	"golang.org/x/tools/imports"
)

var formatOptions = &imports.Options{
	Comments:  true,
	TabIndent: true,
	TabWidth:  8,
}

// Format gofmts generated source and drops unused imports. filename is
// only used to resolve imports relative to the output location.
func Format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, formatOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated %s: %w\n%s", filename, err, src)
	}
	return out, nil
}
