package screenshoter

import (
	"fmt"
	"path/filepath"
	"strings"
)

type destinationPattern struct {
	// Dir is used verbatim, including the trailing separator.
	Dir      string
	FileName string
	HasVerb  bool
}

func parseDestinationPattern(pattern string) (destinationPattern, error) {
	idx := strings.LastIndexAny(pattern, "/"+string(filepath.Separator))
	result := destinationPattern{
		Dir:      pattern[:idx+1],
		FileName: pattern[idx+1:],
	}
	if result.FileName == "" {
		return destinationPattern{}, fmt.Errorf("no file name")
	}

	verbs := 0
	name := result.FileName
	for i := 0; i < len(name); i++ {
		if name[i] != '%' {
			continue
		}
		i++
		if i < len(name) && name[i] == '%' {
			continue
		}
		for i < len(name) && strings.IndexByte("-+# .0123456789", name[i]) >= 0 {
			i++
		}
		if i >= len(name) {
			return destinationPattern{}, fmt.Errorf("incomplete formatting verb at the end of '%s'", name)
		}
		if strings.IndexByte("dboxX", name[i]) < 0 {
			return destinationPattern{}, fmt.Errorf("unsupported verb '%%%c', expected an integer verb like '%%d'", name[i])
		}
		verbs++
	}
	if verbs > 1 {
		return destinationPattern{}, fmt.Errorf("expected at most one formatting verb, got %d", verbs)
	}
	result.HasVerb = verbs == 1
	return result, nil
}
