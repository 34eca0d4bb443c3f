package core

import (
	"path/filepath"
	"strings"
)

// libraryNaming is the dynamic-library file name convention of a target OS.
type libraryNaming struct {
	prefix string
	suffix string
}

// namingForOS returns the dynamic-library naming convention for an OS.
func namingForOS(goos string) libraryNaming {
	switch goos {
	case "darwin":
		return libraryNaming{prefix: "lib", suffix: ".dylib"}
	case "windows":
		return libraryNaming{prefix: "", suffix: ".dll"}
	default:
		return libraryNaming{prefix: "lib", suffix: ".so"}
	}
}

// LibraryName returns the MaaCore library file name for an OS.
func LibraryName(goos string) string {
	naming := namingForOS(goos)
	return naming.prefix + "MaaCore" + naming.suffix
}

// NewExtractMapper returns the extraction policy routing archive entries
// into the library and resource trees.
//
// Walking the entry's path components in order: a "resource" component
// (when withResource is set) maps the remainder of the path under
// resourceDir; a component that looks like a dynamic library for the target
// OS maps its basename directly under libDir, flattening any nesting. The
// library suffix need not end the name, so versioned names like
// "libMaaCore.so.1" still match. Entries matching neither rule are dropped.
func NewExtractMapper(goos, libDir, resourceDir string, withResource bool) ExtractMapper {
	naming := namingForOS(goos)

	return func(entry string) (string, bool) {
		components := strings.Split(filepath.ToSlash(entry), "/")
		for i, component := range components {
			if component == "" || component == "." || component == ".." {
				continue
			}

			if withResource && component == "resource" {
				rest := components[i+1:]
				return filepath.Join(append([]string{resourceDir}, rest...)...), true
			}

			if strings.HasPrefix(component, naming.prefix) && strings.Contains(component, naming.suffix) {
				return filepath.Join(libDir, component), true
			}
		}
		return "", false
	}
}
