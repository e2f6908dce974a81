// Package validation holds small checks applied at the edges of the application.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// IsValidOutputFormat checks that format is one of allowed (case-insensitive).
func IsValidOutputFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(format, a) {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are '%s'", format, strings.Join(allowed, "', '"))
}

// IsValidFilePermissions checks that a file holding credentials grants no
// access to others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode.Perm()&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.Perm().String())
	}
	return nil
}

// CheckFilePermissions stats path and applies IsValidFilePermissions.
// A missing file is not an error.
func CheckFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	return IsValidFilePermissions(info.Mode())
}
