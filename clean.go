package unpacker

// Package file clean.go removes known tool generated junk after a
// successful extraction and relocation.

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// clean attempts removal of the macOS resource fork shadow directory
// and the dot-prefixed shadow file named after the original basename.
// Failures are recorded on the logger and never escalate, this step
// is advisory and not part of the Unpack contract.
func (u *Unpacker) clean(final string) {
	junk := []string{
		filepath.Join(final, macosxDir),
		filepath.Join(final, shadowPrefix+u.desc.base),
	}
	for _, name := range junk {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := os.RemoveAll(name); err != nil {
			u.logger().Warn("cleanup failed",
				zap.String("name", name), zap.Error(err))
			continue
		}
		u.logger().Debug("cleaned junk artifact", zap.String("name", name))
	}
}
