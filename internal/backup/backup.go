// Package backup implements the collaborator contract around on-disk
// mutation: keep exactly one backup copy of the original file.
package backup

import (
	"fmt"
	"io"
	"os"
)

// DefaultSuffix is appended to the original path to derive the backup name.
const DefaultSuffix = ".bak"

// Ensure copies the file at path to path+suffix unless that backup already
// exists. It returns the backup path and whether a copy was created this
// call; repeat rectifications of the same file leave the first backup alone.
func Ensure(path, suffix string) (string, bool, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	backupPath := path + suffix

	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("checking backup %s: %w", backupPath, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", false, fmt.Errorf("stating %s: %w", path, err)
	}

	src, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode())
	if err != nil {
		return "", false, fmt.Errorf("creating backup %s: %w", backupPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", false, fmt.Errorf("writing backup %s: %w", backupPath, err)
	}
	return backupPath, true, nil
}
