package utils

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/google/uuid"
)

// SaveStreamToFile writes r to dst atomically. The stream lands in a
// uniquely named sibling file first and is renamed over the target only
// after a clean close, so a failed download never leaves a truncated dst.
func SaveStreamToFile(dst string, r io.Reader) error {
	if err := os.MkdirAll(path.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create directory failed: %w", err)
	}
	tmp := fmt.Sprintf("%s.%s.part", dst, uuid.NewString())
	if err := writeStream(tmp, r); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp file to target failed: %w", err)
	}
	return nil
}

func writeStream(dst string, r io.Reader) error {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create tmp file failed: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("copy stream to tmp file failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close tmp file failed: %w", err)
	}
	return nil
}
