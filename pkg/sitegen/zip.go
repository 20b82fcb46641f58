package sitegen

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ZipDir, üretilen site dizinini tek bir .zip arşivine paketler.
// Arşiv içindeki path'ler srcDir'e göre relative'dir ve / ile ayrılır,
// böylece arşiv her platformda aynı şekilde açılır.
func ZipDir(srcDir, zipPath string) error {
	srcDir = filepath.Clean(strings.TrimSpace(srcDir))
	zipPath = filepath.Clean(strings.TrimSpace(zipPath))
	if srcDir == "" || zipPath == "" {
		return fmt.Errorf("srcDir and zipPath are required")
	}

	info, err := os.Stat(srcDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("source is not a directory: %s", srcDir)
	}

	if err := os.MkdirAll(filepath.Dir(zipPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcDir {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			_, err := zw.Create(rel + "/")
			return err
		}

		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		w, err := zw.Create(rel)
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("failed to build archive: %w", err)
	}

	return zw.Close()
}
