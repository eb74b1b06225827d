package fileutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pamctl/pamctl/internal/errors"
)

// CopyFile copies a file from src to dst, preserving the source file's
// permission bits. The destination is created with 0644 permissions
// initially, then updated to match the source.
func CopyFile(src, dst string) (fs.FileMode, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat source file")
	}
	mode := srcInfo.Mode()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, errors.Wrap(err, "creating destination file")
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return 0, errors.Wrap(err, "copying file")
	}

	if err := dstFile.Close(); err != nil {
		return 0, errors.Wrap(err, "closing destination file")
	}

	if err := os.Chmod(dst, mode); err != nil {
		return 0, errors.Wrap(err, "setting permissions")
	}

	return mode, nil
}

// CopyTree recursively copies the directory tree rooted at srcDir to
// dstDir, preserving file and directory permission bits. dstDir must not
// exist; it is created with the source directory's mode.
func CopyTree(srcDir, dstDir string) error {
	srcInfo, err := os.Stat(srcDir)
	if err != nil {
		return errors.Wrap(err, "stat source directory")
	}
	if !srcInfo.IsDir() {
		return errors.Newf("%s is not a directory", srcDir)
	}

	if err := os.MkdirAll(dstDir, srcInfo.Mode().Perm()); err != nil {
		return errors.Wrap(err, "creating destination directory")
	}

	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return errors.Wrap(err, "resolving relative path")
		}
		if rel == "." {
			return nil
		}

		target := filepath.Join(dstDir, rel)

		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return errors.Wrapf(err, "stat %s", path)
			}
			return errors.Wrapf(os.MkdirAll(target, info.Mode().Perm()), "creating %s", target)
		}

		if _, err := CopyFile(path, target); err != nil {
			return errors.Wrapf(err, "copying %s", rel)
		}
		return nil
	})
}
