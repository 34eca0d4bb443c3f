package core

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractMapper decides the destination for one archive entry path.
// Returning false drops the entry.
type ExtractMapper func(entry string) (string, bool)

type archiveFormat int

const (
	formatZip archiveFormat = iota
	formatTarGz
)

// Archive is a downloaded release archive ready for extraction. The decode
// format is chosen by file extension at open time.
type Archive struct {
	path   string
	format archiveFormat
}

// OpenArchive wraps a downloaded file as an Archive. Returns
// ErrUnsupportedArchive for extensions other than .zip, .tar.gz and .tgz.
func OpenArchive(path string) (*Archive, error) {
	switch {
	case strings.HasSuffix(path, ".zip"):
		return &Archive{path: path, format: formatZip}, nil
	case strings.HasSuffix(path, ".tar.gz"), strings.HasSuffix(path, ".tgz"):
		return &Archive{path: path, format: formatTarGz}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchive, filepath.Base(path))
	}
}

// Extract iterates the archive entries in order and writes each entry the
// mapper accepts to its mapped destination, creating parent directories and
// overwriting existing files. A single unreadable entry aborts the whole
// extraction.
func (a *Archive) Extract(mapper ExtractMapper) error {
	switch a.format {
	case formatZip:
		return a.extractZip(mapper)
	default:
		return a.extractTarGz(mapper)
	}
}

func (a *Archive) extractZip(mapper ExtractMapper) error {
	reader, err := zip.OpenReader(a.path)
	if err != nil {
		return fmt.Errorf("extract %s: open zip: %w", filepath.Base(a.path), err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		dest, ok := mapper(file.Name)
		if !ok {
			continue
		}

		entry, err := file.Open()
		if err != nil {
			return fmt.Errorf("extract %s: open entry %s: %w", filepath.Base(a.path), file.Name, err)
		}

		err = writeEntry(dest, entry, file.Mode())
		entry.Close()
		if err != nil {
			return fmt.Errorf("extract %s: entry %s: %w", filepath.Base(a.path), file.Name, err)
		}
	}

	return nil
}

func (a *Archive) extractTarGz(mapper ExtractMapper) error {
	archiveFile, err := os.Open(a.path)
	if err != nil {
		return fmt.Errorf("extract %s: open archive: %w", filepath.Base(a.path), err)
	}
	defer archiveFile.Close()

	gzipReader, err := gzip.NewReader(archiveFile)
	if err != nil {
		return fmt.Errorf("extract %s: create gzip reader: %w", filepath.Base(a.path), err)
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("extract %s: read tar header: %w", filepath.Base(a.path), err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}

		dest, ok := mapper(header.Name)
		if !ok {
			continue
		}

		if err := writeEntry(dest, tarReader, os.FileMode(header.Mode)); err != nil {
			return fmt.Errorf("extract %s: entry %s: %w", filepath.Base(a.path), header.Name, err)
		}
	}

	return nil
}

// writeEntry writes one entry's bytes to dest, creating parent directories
// as needed and truncating any existing file.
func writeEntry(dest string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	if mode.Perm() == 0 {
		mode = 0o644
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("write file: %w", err)
	}

	return out.Close()
}
