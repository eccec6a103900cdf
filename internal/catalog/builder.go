package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"hara/internal/logging"
	"hara/internal/metadata"
)

var (
	// ErrMetaRootMissing reports a metadata root that does not exist.
	ErrMetaRootMissing = errors.New("metadata root does not exist")
	// ErrMetaRootNotDir reports a metadata root that is not a directory.
	ErrMetaRootNotDir = errors.New("metadata root is not a directory")
	// ErrInvalidName reports a metadata path that is not valid UTF-8 and so
	// cannot be recorded in the manifest.
	ErrInvalidName = errors.New("path is not valid UTF-8")
)

// Report summarizes one build.
type Report struct {
	Catalog    Catalog
	Subjects   int
	Skipped    int
	Duplicates []Duplicate
}

// Builder scans an archive layout and assembles its catalog.
type Builder struct {
	layout Layout
	labels metadata.Labels
	logger *slog.Logger
}

// NewBuilder returns a Builder for layout. A nil logger discards output.
func NewBuilder(layout Layout, labels metadata.Labels, logger *slog.Logger) *Builder {
	return &Builder{
		layout: layout.withDefaults(),
		labels: labels,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Build scans the archive and returns the catalog.
func (b *Builder) Build(ctx context.Context) (Catalog, error) {
	report, err := b.BuildReport(ctx)
	if err != nil {
		return nil, err
	}
	return report.Catalog, nil
}

// BuildReport scans the archive and returns the catalog with scan statistics.
// The first unreadable metadata file aborts the scan.
func (b *Builder) BuildReport(ctx context.Context) (Report, error) {
	logger := logging.WithContext(ctx, b.logger)

	subjects, err := b.subjects()
	if err != nil {
		return Report{}, err
	}

	report := Report{Catalog: Catalog{}, Subjects: len(subjects)}
	for _, subject := range subjects {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		files, skipped, err := b.metadataFiles(subject)
		if err != nil {
			return Report{}, err
		}
		report.Skipped += skipped

		for _, name := range files {
			src := b.layout.Source(subject, name)
			if !utf8.ValidString(src.MetaPath) || !utf8.ValidString(src.PDFPath) {
				return Report{}, fmt.Errorf("%w: %q", ErrInvalidName, src.MetaPath)
			}
			fields, err := metadata.ParseFile(filepath.Join(b.layout.MetaRoot, subject, name), b.labels)
			if err != nil {
				return Report{}, fmt.Errorf("subject %q: %w", subject, err)
			}
			report.Catalog = append(report.Catalog, Assemble(src, fields))
		}
		logger.Debug("scanned subject",
			logging.String(logging.FieldSubject, subject),
			logging.Int("records", len(files)),
			logging.Int("skipped", skipped),
		)
	}

	report.Duplicates = Duplicates(report.Catalog)
	for _, dup := range report.Duplicates {
		logging.WarnWithContext(logger, "duplicate record id", "duplicate_id",
			logging.String("id", dup.ID),
			logging.String("files", strings.Join(dup.Meta, ", ")),
			logging.Alert("duplicate_id"),
			logging.String(logging.FieldImpact, "consumers looking records up by id see only the first"),
		)
	}
	return report, nil
}

// subjects lists subject directory names under the metadata root, following
// symlinks. Dangling links and plain files are ignored.
func (b *Builder) subjects() ([]string, error) {
	root := b.layout.MetaRoot
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMetaRootMissing, root)
		}
		return nil, fmt.Errorf("stat metadata root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMetaRootNotDir, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read metadata root: %w", err)
	}
	subjects := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isDir(root, entry) {
			subjects = append(subjects, entry.Name())
		}
	}
	return subjects, nil
}

// metadataFiles returns the sorted metadata file names of a subject and the
// number of entries skipped because they lack the extension or are directories.
func (b *Builder) metadataFiles(subject string) ([]string, int, error) {
	dir := filepath.Join(b.layout.MetaRoot, subject)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read subject %q: %w", subject, err)
	}
	var files []string
	skipped := 0
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, b.layout.Extension) || isDir(dir, entry) {
			skipped++
			continue
		}
		files = append(files, name)
	}
	return files, skipped, nil
}

func isDir(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
