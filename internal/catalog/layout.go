package catalog

import (
	"path/filepath"
	"strings"

	"hara/internal/metadata"
	"hara/internal/textutil"
)

const (
	// DefaultExtension marks metadata files.
	DefaultExtension = ".txt"
	// DefaultDocumentExtension is appended to base names to derive PDF paths.
	DefaultDocumentExtension = ".pdf"
	// IDSeparator replaces whitespace runs in identifiers.
	IDSeparator = "_"
)

// Layout names the roots and extensions of an archive.
type Layout struct {
	MetaRoot          string
	PaperRoot         string
	Extension         string
	DocumentExtension string
}

func (l Layout) withDefaults() Layout {
	if l.Extension == "" {
		l.Extension = DefaultExtension
	}
	if l.DocumentExtension == "" {
		l.DocumentExtension = DefaultDocumentExtension
	}
	return l
}

// Source describes one metadata file and everything derived from its location.
type Source struct {
	// Subject is the enclosing directory name, the fallback subject label.
	Subject string
	// BaseName is the file name without the metadata extension.
	BaseName string
	ID       string
	MetaPath string
	PDFPath  string
}

// Source derives the identifiers and paths for fileName inside subject.
func (l Layout) Source(subject, fileName string) Source {
	l = l.withDefaults()
	base := strings.TrimSuffix(fileName, l.Extension)
	return Source{
		Subject:  subject,
		BaseName: base,
		ID:       NormalizeID(base, l.Extension),
		MetaPath: CanonicalPath(l.MetaRoot, subject, fileName),
		PDFPath:  CanonicalPath(l.PaperRoot, subject, base+l.DocumentExtension),
	}
}

// Assemble derives a record from a source and its parsed metadata. Empty
// metadata values fall back to the base name (title) and directory (subject).
func Assemble(src Source, fields metadata.Fields) Record {
	title := fields.Title
	if title == "" {
		title = textutil.NFC(src.BaseName)
	}
	subject := fields.Category
	if subject == "" {
		subject = textutil.NFC(src.Subject)
	}
	return Record{
		ID:       src.ID,
		Title:    title,
		Subject:  subject,
		Abstract: fields.Abstract,
		Meta:     src.MetaPath,
		PDF:      src.PDFPath,
	}
}

// NormalizeID derives a record identifier from a base name: a trailing ext is
// removed, surrounding whitespace trimmed, and internal whitespace runs joined
// with IDSeparator. The result is in NFC.
func NormalizeID(base, ext string) string {
	if ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return textutil.CollapseWhitespace(textutil.NFC(base), IDSeparator)
}

// CanonicalPath joins elem and normalizes separators to '/'.
func CanonicalPath(elem ...string) string {
	return textutil.SlashPath(filepath.ToSlash(filepath.Join(elem...)))
}
