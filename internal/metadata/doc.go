// Package metadata parses the "label: value" text files that describe each paper.
//
// A metadata file is UTF-8 text with one field per line. Only three fields are
// recognized (title, category, abstract); their labels are protocol constants
// with Korean defaults (제목, 구분, 초록) and may be extended through
// configuration. Lines without a ':' and lines with unknown labels are ignored,
// and the last line for a given field wins. Parsing never fails on content;
// only reading or decoding the file can fail.
package metadata
