// Package textutil provides the string normalization used to derive catalog
// identifiers and portable paths.
//
// Identifiers collapse every run of Unicode whitespace into one separator, and
// file names are compared in NFC so names written by macOS (which stores Hangul
// decomposed) and by other systems produce the same identifiers.
package textutil
