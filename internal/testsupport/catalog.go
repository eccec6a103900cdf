package testsupport

import (
	"path/filepath"
	"testing"
)

// SampleTree writes a small two-subject archive under base using the default
// layout ("meta data" and "paper") and returns the metadata root.
func SampleTree(t testing.TB, base string) string {
	t.Helper()

	metaRoot := filepath.Join(base, "meta data")
	WriteTree(t, metaRoot, map[string]string{
		"math/proof.txt":    "제목: Proof of Concept\n구분: 수학\n초록: A short proof.\n",
		"math/my paper.txt": "제목: X\n",
		"math/notes.md":     "제목: ignored\n",
		"물리/01_양자.txt":      "제목: 양자 얽힘\n초록: 얽힘 상태 & <측정>\n",
		"물리/02_고전.txt":      "구분: 화학\n구분: 물리\n",
		"물리/scan.pdf":       "%PDF-1.4",
		"README.txt":        "not a subject",
	})
	return metaRoot
}
