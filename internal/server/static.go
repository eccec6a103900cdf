package server

import (
	"net/http"
	"path/filepath"
	"sort"
	"strings"
)

// mount exposes a directory under a URL prefix.
type mount struct {
	prefix  string
	handler http.Handler
}

func newMounts(roots []string) []mount {
	var mounts []mount
	seen := make(map[string]bool)
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		prefix := "/" + strings.TrimPrefix(filepath.ToSlash(filepath.Clean(root)), "/")
		if prefix == "/." || prefix == "/" || seen[prefix] {
			continue
		}
		seen[prefix] = true
		mounts = append(mounts, mount{
			prefix:  prefix,
			handler: http.StripPrefix(prefix, noListing(http.FileServer(http.Dir(root)))),
		})
	}
	// Longest prefix first so nested roots resolve to the inner directory.
	sort.Slice(mounts, func(i, j int) bool {
		return len(mounts[i].prefix) > len(mounts[j].prefix)
	})
	return mounts
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	for _, m := range s.mounts {
		if strings.HasPrefix(path, m.prefix+"/") {
			m.handler.ServeHTTP(w, r)
			return
		}
	}
	if s.site != nil {
		s.site.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

// noListing hides directory indexes other than the site root.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
