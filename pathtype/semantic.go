package pathtype

import (
	"os"
	"strings"
)

// Semantic is the intent read out of a path string alone, without
// touching the filesystem.
type Semantic uint8

const (
	SemanticFile Semantic = iota
	SemanticDirectory
)

func (s Semantic) String() string {
	if s == SemanticDirectory {
		return "directory"
	}
	return "file"
}

// SemanticOf interprets the directory-vs-file intent of a path string.
// "." and ".." always denote directories, as does any path ending in a
// separator. This is a documented policy mirroring shell trailing-slash
// conventions, not a filesystem fact.
func SemanticOf(path string) Semantic {
	if path == "." || path == ".." {
		return SemanticDirectory
	}
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return SemanticDirectory
	}
	// Forward slashes denote directories on every platform.
	if os.PathSeparator != '/' && strings.HasSuffix(path, "/") {
		return SemanticDirectory
	}
	return SemanticFile
}
