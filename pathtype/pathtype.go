package pathtype

import (
	"io/fs"
	"os"
)

// Type is the physical category of a filesystem entry. Exactly one
// applies per (path, followSymlinks) pair at the time of query.
type Type uint8

const (
	DoesNotExist Type = iota
	RegularFile
	Directory
	Symlink
	Pipe
	CharDevice
	BlockDevice
	Socket
	Unknown
)

var typeNames = map[Type]string{
	DoesNotExist: "does not exist",
	RegularFile:  "regular file",
	Directory:    "directory",
	Symlink:      "symlink",
	Pipe:         "pipe",
	CharDevice:   "character device",
	BlockDevice:  "block device",
	Socket:       "socket",
	Unknown:      "unknown",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// FromMode maps a file mode to its Type.
func FromMode(mode fs.FileMode) Type {
	switch {
	case mode.IsRegular():
		return RegularFile
	case mode&fs.ModeDir != 0:
		return Directory
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode&fs.ModeNamedPipe != 0:
		return Pipe
	case mode&fs.ModeCharDevice != 0:
		return CharDevice
	case mode&fs.ModeDevice != 0:
		return BlockDevice
	case mode&fs.ModeSocket != 0:
		return Socket
	default:
		return Unknown
	}
}

// Classify resolves the type of the entry at path. When followSymlinks
// is false, a terminal symlink is reported as Symlink rather than as
// its target's type.
//
// Classify never fails: a missing final component and a
// permission-denied ancestor both yield DoesNotExist, and mode bits
// outside the known set yield Unknown. The result is a point-in-time
// fact; it is not cached.
func Classify(path string, followSymlinks bool) Type {
	var (
		info fs.FileInfo
		err  error
	)
	if followSymlinks {
		info, err = os.Stat(path)
	} else {
		info, err = os.Lstat(path)
	}
	if err != nil {
		return DoesNotExist
	}
	return FromMode(info.Mode())
}

// Set is a bitmask over Types, used by search predicates.
type Set uint16

// SetOf builds a Set from the given types.
func SetOf(types ...Type) Set {
	var s Set
	for _, t := range types {
		s |= 1 << t
	}
	return s
}

// Has reports whether t is a member of the set.
func (s Set) Has(t Type) bool { return s&(1<<t) != 0 }

// Empty reports whether the set admits nothing.
func (s Set) Empty() bool { return s == 0 }
