package platform

import "os"

// Permission constants for everything inix writes.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// IsWritable reports whether the owner write bit is set on info. On Windows
// Go maps the read-only attribute onto the same bit.
func IsWritable(info os.FileInfo) bool {
	return info.Mode().Perm()&0200 != 0
}
