// Package pathgen generates unique, collision-resistant file paths for
// temporary mmap-backed stores. An Mmap store opened in temporary mode never
// receives a path from the caller — it needs one generated under the OS temp
// directory that is extremely unlikely to collide with a concurrently
// running instance and that clearly identifies itself as Ignite-owned for
// operators inspecting a temp directory.
package pathgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// sequence disambiguates paths generated within the same process inside the
// same nanosecond, which on some platforms is coarser than it sounds.
var sequence atomic.Uint64

// Generate returns a path under dir (os.TempDir() if dir is empty) named
// "ignite_<pid>_<seq>_<timestamp>.mmap". The caller is responsible for
// creating and later removing the file.
func Generate(dir string) string {
	if dir == "" {
		dir = os.TempDir()
	}

	seq := sequence.Add(1)
	name := fmt.Sprintf("ignite_%d_%05d_%d.mmap", os.Getpid(), seq, time.Now().UnixNano())
	return filepath.Join(dir, name)
}
