// Package source provides opaque io.ReadCloser providers for the inputs
// ini.Parse accepts, keeping file discovery and remote fetch concerns out
// of the parser itself (spec §1, §5).
package source

import (
	"bytes"
	"io"
	"os"

	"github.com/samuel/go-zookeeper/zk"
)

// File opens path for reading. It is the single file-opening entry point
// for the module: ini.ParseFile delegates to it rather than calling
// os.Open itself, so file discovery stays out of the parser (spec §1).
func File(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Zookeeper reads the content stored at node on an already-connected
// zookeeper client, grounded on the teacher's vendored
// tick-config/zookeeper client wrapper, which held its configuration the
// same way: one flat value per znode.
func Zookeeper(conn *zk.Conn, node string) (io.ReadCloser, error) {
	data, _, err := conn.Get(node)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
