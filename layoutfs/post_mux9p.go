//go:build mux9p

package layoutfs

import (
	"log"
	"net"
	"os"
	"path/filepath"

	"9fans.net/go/plan9/client"
	"github.com/fhs/mux9p"
)

func post9pservice(conn net.Conn, name string) error {
	ns := client.Namespace()
	if err := os.MkdirAll(ns, 0700); err != nil {
		return err
	}
	addr := filepath.Join(ns, name)
	go func() {
		if err := mux9p.Listen("unix", addr, conn, nil); err != nil {
			log.Printf("layoutfs: 9P multiplexer failed: %v", err)
		}
	}()
	return nil
}
