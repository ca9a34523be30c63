//go:build !mux9p

package layoutfs

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/exec"
	"strings"

	"9fans.net/go/plan9/client"
)

func post9pservice(conn net.Conn, name string) error {
	addr := name
	if !strings.Contains(name, "!") {
		ns := client.Namespace()
		if err := os.MkdirAll(ns, 0700); err != nil {
			return err
		}
		addr = fmt.Sprintf("unix!%s/%s", ns, name)
	}
	cmd := exec.Command("9pserve", "-lv", addr)
	cmd.Stdin = conn
	cmd.Stdout = conn
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("layoutfs: failed to start 9pserve: %v", err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("layoutfs: 9pserve: %v", err)
		}
		conn.Close()
	}()
	return nil
}
