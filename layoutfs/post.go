package layoutfs

import (
	"errors"
	"log"
	"net"
)

// Post makes s available under name in the current 9P namespace.
// Requests are served until the service goes away.
func (s *Server) Post(name string) error {
	if name == "" {
		return errors.New("layoutfs: empty service name")
	}
	c0, c1 := net.Pipe()
	if err := post9pservice(c0, name); err != nil {
		c0.Close()
		c1.Close()
		return err
	}
	go func() {
		if err := s.Serve(c1); err != nil {
			log.Printf("layoutfs: %v", err)
		}
	}()
	return nil
}
