package model

import (
	"context"
	"net"
)

// SecurityLayer produces the listener the HTTP server serves on, either plain
// TCP or TLS depending on configuration.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the transport front serving the note endpoints. Start blocks
// until the server stops; Stop drains in-flight requests within the context
// deadline.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
