package transport

import (
	"errors"
	"fmt"
	"ipecho/internal/logger"
	"net"
)

type tcp struct {
	port    string
	handler Handler
	log     logger.Logger
}

func NewTCPServer(port string, handler Handler, log logger.Logger) Transport {
	return &tcp{
		port:    port,
		handler: handler,
		log:     log,
	}
}

// Listen binds every interface. The port is passed through unchecked, so an
// invalid value fails here.
func (tt *tcp) Listen() (net.Listener, error) {
	return net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", tt.port))
}

func (tt *tcp) Serve(listener net.Listener) error {
	tt.log.Infow("server running", "port", tt.port)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			tt.log.Errorw("error accepting connection", "error", err)
			continue
		}
		go tt.handler.Handle(conn)
	}
}
