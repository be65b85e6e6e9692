package transport

import (
	"bufio"
	"errors"
	"fmt"
	"ipecho/internal/http/header"
	"ipecho/internal/http/response"
	"ipecho/internal/logger"
	"ipecho/internal/useragent"
	"net"
	"runtime/debug"
)

// UserAgentKey is the header map key for the User-Agent value. The request
// reader never strips the colon from a key.
const UserAgentKey = "User-Agent:"

type connHandler struct {
	log logger.Logger
}

func NewHandler(log logger.Logger) Handler {
	return &connHandler{log: log}
}

func (ch *connHandler) Handle(conn net.Conn) {
	defer ch.closeConnection(conn)
	defer ch.recoverPanic()

	req := header.Read(conn, ch.log)
	peer := peerAddr(conn)

	ua := ch.userAgent(req, peer)
	resp := buildResponse(ua, peer)

	ch.log.Infow("request", "method", req.Method(), "peer", peer, "user_agent", ua)

	if err := writeResponse(conn, resp); err != nil {
		ch.log.Errorw("failed to write response", "peer", peer, "error", err)
	}
}

func (ch *connHandler) userAgent(req header.RequestHeader, peer string) string {
	ua, ok := req.Lookup(UserAgentKey)
	if !ok {
		ch.log.Warnw("user agent not found", "peer", peer)
		return ""
	}
	return ua
}

func buildResponse(ua, peer string) string {
	if useragent.IsToolAgent(ua) {
		return response.WrapHTTP(peer)
	}
	return response.WrapHTTP(response.WrapHTML(peer))
}

func writeResponse(conn net.Conn, resp string) error {
	bw := bufio.NewWriter(conn)
	if _, err := bw.WriteString(resp); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (ch *connHandler) recoverPanic() {
	if r := recover(); r != nil {
		ch.log.Errorw("panic serving connection", "panic", r, "stack", string(debug.Stack()))
	}
}

func (ch *connHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		ch.log.Errorw("error closing connection", "error", err)
	}
}

func peerAddr(conn net.Conn) string {
	addr := conn.RemoteAddr()
	if addr == nil {
		return ""
	}
	return addr.String()
}
