package transport

import (
	"errors"
	"fmt"
	"io"
	"ipecho/internal/http/response"
	"ipecho/internal/logger"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockListener struct {
	mock.Mock
}

func (m *mockListener) Accept() (net.Conn, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(net.Conn), args.Error(1)
}

func (m *mockListener) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockListener) Addr() net.Addr {
	args := m.Called()
	return args.Get(0).(net.Addr)
}

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(conn net.Conn) {
	m.Called(conn)
}

func startTCPServer(t *testing.T) (net.Listener, string) {
	srv := NewTCPServer("0", NewHandler(logger.Nop()), logger.Nop())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	go func() {
		_ = srv.Serve(listener)
	}()
	return listener, listener.Addr().String()
}

func roundTrip(t *testing.T, addr, request string) (string, string) {
	conn, err := net.Dial("tcp", addr)
	assert.NoError(t, err)
	defer func(conn net.Conn) {
		_ = conn.Close()
	}(conn)

	_, err = conn.Write([]byte(request))
	assert.NoError(t, err)

	got, err := io.ReadAll(conn)
	assert.NoError(t, err)
	return string(got), conn.LocalAddr().String()
}

func TestNewTCPServer(t *testing.T) {
	mh := new(MockHandler)
	log := logger.Nop()
	port := "9000"

	srv := NewTCPServer(port, mh, log)
	assert.NotNil(t, srv)

	tcpSrv, ok := srv.(*tcp)
	assert.True(t, ok)
	assert.Equal(t, port, tcpSrv.port)
	assert.Equal(t, mh, tcpSrv.handler)
	assert.Equal(t, log, tcpSrv.log)
}

func TestTCPServer_Listen(t *testing.T) {
	srv := NewTCPServer("0", new(MockHandler), logger.Nop())

	listener, err := srv.Listen()
	assert.NoError(t, err)
	assert.NotNil(t, listener)

	addr, ok := listener.Addr().(*net.TCPAddr)
	assert.True(t, ok)
	assert.True(t, addr.IP.IsUnspecified())

	err = listener.Close()
	assert.NoError(t, err)
}

func TestTCPServer_Listen_InvalidPort(t *testing.T) {
	srv := NewTCPServer("invalid", new(MockHandler), logger.Nop())

	listener, err := srv.Listen()
	assert.Error(t, err)
	assert.Nil(t, listener)
}

func TestTCPServer_Serve(t *testing.T) {
	srv := NewTCPServer("0", new(MockHandler), logger.Nop())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		err := listener.Close()
		assert.NoError(t, err)
	}()

	err = srv.Serve(listener)
	assert.Nil(t, err)
}

func TestTCPServer_Serve_AcceptError(t *testing.T) {
	log, logs := newObservedLogger()
	srv := NewTCPServer("0", new(MockHandler), log)

	ml := new(mockListener)
	ml.On("Accept").Return(nil, errors.New("accept error")).Once()
	ml.On("Accept").Return(nil, net.ErrClosed).Once()

	err := srv.Serve(ml)
	assert.Nil(t, err)
	ml.AssertExpectations(t)
	assert.Equal(t, 1, logs.FilterMessage("error accepting connection").Len())
	assert.Equal(t, 1, logs.FilterMessage("server running").Len())
}

func TestTCPServer_Serve_DispatchesToHandler(t *testing.T) {
	mh := new(MockHandler)
	srv := NewTCPServer("0", mh, logger.Nop())

	serverConn, clientConn := net.Pipe()
	defer func(clientConn net.Conn) {
		_ = clientConn.Close()
	}(clientConn)

	handled := make(chan struct{})
	mh.On("Handle", serverConn).Run(func(args mock.Arguments) {
		close(handled)
	}).Return()

	ml := new(mockListener)
	ml.On("Accept").Return(serverConn, nil).Once()
	ml.On("Accept").Return(nil, net.ErrClosed).Once()

	err := srv.Serve(ml)
	assert.Nil(t, err)

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
	mh.AssertExpectations(t)
	ml.AssertExpectations(t)
}

func TestTCPServer_EndToEnd(t *testing.T) {
	listener, addr := startTCPServer(t)
	defer func(listener net.Listener) {
		_ = listener.Close()
	}(listener)

	t.Run("tool agent gets bare address", func(t *testing.T) {
		got, peer := roundTrip(t, addr, "GET / HTTP/1.1\r\nHost: x\r\nUser-Agent: wget/1.0\r\n\r\n")
		assert.Equal(t, "HTTP/1.1 200 ok\r\n\r\n"+peer, got)
	})

	t.Run("browser gets html", func(t *testing.T) {
		got, peer := roundTrip(t, addr, "GET / HTTP/1.1\r\nHost: x\r\nUser-Agent: Mozilla/5.0\r\n\r\n")
		assert.Equal(t, response.WrapHTTP(response.WrapHTML(peer)), got)

		start := strings.Index(got, "<h1>") + len("<h1>")
		end := strings.Index(got, "</h1>")
		assert.Equal(t, peer, got[start:end])
	})

	t.Run("no headers defaults to html", func(t *testing.T) {
		got, peer := roundTrip(t, addr, "\r\n")
		assert.Equal(t, response.WrapHTTP(response.WrapHTML(peer)), got)
	})
}

func TestTCPServer_ConcurrentConnections(t *testing.T) {
	listener, addr := startTCPServer(t)
	defer func(listener net.Listener) {
		_ = listener.Close()
	}(listener)

	silent, err := net.Dial("tcp", addr)
	assert.NoError(t, err)
	defer func(silent net.Conn) {
		_ = silent.Close()
	}(silent)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, peer := roundTrip(t, addr, fmt.Sprintf("GET /%d\r\nUser-Agent: curl/%d\r\n\r\n", i, i))
			assert.Equal(t, "HTTP/1.1 200 ok\r\n\r\n"+peer, got)
		}(i)
	}
	wg.Wait()
}
