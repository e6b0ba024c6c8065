//go:build windows
// +build windows

package server

import (
	"context"
	"errors"
	"net"
	"time"
)

// SSH server is unsupported on Windows

type SSHServer struct {
	Addr        string
	Binary      string
	HostKey     string
	IdleTimeout time.Duration
}

var errUnsupported = errors.New("ssh server is not supported on windows")

func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	return errUnsupported
}

func (s *SSHServer) Serve(ctx context.Context, l net.Listener) error {
	l.Close()
	return errUnsupported
}
