//go:build !windows
// +build !windows

// Package server serves blockterm over ssh: every session gets its own game
// process running in a pseudo-terminal.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	DefaultIdleTimeout = 5 * time.Minute
	shutdownTimeout    = 5 * time.Second
)

type SSHServer struct {
	Addr string
	// Binary is started as `Binary --nick <nickname>` for every session.
	Binary string
	// HostKey is a private key file. An ephemeral key is used when empty.
	HostKey     string
	IdleTimeout time.Duration
}

func setWinsize(f *os.File, w, h int) {
	if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
		log.Printf("failed to resize pty: %s", err)
	}
}

func (s *SSHServer) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start blockterm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	nick := Nickname(sshSession.User())
	log.Printf("session %s from %s", nick, sshSession.RemoteAddr())

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, "--nick", nick)
	cmd.Env = append(sshSession.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		log.Printf("failed to start %s: %s", s.Binary, err)
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()

	log.Printf("session %s closed", nick)
	sshSession.Exit(cmd.ProcessState.ExitCode())
}

func (s *SSHServer) newServer() (*ssh.Server, error) {
	idle := s.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}

	server := &ssh.Server{
		Addr:        s.Addr,
		IdleTimeout: idle,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKey != "" {
		if err := server.SetOption(ssh.HostKeyFile(s.HostKey)); err != nil {
			return nil, fmt.Errorf("load host key %s: %w", s.HostKey, err)
		}
		return server, nil
	}

	signer, err := ephemeralHostKey()
	if err != nil {
		return nil, err
	}
	server.AddHostKey(signer)

	return server, nil
}

// ListenAndServe listens on Addr and serves sessions until ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	if s.Addr == "" {
		return errors.New("ssh server address must be specified")
	}

	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}

	return s.Serve(ctx, l)
}

// Serve accepts sessions on l until ctx is done. l is closed on return.
func (s *SSHServer) Serve(ctx context.Context, l net.Listener) error {
	if s.Binary == "" {
		l.Close()
		return errors.New("ssh server binary must be specified")
	}

	server, err := s.newServer()
	if err != nil {
		l.Close()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(l)
	}()

	log.Printf("listening for ssh connections on %s", l.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
		}

		if err := <-errCh; err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	}
}
