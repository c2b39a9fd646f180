package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"river-stream/internal/layout"
	"river-stream/pkg/logger"
)

// ProviderFunc returns the provider that should answer the next request. It
// lets the daemon swap engines on config reload without restarting the
// server.
type ProviderFunc func() layout.Provider

// Server answers layout requests on a unix domain socket. Requests from all
// connections are dispatched one at a time.
type Server struct {
	path     string
	provider ProviderFunc
	log      *logger.Logger

	dispatchMu sync.Mutex
	ready      chan struct{}
}

func NewServer(path string, provider ProviderFunc, log *logger.Logger) *Server {
	return &Server{
		path:     path,
		provider: provider,
		log:      log,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the socket is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Serve listens on the socket until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	// Remove the socket file if it already exists
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing socket file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("failed to start socket server: %w", err)
	}
	close(s.ready)

	s.log.Info("Socket server started", "path", s.path)

	stop := context.AfterFunc(ctx, func() { listener.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		os.Remove(s.path)
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.log.Info("Socket server stopped", "path", s.path)
				return nil
			}
			s.log.Error("Failed to accept connection", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConnection(ctx, conn)
		}()
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	log := s.log.With("conn", uuid.NewString())
	log.Debug("New connection accepted")

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	decoder := json.NewDecoder(bufio.NewReader(conn))
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				log.Debug("Connection closed")
				return
			}
			log.Error("Failed to decode request", err)
			_ = encoder.Encode(errorResponse("malformed request"))
			return
		}

		resp := s.dispatch(log, req)
		if err := encoder.Encode(resp); err != nil {
			log.Error("Failed to encode response", err)
			return
		}
		log.Debug("Response sent successfully", "status", resp.Status)
	}
}

func (s *Server) dispatch(log *logger.Logger, req Request) Response {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	provider := s.provider()

	switch req.Command {
	case CommandGenerateLayout:
		var tags uint32
		if req.Tags != nil {
			tags = *req.Tags
		}
		generated, err := provider.GenerateLayout(req.ViewCount, req.UsableWidth, req.UsableHeight, tags, req.Output)
		if err != nil {
			log.Error("Layout generation failed", err, "output", req.Output)
			return errorResponse(err.Error())
		}
		log.Debug("Layout generated",
			"output", req.Output,
			"view_count", req.ViewCount,
			"usable_width", req.UsableWidth,
			"usable_height", req.UsableHeight,
			"placed", len(generated.Views))
		return Response{Status: StatusSuccess, Layout: &generated}
	case CommandUserCmd:
		if err := provider.UserCmd(req.UserCommand, req.Tags, req.Output); err != nil {
			log.Error("User command failed", err, "command", req.UserCommand)
			return errorResponse(err.Error())
		}
		log.Info("User command accepted", "command", req.UserCommand, "output", req.Output)
		return Response{Status: StatusSuccess}
	default:
		log.Error("Unknown command received", fmt.Errorf("command: %s", req.Command))
		return errorResponse("unknown command")
	}
}
