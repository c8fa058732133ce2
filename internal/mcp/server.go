package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/schedule"
)

// serverVersion is reported in the initialize handshake.
const serverVersion = "0.1.0"

// Server is an MCP stdio server. It reads newline-delimited JSON-RPC
// requests and answers tool calls from the analytics engine.
type Server struct {
	tools   []toolDef
	methods map[string]methodFunc
	engine  *analytics.Engine
	events  EventLister
	layout  schedule.Options
	logger  *slog.Logger
}

// toolDef describes a registered MCP tool.
type toolDef struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     toolHandler
}

// toolHandler is the function signature for MCP tool handlers.
type toolHandler func(ctx context.Context, args json.RawMessage) (any, error)

// methodFunc answers one JSON-RPC method. Returning an *rpcError sends it
// as the response error.
type methodFunc func(ctx context.Context, params json.RawMessage) (any, error)

// NewServer constructs a Server that answers analytics queries from engine
// and day-view queries from events. A nil logger discards logs.
func NewServer(engine *analytics.Engine, events EventLister, layout schedule.Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		engine: engine,
		events: events,
		layout: layout,
		logger: logger,
	}
	s.methods = map[string]methodFunc{
		"initialize": s.initialize,
		"ping":       func(context.Context, json.RawMessage) (any, error) { return struct{}{}, nil },
		"tools/list": s.listTools,
		"tools/call": s.callTool,
	}
	addTools(s)
	return s
}

// registerTool appends a toolDef to s.tools.
func (s *Server) registerTool(def toolDef) {
	s.tools = append(s.tools, def)
}

func (s *Server) lookupTool(name string) (toolDef, bool) {
	for _, t := range s.tools {
		if t.Name == name {
			return t, true
		}
	}
	return toolDef{}, false
}

// Run blocks, answering requests read from r on w, until ctx is cancelled
// or r reaches EOF. Both end the session cleanly and return nil; only I/O
// failures are returned.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	lines, readErr := readLines(ctx, r)
	out := bufio.NewWriter(w)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			resp, reply := s.handle(ctx, line)
			if !reply {
				continue
			}
			if err := writeMessage(out, resp); err != nil {
				return err
			}
		}
	}
}

// readLines delivers each non-blank line of r until EOF, when lines is
// closed. A read failure is sent on the error channel instead.
func readLines(ctx context.Context, r io.Reader) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	errc := make(chan error, 1)
	go func() {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadBytes('\n')
			if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
				select {
				case lines <- trimmed:
				case <-ctx.Done():
					return
				}
			}
			if errors.Is(err, io.EOF) {
				close(lines)
				return
			}
			if err != nil {
				errc <- err
				return
			}
		}
	}()
	return lines, errc
}

// handle decodes and dispatches one message. reply is false for
// notifications, which never get a response.
func (s *Server) handle(ctx context.Context, line []byte) (resp response, reply bool) {
	resp.JSONRPC = "2.0"

	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		resp.Error = &rpcError{Code: codeParseError, Message: "Parse error"}
		return resp, true
	}
	if req.ID == nil {
		s.logger.Debug("mcp notification", "method", req.Method)
		return resp, false
	}
	resp.ID = req.ID

	if req.JSONRPC != "2.0" {
		resp.Error = &rpcError{Code: codeInvalidRequest, Message: "Invalid Request"}
		return resp, true
	}
	method, ok := s.methods[req.Method]
	if !ok {
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: "Method not found"}
		return resp, true
	}

	result, err := method(ctx, req.Params)
	var rpcErr *rpcError
	switch {
	case errors.As(err, &rpcErr):
		resp.Error = rpcErr
	case err != nil:
		resp.Error = &rpcError{Code: codeInvalidRequest, Message: err.Error()}
	default:
		resp.Result = result
	}
	return resp, true
}

func (s *Server) initialize(context.Context, json.RawMessage) (any, error) {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "focussphere",
			"version": serverVersion,
		},
	}, nil
}

func (s *Server) listTools(context.Context, json.RawMessage) (any, error) {
	entries := make([]toolListEntry, 0, len(s.tools))
	for _, t := range s.tools {
		entries = append(entries, toolListEntry{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return map[string]any{"tools": entries}, nil
}

// callTool runs a tool. Tool failures are reported in the result with
// isError set; only malformed params are protocol errors.
func (s *Server) callTool(ctx context.Context, raw json.RawMessage) (any, error) {
	var params toolsCallParams
	if err := json.Unmarshal(raw, &params); err != nil || params.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "Invalid params"}
	}

	tool, ok := s.lookupTool(params.Name)
	if !ok {
		return errorResult(fmt.Sprintf("unknown tool: %s", params.Name)), nil
	}

	args := params.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	result, err := tool.Handler(ctx, args)
	if err != nil {
		s.logger.Warn("tool call failed", "tool", tool.Name, "err", err)
		return errorResult(err.Error()), nil
	}

	text, err := json.Marshal(result)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(string(text)), nil
}

// writeMessage writes resp as one JSON line and flushes.
func writeMessage(w *bufio.Writer, resp response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Flush()
}
