package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	calcgrammar "github.com/wrenfield/llpc/examples/calc"
	jsongrammar "github.com/wrenfield/llpc/examples/json"
	"github.com/wrenfield/llpc/lexer"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an HTTP+WebSocket playground for the calc and json grammars",
		Long: `Start an HTTP server with a WebSocket endpoint that parses calc or
json input typed into a connected client, streaming back tokens and either
the parse result or a structured parse error per message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = config.Port
			}
			return runServe(cmd, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default: from llpc.yaml, else 8080)")
	return cmd
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// playgroundRequest is a single grammar+text message sent over the
// WebSocket connection.
type playgroundRequest struct {
	Grammar string `json:"grammar"`
	Text    string `json:"text"`
}

// playgroundResponse mirrors one request: either Result is populated, or
// Error is, tagged with the request id that produced it for client-side
// correlation and server-side log correlation (zap field "request_id").
type playgroundResponse struct {
	RequestID string   `json:"request_id"`
	Tokens    []string `json:"tokens,omitempty"`
	Result    any      `json:"result,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func runServe(cmd *cobra.Command, port int) error {
	logger := newLogger()
	defer logger.Sync()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/ws", wsHandler(logger))

	srv := &http.Server{
		Addr:              portAddr(port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("llpc playground listening", zap.String("addr", srv.Addr))
	return srv.ListenAndServe()
}

func portAddr(port int) string {
	if port <= 0 {
		port = 8080
	}
	return ":" + strconv.Itoa(port)
}

func wsHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		for {
			var req playgroundRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}

			reqID := uuid.NewString()
			resp := handlePlaygroundRequest(logger, reqID, req)
			if err := conn.WriteJSON(resp); err != nil {
				logger.Error("websocket write failed", zap.String("request_id", reqID), zap.Error(err))
				return
			}
		}
	}
}

func handlePlaygroundRequest(logger *zap.Logger, reqID string, req playgroundRequest) playgroundResponse {
	resp := playgroundResponse{RequestID: reqID}

	switch req.Grammar {
	case "calc":
		toks, err := calcgrammar.Tokenize(req.Text)
		if err != nil {
			resp.Error = err.Error()
			return resp
		}
		resp.Tokens = tokenStrings(toks)
		tree, err := calcgrammar.Parse(req.Text)
		if err != nil {
			logger.Warn("calc parse failed", zap.String("request_id", reqID), zap.Error(err))
			resp.Error = err.Error()
			return resp
		}
		resp.Result = calcgrammar.Eval(tree)
	case "json":
		v, err := jsongrammar.Parse(req.Text)
		if err != nil {
			logger.Warn("json parse failed", zap.String("request_id", reqID), zap.Error(err))
			resp.Error = err.Error()
			return resp
		}
		resp.Result = v
	default:
		resp.Error = "unknown grammar: " + req.Grammar
	}
	return resp
}

func tokenStrings(toks []lexer.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.String()
	}
	return out
}
