package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/arcade-backend/internal/colormatch"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/flags"
	"github.com/rocketscienceinc/arcade-backend/internal/oddcolor"
	"github.com/rocketscienceinc/arcade-backend/internal/omok"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
	"github.com/rocketscienceinc/arcade-backend/internal/tiles"
)

const (
	sessionCookie   = "user_session"
	sessionLifetime = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
	maxMessageSize  = 4096
)

type tilesUseCase interface {
	New(ctx context.Context, sessionID string) (*entity.TileGame, error)
	State(ctx context.Context, sessionID string) (*entity.TileGame, error)
	Move(ctx context.Context, sessionID string, dir entity.Direction) (*entity.TileGame, tiles.Outcome, error)
	KeepPlaying(ctx context.Context, sessionID string) (*entity.TileGame, error)
}

type omokUseCase interface {
	New(ctx context.Context, sessionID string) (*entity.OmokGame, error)
	State(ctx context.Context, sessionID string) (*entity.OmokGame, error)
	Place(ctx context.Context, sessionID string, row, col int) (*entity.OmokGame, omok.Placement, error)
}

type oddColorUseCase interface {
	Start(ctx context.Context, sessionID string) (*entity.OddColorGame, error)
	State(ctx context.Context, sessionID string) (*entity.OddColorGame, error)
	Pick(ctx context.Context, sessionID string, index int) (*entity.OddColorGame, oddcolor.PickResult, error)
	Skip(ctx context.Context, sessionID string) (*entity.OddColorGame, error)
	Expire(ctx context.Context, sessionID string) (*entity.OddColorGame, bool, error)
}

type colorMatchUseCase interface {
	Start(ctx context.Context, sessionID string) (*entity.ColorMatchGame, error)
	State(ctx context.Context, sessionID string) (*entity.ColorMatchGame, error)
	Hide(ctx context.Context, sessionID string, deal int) (*entity.ColorMatchGame, bool, error)
	Flip(ctx context.Context, sessionID string, index int) (*entity.ColorMatchGame, colormatch.FlipResult, error)
}

type flagsUseCase interface {
	Start(ctx context.Context, sessionID string) (*entity.FlagGame, error)
	State(ctx context.Context, sessionID string) (*entity.FlagGame, error)
	Answer(ctx context.Context, sessionID string, action entity.FlagAction) (*entity.FlagGame, flags.AnswerResult, error)
	Stop(ctx context.Context, sessionID string) (*entity.FlagGame, error)
	SetRate(ctx context.Context, sessionID string, rate float64) (*entity.FlagGame, error)
	Expire(ctx context.Context, sessionID string) (*entity.FlagGame, bool, error)
}

type resultsUseCase interface {
	Top(ctx context.Context, game string, limit int) ([]entity.Result, error)
}

type UseCases struct {
	Tiles      tilesUseCase
	Omok       omokUseCase
	OddColor   oddColorUseCase
	ColorMatch colorMatchUseCase
	Flags      flagsUseCase
	Results    resultsUseCase
}

type handlerFunc func(ctx context.Context, conn *connection, message *Message) error

type Server struct {
	logger   *slog.Logger
	useCases UseCases
	upgrader websocket.Upgrader

	// memorize is how long color-match cards stay visible; a var for tests.
	memorize time.Duration

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, useCases UseCases) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		useCases: useCases,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// game pages are served from the http port, the socket listens on its own
			CheckOrigin: func(*http.Request) bool { return true },
		},
		memorize: colormatch.MemorizeDuration,
		handlers: make(map[string]handlerFunc),
	}

	server.handlers["2048:new"] = server.handleTilesNew
	server.handlers["2048:move"] = server.handleTilesMove
	server.handlers["2048:keep"] = server.handleTilesKeep
	server.handlers["2048:state"] = server.handleTilesState

	server.handlers["omok:new"] = server.handleOmokNew
	server.handlers["omok:place"] = server.handleOmokPlace
	server.handlers["omok:state"] = server.handleOmokState

	server.handlers["oddcolor:start"] = server.handleOddColorStart
	server.handlers["oddcolor:pick"] = server.handleOddColorPick
	server.handlers["oddcolor:skip"] = server.handleOddColorSkip
	server.handlers["oddcolor:state"] = server.handleOddColorState

	server.handlers["colormatch:start"] = server.handleColorMatchStart
	server.handlers["colormatch:flip"] = server.handleColorMatchFlip
	server.handlers["colormatch:state"] = server.handleColorMatchState

	server.handlers["flags:start"] = server.handleFlagsStart
	server.handlers["flags:answer"] = server.handleFlagsAnswer
	server.handlers["flags:stop"] = server.handleFlagsStop
	server.handlers["flags:rate"] = server.handleFlagsRate
	server.handlers["flags:state"] = server.handleFlagsState

	server.handlers["results:top"] = server.handleResultsTop

	return server
}

// Handler returns the /ws endpoint; ctx bounds every connection it accepts.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start serves websocket connections until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	that.logger.Info("websocket server started", "port", port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	sessionID, header := that.sessionCookie(r)

	conn, err := that.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(sessionID, conn)
	defer client.close()

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// a cancelled server context unblocks the read loop
	stop := context.AfterFunc(connCtx, func() { _ = conn.Close() })
	defer stop()

	log.Info("websocket connection established", "session", sessionID)

	if err = that.handleMessages(connCtx, client); err != nil {
		log.Info("websocket connection closed", "session", sessionID, "reason", err)
	}
}

// handleMessages reads frames until the connection fails. One transition runs at a time per connection.
func (that *Server) handleMessages(ctx context.Context, client *connection) error {
	log := that.logger.With("method", "handleMessages", "session", client.sessionID)

	client.conn.SetReadLimit(maxMessageSize)

	for {
		var message Message
		if err := client.conn.ReadJSON(&message); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Warn("failed to unmarshal message", "error", err)
				if err = client.sendError("", "malformed message"); err != nil {
					return err
				}
				continue
			}

			return err
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err := client.sendError(message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// sessionCookie reuses a valid user_session cookie or issues a new one in the upgrade response.
func (that *Server) sessionCookie(r *http.Request) (string, http.Header) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if _, err = uuid.Parse(cookie.Value); err == nil {
			return cookie.Value, nil
		}
	}

	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(sessionLifetime),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	that.logger.With("method", "sessionCookie").Info("session cookie not found, new one created", "session", cookie.Value)

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	return cookie.Value, header
}
