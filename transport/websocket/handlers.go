package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/flags"
	"github.com/rocketscienceinc/arcade-backend/internal/tiles"
)

const (
	errInvalidPayload = "invalid payload"
	errInternal       = "internal error"

	oddColorDeadline = "oddcolor:deadline"
	flagsDeadline    = "flags:deadline"
	colorMatchHide   = "colormatch:hide"
)

// reply sends the game state for action. Rejected input still answers with the unchanged state.
func reply[T any](conn *connection, action string, game *T, err error, build func() any) error {
	if err != nil {
		if !apperror.IsRejection(err) {
			if sendErr := conn.sendError(action, errInternal); sendErr != nil {
				return errors.Join(err, sendErr)
			}

			return err
		}

		if game == nil {
			return conn.sendError(action, err.Error())
		}
	}

	return conn.send(action, build())
}

func decode(conn *connection, message *Message, target any) bool {
	if err := json.Unmarshal(message.Payload, target); err != nil {
		_ = conn.sendError(message.Action, errInvalidPayload)
		return false
	}

	return true
}

func (that *Server) handleTilesNew(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Tiles.New(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return TilesResponse{Game: game} })
}

func (that *Server) handleTilesState(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Tiles.State(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return TilesResponse{Game: game} })
}

func (that *Server) handleTilesKeep(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Tiles.KeepPlaying(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return TilesResponse{Game: game} })
}

func (that *Server) handleTilesMove(ctx context.Context, conn *connection, message *Message) error {
	var payload MovePayload
	if !decode(conn, message, &payload) {
		return nil
	}

	dir, ok := moveDirection(payload)
	if !ok {
		return conn.sendError(message.Action, apperror.ErrUnknownDirection.Error())
	}

	game, outcome, err := that.useCases.Tiles.Move(ctx, conn.sessionID, dir)

	return reply(conn, message.Action, game, err, func() any {
		if err != nil {
			return TilesResponse{Game: game}
		}
		return TilesResponse{Game: game, Outcome: &outcome}
	})
}

func moveDirection(payload MovePayload) (entity.Direction, bool) {
	switch {
	case payload.Direction != "":
		return payload.Direction, payload.Direction.IsValid()
	case payload.Key != "":
		return tiles.DirectionFromKey(payload.Key)
	default:
		return tiles.DirectionFromDelta(payload.DX, payload.DY)
	}
}

func (that *Server) handleOmokNew(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Omok.New(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return OmokResponse{Game: game} })
}

func (that *Server) handleOmokState(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Omok.State(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return OmokResponse{Game: game} })
}

func (that *Server) handleOmokPlace(ctx context.Context, conn *connection, message *Message) error {
	var payload CellPayload
	if !decode(conn, message, &payload) {
		return nil
	}

	game, placement, err := that.useCases.Omok.Place(ctx, conn.sessionID, payload.Row, payload.Col)

	return reply(conn, message.Action, game, err, func() any {
		if err != nil {
			return OmokResponse{Game: game}
		}
		return OmokResponse{Game: game, Placement: &placement}
	})
}

func (that *Server) handleOddColorStart(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.OddColor.Start(ctx, conn.sessionID)
	if err == nil {
		that.scheduleOddColorDeadline(ctx, conn, game.Deadline)
	}

	return reply(conn, message.Action, game, err, func() any { return oddColorResponse(game) })
}

func (that *Server) handleOddColorState(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.OddColor.State(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return oddColorResponse(game) })
}

func (that *Server) handleOddColorPick(ctx context.Context, conn *connection, message *Message) error {
	var payload IndexPayload
	if !decode(conn, message, &payload) {
		return nil
	}

	game, pick, err := that.useCases.OddColor.Pick(ctx, conn.sessionID, payload.Index)

	return reply(conn, message.Action, game, err, func() any {
		response := oddColorResponse(game)
		if err == nil {
			response.Pick = &pick
		}
		return response
	})
}

func (that *Server) handleOddColorSkip(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.OddColor.Skip(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return oddColorResponse(game) })
}

func (that *Server) scheduleOddColorDeadline(ctx context.Context, conn *connection, deadline time.Time) {
	conn.timers.schedule(oddColorDeadline, time.Until(deadline), func() {
		game, expired, err := that.useCases.OddColor.Expire(ctx, conn.sessionID)
		if err != nil {
			that.logger.Error("failed to expire odd color game", "session", conn.sessionID, "error", err)
			return
		}

		if expired {
			if err = conn.send("oddcolor:state", oddColorResponse(game)); err != nil {
				that.logger.Warn("failed to push odd color state", "session", conn.sessionID, "error", err)
			}
		}
	})
}

func oddColorResponse(game *entity.OddColorGame) OddColorResponse {
	return OddColorResponse{Game: game, Remaining: game.Remaining(time.Now())}
}

func (that *Server) handleColorMatchStart(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.ColorMatch.Start(ctx, conn.sessionID)
	if err == nil {
		that.scheduleColorMatchHide(ctx, conn, game.Deal)
	}

	return reply(conn, message.Action, game, err, func() any { return ColorMatchResponse{Game: game} })
}

func (that *Server) handleColorMatchState(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.ColorMatch.State(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return ColorMatchResponse{Game: game} })
}

func (that *Server) handleColorMatchFlip(ctx context.Context, conn *connection, message *Message) error {
	var payload IndexPayload
	if !decode(conn, message, &payload) {
		return nil
	}

	game, flip, err := that.useCases.ColorMatch.Flip(ctx, conn.sessionID, payload.Index)
	if err == nil && flip.RoundComplete && !flip.Finished {
		that.scheduleColorMatchHide(ctx, conn, game.Deal)
	}

	return reply(conn, message.Action, game, err, func() any {
		if err != nil {
			return ColorMatchResponse{Game: game}
		}
		return ColorMatchResponse{Game: game, Flip: &flip}
	})
}

// scheduleColorMatchHide turns the cards of board deal face down once the memorize phase is over.
func (that *Server) scheduleColorMatchHide(ctx context.Context, conn *connection, deal int) {
	conn.timers.schedule(colorMatchHide, that.memorize, func() {
		game, hidden, err := that.useCases.ColorMatch.Hide(ctx, conn.sessionID, deal)
		if err != nil {
			that.logger.Error("failed to hide color match cards", "session", conn.sessionID, "error", err)
			return
		}

		if hidden {
			if err = conn.send("colormatch:state", ColorMatchResponse{Game: game}); err != nil {
				that.logger.Warn("failed to push color match state", "session", conn.sessionID, "error", err)
			}
		}
	})
}

func (that *Server) handleFlagsStart(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Flags.Start(ctx, conn.sessionID)
	if err == nil {
		that.scheduleFlagsDeadline(ctx, conn, game.Deadline)
	}

	return reply(conn, message.Action, game, err, func() any { return flagsResponse(game) })
}

func (that *Server) handleFlagsState(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Flags.State(ctx, conn.sessionID)

	return reply(conn, message.Action, game, err, func() any { return flagsResponse(game) })
}

func (that *Server) handleFlagsAnswer(ctx context.Context, conn *connection, message *Message) error {
	var payload AnswerPayload
	if !decode(conn, message, &payload) {
		return nil
	}

	action := payload.Action
	if action == "" {
		action, _ = flags.ActionFromKey(payload.Key)
	}

	game, answer, err := that.useCases.Flags.Answer(ctx, conn.sessionID, action)

	return reply(conn, message.Action, game, err, func() any {
		response := flagsResponse(game)
		if err == nil {
			response.Answer = &answer
		}
		return response
	})
}

func (that *Server) handleFlagsStop(ctx context.Context, conn *connection, message *Message) error {
	game, err := that.useCases.Flags.Stop(ctx, conn.sessionID)
	if err == nil {
		conn.timers.stop(flagsDeadline)
	}

	return reply(conn, message.Action, game, err, func() any { return flagsResponse(game) })
}

func (that *Server) handleFlagsRate(ctx context.Context, conn *connection, message *Message) error {
	var payload RatePayload
	if !decode(conn, message, &payload) {
		return nil
	}

	game, err := that.useCases.Flags.SetRate(ctx, conn.sessionID, payload.Rate)

	return reply(conn, message.Action, game, err, func() any { return flagsResponse(game) })
}

func (that *Server) scheduleFlagsDeadline(ctx context.Context, conn *connection, deadline time.Time) {
	conn.timers.schedule(flagsDeadline, time.Until(deadline), func() {
		game, expired, err := that.useCases.Flags.Expire(ctx, conn.sessionID)
		if err != nil {
			that.logger.Error("failed to expire flag game", "session", conn.sessionID, "error", err)
			return
		}

		if expired {
			if err = conn.send("flags:state", flagsResponse(game)); err != nil {
				that.logger.Warn("failed to push flag state", "session", conn.sessionID, "error", err)
			}
		}
	})
}

func flagsResponse(game *entity.FlagGame) FlagsResponse {
	return FlagsResponse{Game: game, Remaining: game.Remaining(time.Now())}
}

func (that *Server) handleResultsTop(ctx context.Context, conn *connection, message *Message) error {
	var payload TopPayload
	if !decode(conn, message, &payload) {
		return nil
	}

	results, err := that.useCases.Results.Top(ctx, payload.Game, payload.Limit)
	if errors.Is(err, apperror.ErrUnknownGame) {
		return conn.sendError(message.Action, apperror.ErrUnknownGame.Error())
	}

	if err != nil {
		if sendErr := conn.sendError(message.Action, errInternal); sendErr != nil {
			return errors.Join(err, sendErr)
		}

		return err
	}

	return conn.send(message.Action, ResultsResponse{Game: payload.Game, Results: results})
}
