package session

import (
	"errors"
	"time"

	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
)

// The status flow is a terminal mini-exchange: request, response, ping,
// pong, disconnect.

func handleStatusResponse(ctx *Context, pkt clientbound.StatusResponse) error {
	ctx.s.mu.Lock()
	ctx.s.status = pkt.Payload
	ctx.s.mu.Unlock()
	return ctx.Send(serverbound.PingRequest{Time: time.Now().UnixMilli()})
}

func handlePongResponse(ctx *Context, pkt clientbound.PongResponse) error {
	ctx.Disconnect(KindNone, errors.New("status flow complete"))
	return nil
}
