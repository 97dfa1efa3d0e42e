package session

import (
	"fmt"

	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
)

func handleRegistryData(ctx *Context, pkt clientbound.RegistryData) error {
	ctx.s.mu.Lock()
	ctx.s.registries[pkt.Registry] = pkt.Data
	ctx.s.mu.Unlock()
	return nil
}

func handleConfigKeepAlive(ctx *Context, pkt clientbound.ConfigKeepAlive) error {
	return ctx.Send(serverbound.ConfigKeepAlive{ID: pkt.ID})
}

func handleConfigPing(ctx *Context, pkt clientbound.ConfigPing) error {
	return ctx.Send(serverbound.ConfigPong{ID: pkt.ID})
}

func handleFinishConfiguration(ctx *Context, pkt clientbound.FinishConfiguration) error {
	if err := ctx.Send(serverbound.FinishConfigurationAck{}); err != nil {
		return err
	}
	return ctx.Transition(protocol.PhasePlay)
}

func handleConfigDisconnect(ctx *Context, pkt clientbound.ConfigDisconnect) error {
	ctx.Disconnect(KindNone, fmt.Errorf("disconnected during configuration: %s", pkt.Reason))
	return nil
}
