package session

import (
	"fmt"
	"log/slog"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
)

// handleLoginHello answers the server's encryption request. The key
// exchange itself is delegated to the host-provided KeyExchangeFunc; the
// resulting shared secret is handed to the transport, which owns the wire
// cipher.
func handleLoginHello(ctx *Context, pkt clientbound.Hello) error {
	kx := ctx.s.opts.KeyExchange
	if kx == nil {
		return Violationf("server requires encryption but no key exchange is configured")
	}
	keyBytes, encChallenge, secret, err := kx(pkt.PublicKey, pkt.Challenge)
	if err != nil {
		return Malformedf("key exchange: %v", err)
	}
	if err := ctx.Send(serverbound.Key{KeyBytes: keyBytes, EncryptedChallenge: encChallenge}); err != nil {
		return err
	}
	if err := ctx.s.transport.EnableEncryption(secret); err != nil {
		return Malformedf("enabling transport encryption: %v", err)
	}
	return nil
}

func handleLoginCompression(ctx *Context, pkt clientbound.LoginCompression) error {
	slog.Debug("compression negotiated", "threshold", pkt.Threshold)
	ctx.s.transport.SetCompressionThreshold(pkt.Threshold)
	return nil
}

// handleCustomQuery answers login plugin queries the way a vanilla client
// does: same transaction id, no payload.
func handleCustomQuery(ctx *Context, pkt clientbound.CustomQuery) error {
	slog.Debug("answering login plugin query", "channel", pkt.Identifier, "transaction", pkt.TransactionID)
	return ctx.Send(serverbound.CustomQueryAnswer{TransactionID: pkt.TransactionID})
}

// handleGameProfile confirms the login: the session adopts the
// authenticated profile, acknowledges, and enters Configuration.
func handleGameProfile(ctx *Context, pkt clientbound.GameProfile) error {
	ctx.s.opts.Profile = model.GameProfile{ID: pkt.ID, Name: pkt.Name}
	if err := ctx.Send(serverbound.LoginAcknowledged{}); err != nil {
		return err
	}
	return ctx.Transition(protocol.PhaseConfiguration)
}

func handleLoginDisconnect(ctx *Context, pkt clientbound.LoginDisconnect) error {
	ctx.Disconnect(KindNone, fmt.Errorf("login refused: %s", pkt.Reason))
	return nil
}
