package session

import (
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
)

// registerBuiltins wires the handlers that implement the protocol flows
// themselves. They are registered before any consumer handler, so
// consumers always observe a world the built-ins have already updated.
func (s *Session) registerBuiltins() {
	// Status flow.
	Handle(s, protocol.PhaseStatus, handleStatusResponse)
	Handle(s, protocol.PhaseStatus, handlePongResponse)

	// Login flow.
	Handle(s, protocol.PhaseLogin, handleLoginHello)
	Handle(s, protocol.PhaseLogin, handleLoginCompression)
	Handle(s, protocol.PhaseLogin, handleCustomQuery)
	Handle(s, protocol.PhaseLogin, handleGameProfile)
	Handle(s, protocol.PhaseLogin, handleLoginDisconnect)

	// Configuration flow.
	Handle(s, protocol.PhaseConfiguration, handleRegistryData)
	Handle(s, protocol.PhaseConfiguration, handleConfigKeepAlive)
	Handle(s, protocol.PhaseConfiguration, handleConfigPing)
	Handle(s, protocol.PhaseConfiguration, handleFinishConfiguration)
	Handle(s, protocol.PhaseConfiguration, handleConfigDisconnect)
	Allow[clientbound.UpdateTags](s, protocol.PhaseConfiguration)

	// Play: lifecycle.
	Handle(s, protocol.PhasePlay, handlePlayLogin)
	Handle(s, protocol.PhasePlay, handlePlayKeepAlive)
	Handle(s, protocol.PhasePlay, handlePlayPing)
	Handle(s, protocol.PhasePlay, handlePlayDisconnect)
	Allow[clientbound.GameEvent](s, protocol.PhasePlay)

	// Play: entity synchronization.
	Handle(s, protocol.PhasePlay, handleAddEntity)
	Handle(s, protocol.PhasePlay, handleRemoveEntities)
	Handle(s, protocol.PhasePlay, handleMoveEntityPos)
	Handle(s, protocol.PhasePlay, handleMoveEntityPosRot)
	Handle(s, protocol.PhasePlay, handleTeleportEntity)
	Handle(s, protocol.PhasePlay, handleSetEntityMotion)
	Handle(s, protocol.PhasePlay, handleSetEntityData)
	Handle(s, protocol.PhasePlay, handleSetEquipment)

	// Play: terrain synchronization.
	Handle(s, protocol.PhasePlay, handleLevelChunk)
	Handle(s, protocol.PhasePlay, handleForgetChunk)
	Handle(s, protocol.PhasePlay, handleBlockUpdate)
	Handle(s, protocol.PhasePlay, handleSectionBlocksUpdate)
	Handle(s, protocol.PhasePlay, handleChunkCacheCenter)
	Handle(s, protocol.PhasePlay, handleChunkCacheRadius)

	// Play: local player.
	Handle(s, protocol.PhasePlay, handlePlayerPosition)
	Handle(s, protocol.PhasePlay, handleSetHealth)
	Handle(s, protocol.PhasePlay, handleSetHeldSlot)
	Handle(s, protocol.PhasePlay, handleContainerSetSlot)
	Handle(s, protocol.PhasePlay, handleContainerSetContent)

	// Play: chat is legal but has no built-in behavior; consumers attach
	// their own handlers.
	Allow[clientbound.SystemChat](s, protocol.PhasePlay)
	Allow[clientbound.PlayerChat](s, protocol.PhasePlay)
}
