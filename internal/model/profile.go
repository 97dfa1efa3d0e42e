package model

import "github.com/google/uuid"

// GameProfile is the authenticated identity of a player, as confirmed by
// the server during login.
type GameProfile struct {
	ID   uuid.UUID
	Name string
}

// OfflineProfile derives the profile an offline-mode server would assign to
// the given username (version-3 UUID of "OfflinePlayer:<name>").
func OfflineProfile(name string) GameProfile {
	return GameProfile{
		ID:   uuid.NewMD5(uuid.Nil, []byte("OfflinePlayer:"+name)),
		Name: name,
	}
}
