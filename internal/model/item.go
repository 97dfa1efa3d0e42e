package model

// ItemStack is one inventory slot's worth of items. A zero ItemStack is the
// empty slot.
type ItemStack struct {
	ItemID int32
	Count  int32
}

// Empty reports whether the stack holds no items.
func (s ItemStack) Empty() bool {
	return s.Count == 0
}

// Inventory slot layout of the player container, matching the vanilla
// player window: 0 = crafting result, 1-4 crafting grid, 5-8 armor,
// 9-35 main inventory, 36-44 hotbar, 45 offhand.
const (
	InventorySize    = 46
	HotbarStart      = 36
	HotbarSize       = 9
	OffhandSlot      = 45
	ArmorStart       = 5
	MainInventoryLow = 9
)

// HotbarSlotIndex converts a hotbar index (0-8) to its container slot.
func HotbarSlotIndex(hotbar int32) int32 {
	return HotbarStart + hotbar
}

// ValidHotbar reports whether the index is a legal hotbar position.
func ValidHotbar(hotbar int32) bool {
	return hotbar >= 0 && hotbar < HotbarSize
}
