// internal/vanilla/items.go
package vanilla

type slot uint8

const (
	slotNone slot = iota
	slotHead
	slotChest
	slotLegs
	slotFeet
)

type kind uint8

const (
	kindOther kind = iota
	kindArmor
	kindSword
	kindTool // pickaxe, axe, shovel
	kindHoe
	kindBow
	kindFishingRod
	kindTrident
	kindBook
	kindEnchantedBook
	kindWearable // elytra, pumpkin, heads
)

// ItemDef is the subset of host item behaviour the generators read.
type ItemDef struct {
	Key            string
	Enchantability int32
	Damageable     bool

	kind kind
	slot slot
}

func (d *ItemDef) accepts(c Category) bool {
	switch c {
	case CatAll:
		for k := CatArmor; k <= CatWearable; k++ {
			if d.accepts(k) {
				return true
			}
		}
		return false
	case CatArmor:
		return d.kind == kindArmor
	case CatArmorFeet:
		return d.kind == kindArmor && d.slot == slotFeet
	case CatArmorLegs:
		return d.kind == kindArmor && d.slot == slotLegs
	case CatArmorChest:
		return d.kind == kindArmor && d.slot == slotChest
	case CatArmorHead:
		return d.kind == kindArmor && d.slot == slotHead
	case CatWeapon:
		return d.kind == kindSword
	case CatDigger:
		return d.kind == kindTool
	case CatFishingRod:
		return d.kind == kindFishingRod
	case CatTrident:
		return d.kind == kindTrident
	case CatBreakable:
		return d.Damageable
	case CatBow:
		return d.kind == kindBow
	case CatWearable:
		return d.kind == kindArmor || d.kind == kindWearable
	}
	return false
}

var items = map[string]*ItemDef{}

func def(d ItemDef) {
	dd := d
	items[d.Key] = &dd
}

func init() {
	armor := []struct {
		material string
		ench     int32
	}{
		{"leather", 15}, {"chainmail", 12}, {"iron", 9}, {"golden", 25}, {"diamond", 10},
	}
	pieces := []struct {
		name string
		slot slot
	}{
		{"helmet", slotHead}, {"chestplate", slotChest}, {"leggings", slotLegs}, {"boots", slotFeet},
	}
	for _, m := range armor {
		for _, p := range pieces {
			def(ItemDef{Key: m.material + "_" + p.name, Enchantability: m.ench, Damageable: true, kind: kindArmor, slot: p.slot})
		}
	}
	def(ItemDef{Key: "turtle_helmet", Enchantability: 9, Damageable: true, kind: kindArmor, slot: slotHead})

	tools := []struct {
		material string
		ench     int32
	}{
		{"wooden", 15}, {"stone", 5}, {"iron", 14}, {"golden", 22}, {"diamond", 10},
	}
	for _, m := range tools {
		def(ItemDef{Key: m.material + "_sword", Enchantability: m.ench, Damageable: true, kind: kindSword})
		for _, t := range []string{"pickaxe", "axe", "shovel"} {
			def(ItemDef{Key: m.material + "_" + t, Enchantability: m.ench, Damageable: true, kind: kindTool})
		}
		// Hoes do not report an enchantability, so the table refuses them.
		def(ItemDef{Key: m.material + "_hoe", Damageable: true, kind: kindHoe})
	}

	def(ItemDef{Key: "bow", Enchantability: 1, Damageable: true, kind: kindBow})
	def(ItemDef{Key: "fishing_rod", Enchantability: 1, Damageable: true, kind: kindFishingRod})
	def(ItemDef{Key: "trident", Enchantability: 1, Damageable: true, kind: kindTrident})
	def(ItemDef{Key: "book", Enchantability: 1, kind: kindBook})
	def(ItemDef{Key: "enchanted_book", kind: kindEnchantedBook})

	def(ItemDef{Key: "shears", Damageable: true})
	def(ItemDef{Key: "flint_and_steel", Damageable: true})
	def(ItemDef{Key: "carrot_on_a_stick", Damageable: true})
	def(ItemDef{Key: "shield", Damageable: true})
	def(ItemDef{Key: "elytra", Damageable: true, kind: kindWearable})
	def(ItemDef{Key: "carved_pumpkin", kind: kindWearable})
	def(ItemDef{Key: "stick"})
}

// Item looks up an item definition by registry key.
func Item(key string) (*ItemDef, bool) {
	d, ok := items[key]
	return d, ok
}

// ItemKeys returns every known item key (unordered).
func ItemKeys() []string {
	out := make([]string, 0, len(items))
	for k := range items {
		out = append(out, k)
	}
	return out
}
