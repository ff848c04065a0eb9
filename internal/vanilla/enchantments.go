// internal/vanilla/enchantments.go
package vanilla

// Category is the set of items an enchantment may be rolled onto at a table.
type Category uint8

const (
	CatAll Category = iota
	CatArmor
	CatArmorFeet
	CatArmorLegs
	CatArmorChest
	CatArmorHead
	CatWeapon
	CatDigger
	CatFishingRod
	CatTrident
	CatBreakable
	CatBow
	CatWearable
)

// Rarity weights.
const (
	Common   = 10
	Uncommon = 5
	Rare     = 2
	VeryRare = 1
)

type family uint8

const (
	famNone family = iota
	famProtection
	famDamage
)

// Enchantment is one registry entry. Window bounds are functions of level.
type Enchantment struct {
	ID       int32
	Key      string
	Name     string
	Weight   int32
	Category Category
	MaxLevel int32
	Treasure bool
	Curse    bool
	MinCost  func(level int32) int32
	MaxCost  func(level int32) int32

	family  family
	protect int // protection sub-type, only for famProtection
}

// base is the registry default: 1 + 10*level.
func base(level int32) int32 { return 1 + level*10 }

func linear(start, step int32) func(int32) int32 {
	return func(l int32) int32 { return start + (l-1)*step }
}

func plus(f func(int32) int32, span int32) func(int32) int32 {
	return func(l int32) int32 { return f(l) + span }
}

func fixed(v int32) func(int32) int32 { return func(int32) int32 { return v } }

// Protection sub-types.
const (
	protAll = iota
	protFire
	protFall
	protExplosion
	protProjectile
)

func protection(id int32, key, name string, weight int32, cat Category, kind int, start, step int32) Enchantment {
	return Enchantment{
		ID: id, Key: key, Name: name, Weight: weight, Category: cat, MaxLevel: 4,
		MinCost: linear(start, step),
		MaxCost: plus(linear(start, step), step),
		family:  famProtection, protect: kind,
	}
}

func damage(id int32, key, name string, weight int32, start, step int32) Enchantment {
	return Enchantment{
		ID: id, Key: key, Name: name, Weight: weight, Category: CatWeapon, MaxLevel: 5,
		MinCost: linear(start, step),
		MaxCost: plus(linear(start, step), 20),
		family:  famDamage,
	}
}

// registry lists the enchantments in registration order; the ID is the
// index. The pick generator walks this order, so it must not be sorted.
var registry = []Enchantment{
	protection(0, "protection", "Protection", Common, CatArmor, protAll, 1, 11),
	protection(1, "fire_protection", "Fire Protection", Uncommon, CatArmor, protFire, 10, 8),
	protection(2, "feather_falling", "Feather Falling", Uncommon, CatArmorFeet, protFall, 5, 6),
	protection(3, "blast_protection", "Blast Protection", Rare, CatArmor, protExplosion, 5, 8),
	protection(4, "projectile_protection", "Projectile Protection", Uncommon, CatArmor, protProjectile, 3, 6),
	{ID: 5, Key: "respiration", Name: "Respiration", Weight: Rare, Category: CatArmorHead, MaxLevel: 3,
		MinCost: func(l int32) int32 { return 10 * l }, MaxCost: func(l int32) int32 { return 10*l + 30 }},
	{ID: 6, Key: "aqua_affinity", Name: "Aqua Affinity", Weight: Rare, Category: CatArmorHead, MaxLevel: 1,
		MinCost: fixed(1), MaxCost: fixed(41)},
	{ID: 7, Key: "thorns", Name: "Thorns", Weight: VeryRare, Category: CatArmorChest, MaxLevel: 3,
		MinCost: linear(10, 20), MaxCost: plus(base, 50)},
	{ID: 8, Key: "depth_strider", Name: "Depth Strider", Weight: Rare, Category: CatArmorFeet, MaxLevel: 3,
		MinCost: func(l int32) int32 { return 10 * l }, MaxCost: func(l int32) int32 { return 10*l + 15 }},
	{ID: 9, Key: "frost_walker", Name: "Frost Walker", Weight: Rare, Category: CatArmorFeet, MaxLevel: 2, Treasure: true,
		MinCost: func(l int32) int32 { return 10 * l }, MaxCost: func(l int32) int32 { return 10*l + 15 }},
	{ID: 10, Key: "binding_curse", Name: "Curse of Binding", Weight: VeryRare, Category: CatWearable, MaxLevel: 1, Treasure: true, Curse: true,
		MinCost: fixed(25), MaxCost: fixed(50)},
	damage(11, "sharpness", "Sharpness", Common, 1, 11),
	damage(12, "smite", "Smite", Uncommon, 5, 8),
	damage(13, "bane_of_arthropods", "Bane of Arthropods", Uncommon, 5, 8),
	{ID: 14, Key: "knockback", Name: "Knockback", Weight: Uncommon, Category: CatWeapon, MaxLevel: 2,
		MinCost: linear(5, 20), MaxCost: plus(base, 50)},
	{ID: 15, Key: "fire_aspect", Name: "Fire Aspect", Weight: Rare, Category: CatWeapon, MaxLevel: 2,
		MinCost: linear(10, 20), MaxCost: plus(base, 50)},
	{ID: 16, Key: "looting", Name: "Looting", Weight: Rare, Category: CatWeapon, MaxLevel: 3,
		MinCost: linear(15, 9), MaxCost: plus(base, 50)},
	{ID: 17, Key: "sweeping", Name: "Sweeping Edge", Weight: Rare, Category: CatWeapon, MaxLevel: 3,
		MinCost: linear(5, 9), MaxCost: plus(linear(5, 9), 15)},
	{ID: 18, Key: "efficiency", Name: "Efficiency", Weight: Common, Category: CatDigger, MaxLevel: 5,
		MinCost: linear(1, 10), MaxCost: plus(base, 50)},
	{ID: 19, Key: "silk_touch", Name: "Silk Touch", Weight: VeryRare, Category: CatDigger, MaxLevel: 1,
		MinCost: fixed(15), MaxCost: plus(base, 50)},
	{ID: 20, Key: "unbreaking", Name: "Unbreaking", Weight: Uncommon, Category: CatBreakable, MaxLevel: 3,
		MinCost: linear(5, 8), MaxCost: plus(base, 50)},
	{ID: 21, Key: "fortune", Name: "Fortune", Weight: Rare, Category: CatDigger, MaxLevel: 3,
		MinCost: linear(15, 9), MaxCost: plus(base, 50)},
	{ID: 22, Key: "power", Name: "Power", Weight: Common, Category: CatBow, MaxLevel: 5,
		MinCost: linear(1, 10), MaxCost: plus(linear(1, 10), 15)},
	{ID: 23, Key: "punch", Name: "Punch", Weight: Rare, Category: CatBow, MaxLevel: 2,
		MinCost: linear(12, 20), MaxCost: plus(linear(12, 20), 25)},
	{ID: 24, Key: "flame", Name: "Flame", Weight: Rare, Category: CatBow, MaxLevel: 1,
		MinCost: fixed(20), MaxCost: fixed(50)},
	{ID: 25, Key: "infinity", Name: "Infinity", Weight: VeryRare, Category: CatBow, MaxLevel: 1,
		MinCost: fixed(20), MaxCost: fixed(50)},
	{ID: 26, Key: "luck_of_the_sea", Name: "Luck of the Sea", Weight: Rare, Category: CatFishingRod, MaxLevel: 3,
		MinCost: linear(15, 9), MaxCost: plus(base, 50)},
	{ID: 27, Key: "lure", Name: "Lure", Weight: Rare, Category: CatFishingRod, MaxLevel: 3,
		MinCost: linear(15, 9), MaxCost: plus(base, 50)},
	{ID: 28, Key: "loyalty", Name: "Loyalty", Weight: Uncommon, Category: CatTrident, MaxLevel: 3,
		MinCost: func(l int32) int32 { return 5 + l*7 }, MaxCost: fixed(50)},
	{ID: 29, Key: "impaling", Name: "Impaling", Weight: Rare, Category: CatTrident, MaxLevel: 5,
		MinCost: linear(1, 8), MaxCost: plus(linear(1, 8), 20)},
	{ID: 30, Key: "riptide", Name: "Riptide", Weight: Rare, Category: CatTrident, MaxLevel: 3,
		MinCost: func(l int32) int32 { return 10 + l*7 }, MaxCost: fixed(50)},
	{ID: 31, Key: "channeling", Name: "Channeling", Weight: VeryRare, Category: CatTrident, MaxLevel: 1,
		MinCost: fixed(25), MaxCost: fixed(50)},
	{ID: 32, Key: "mending", Name: "Mending", Weight: Rare, Category: CatBreakable, MaxLevel: 1, Treasure: true,
		MinCost: func(l int32) int32 { return l * 25 }, MaxCost: func(l int32) int32 { return l*25 + 50 }},
	{ID: 33, Key: "vanishing_curse", Name: "Curse of Vanishing", Weight: VeryRare, Category: CatAll, MaxLevel: 1, Treasure: true, Curse: true,
		MinCost: fixed(25), MaxCost: fixed(50)},
}

// Enchantment IDs referenced by the compatibility rules.
const (
	idDepthStrider = 8
	idFrostWalker  = 9
	idLooting      = 16
	idSilkTouch    = 19
	idFortune      = 21
	idInfinity     = 25
	idLuck         = 26
	idLoyalty      = 28
	idRiptide      = 30
	idChanneling   = 31
	idMending      = 32
)

// allows is one side of the host's pairwise check; compatible needs both.
func allows(a, b *Enchantment) bool {
	switch a.family {
	case famProtection:
		if b.family == famProtection {
			if a.protect == b.protect {
				return false
			}
			return a.protect == protFall || b.protect == protFall
		}
	case famDamage:
		return b.family != famDamage
	}
	if a.ID == b.ID {
		return false
	}
	switch a.ID {
	case idSilkTouch:
		return b.ID != idFortune
	case idFortune, idLooting, idLuck:
		return b.ID != idSilkTouch
	case idDepthStrider:
		return b.ID != idFrostWalker
	case idFrostWalker:
		return b.ID != idDepthStrider
	case idInfinity:
		return b.ID != idMending
	case idLoyalty:
		return b.ID != idRiptide
	case idRiptide:
		return b.ID != idLoyalty && b.ID != idChanneling
	}
	return true
}

// compat is the symmetric pairwise table, built once.
var compat = func() [][]bool {
	n := len(registry)
	t := make([][]bool, n)
	for i := range registry {
		t[i] = make([]bool, n)
		for j := range registry {
			t[i][j] = allows(&registry[i], &registry[j]) && allows(&registry[j], &registry[i])
		}
	}
	return t
}()

// Lookup returns the registry entry for id.
func Lookup(id int32) (*Enchantment, bool) {
	if id < 0 || int(id) >= len(registry) {
		return nil, false
	}
	return &registry[id], true
}

// ByKey finds an enchantment by its registry key.
func ByKey(key string) (*Enchantment, bool) {
	for i := range registry {
		if registry[i].Key == key {
			return &registry[i], true
		}
	}
	return nil, false
}

// Enchantments returns the registry in order.
func Enchantments() []Enchantment { return registry }
