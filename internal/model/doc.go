// Package model simulates the host's enchanting generators: the level
// generator (three slot levels from one seed) and the pick generator (the
// hidden enchantment list behind each slot).
//
// Everything here is pure and bit-exact. Host data (items, enchantments,
// weights, compatibility) arrives only through Catalog, so the package never
// depends on a particular host version.
package model
