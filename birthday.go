// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package polyseed

// The birthday field stores a coarse creation date, quantized to a twelfth
// of a year, so a wallet can bound how much of the chain it needs to scan
// for the seed's first transaction without leaking an exact timestamp.
const (
	// genesis is the earliest representable birthday, 2021-11-01 12:00 UTC.
	genesis = uint64(1635768000)

	// quantum is 1/12 of a Gregorian year (30.436875 days), the resolution
	// a birthday value is rounded down to.
	quantum = uint64(2629746)

	DateBits = 10
	dateBits = DateBits

	DateMask = (1 << DateBits) - 1
	dateMask = DateMask
)

// birthdayEncode quantizes a Unix timestamp into a DateBits-wide value
// relative to genesis. A timestamp before genesis, or the sentinel
// ^uint64(0) some platforms return for a failed clock read, is treated as
// "unknown" and encodes to 0.
func birthdayEncode(timestamp uint64) uint16 {
	if timestamp == ^uint64(0) || timestamp < genesis {
		return 0
	}
	elapsed := (timestamp - genesis) / quantum
	return uint16(elapsed & dateMask)
}

// birthdayDecode recovers the Unix timestamp at the start of the quantum a
// birthday value refers to.
func birthdayDecode(birthday uint16) uint64 {
	return genesis + uint64(birthday)*quantum
}
