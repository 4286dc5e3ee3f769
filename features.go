// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package polyseed

// Seeds carry a small bitmask of optional features alongside the secret.
// The bottom userFeatures bits are free for a host application to assign
// meaning to (an encoding hint, a derivation variant, anything it likes).
// Above those sit reservedFeatureCount bits: bit 3 is reserved and must
// always decode to zero, and bit 4 (the top of the reserved range) marks
// password encryption.
const (
	featureBits = 5
	featureMask = (1 << featureBits) - 1

	reservedFeatureCount = 2
	userFeatures         = 3
	userFeaturesMask     = (1 << userFeatures) - 1

	encryptedMask = 1 << (userFeatures + reservedFeatureCount - 1)
)

// makeFeatures keeps only the caller-assignable bits of a feature request.
func makeFeatures(requested uint8) uint8 {
	return requested & userFeaturesMask
}

// getFeatures reads back the bits of features selected by mask, restricted
// to the user-assignable range.
func getFeatures(features, mask uint8) uint8 {
	return features & (mask & userFeaturesMask)
}

// isEncrypted reports whether a feature value has the password-encryption
// bit set.
func isEncrypted(features uint8) bool {
	return features&encryptedMask != 0
}

// featuresSupported reports whether features sets none of the bits this
// build has marked reserved (see EnableFeatures).
func featuresSupported(features uint8) bool {
	return features&reservedFeatures == 0
}

// EnableFeatures opts this build into up to userFeatures optional,
// caller-defined seed features. mask's low userFeatures bits select which
// ones to enable; bits above that are ignored. Features left disabled stay
// reserved, so a seed that sets them will be rejected as unsupported.
//
// It returns how many of the requested features were actually enabled.
func EnableFeatures(mask uint8) int {
	reservedFeatures = featureMask ^ encryptedMask
	enabled := 0
	for i := 0; i < userFeatures; i++ {
		bit := uint8(1) << i
		if mask&bit != 0 {
			reservedFeatures ^= bit
			enabled++
		}
	}
	return enabled
}
