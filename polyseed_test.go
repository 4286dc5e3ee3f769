// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package polyseed

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyseed-go/polyseed/internal"
	"github.com/polyseed-go/polyseed/lang"
	"github.com/polyseed-go/polyseed/wordlist"
)

func TestMain(m *testing.M) {
	if err := wordlist.RegisterDefault(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestRoundtripAllLanguages(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	numLangs := GetNumLangs()
	require.Greater(t, numLangs, 0, "no languages registered")

	for i := 0; i < numLangs; i++ {
		l := GetLang(i)
		if l == nil {
			t.Errorf("Language at index %d is nil", i)
			continue
		}

		t.Run(l.GetLangNameEn(), func(t *testing.T) {
			phrase := seed.Encode(l, CoinMonero)
			require.NotEmpty(t, phrase)

			words := lang.SplitPhrase(phrase)
			assert.Len(t, words, NumWords)

			decodedSeed, decodedLang, err := Decode(phrase, CoinMonero)
			require.NoError(t, err)
			defer decodedSeed.Free()

			assert.Same(t, l, decodedLang)
			assert.Equal(t, seed.birthday, decodedSeed.birthday)
			assert.Equal(t, seed.features, decodedSeed.features)
			assert.Equal(t, seed.secret, decodedSeed.secret)

			key := decodedSeed.Keygen(CoinMonero, 32)
			assert.Len(t, key, 32)
		})
	}
}

// createSeedWithValues builds a seed deterministically from known secret
// bytes, birthday and features, bypassing the random generator. It mirrors
// CreateFromBytes but lets the caller also pin the birthday timestamp.
func createSeedWithValues(secretBytes []byte, birthdayTimestamp uint64, features uint8) (*Seed, error) {
	seedFeatures := makeFeatures(features)
	if !featuresSupported(seedFeatures) {
		return nil, StatusErrUnsupported
	}

	seed := &Seed{
		birthday: birthdayEncode(birthdayTimestamp),
		features: seedFeatures,
	}

	if len(secretBytes) != internal.SecretSize {
		return nil, StatusErrFormat
	}
	copy(seed.secret[:internal.SecretSize], secretBytes)
	seed.secret[internal.SecretSize-1] &= internal.ClearMask

	d := seed.toData()
	p := &internal.GfPoly{}
	internal.DataToPoly(d, p)
	p.Encode()
	seed.checksum = uint16(p.Coeff[0])

	memzero(d.Secret[:])

	return seed, nil
}

func getLangByName(name string) *lang.Language {
	numLangs := GetNumLangs()
	for i := 0; i < numLangs; i++ {
		l := GetLang(i)
		if l != nil && l.GetLangNameEn() == name {
			return l
		}
	}
	return nil
}

func TestCreateFromBytesDeterministic(t *testing.T) {
	secret := make([]byte, internal.SecretSize)
	for i := range secret {
		secret[i] = byte(i * 7)
	}

	seed, err := createSeedWithValues(secret, 1638446400, 0)
	require.NoError(t, err)
	defer seed.Free()

	langEn := getLangByName("English")
	require.NotNil(t, langEn)

	phrase := seed.Encode(langEn, CoinMonero)
	decoded, decodedLang, err := Decode(phrase, CoinMonero)
	require.NoError(t, err)
	defer decoded.Free()

	assert.Same(t, langEn, decodedLang)
	assert.Equal(t, seed.secret, decoded.secret)
	assert.Equal(t, seed.birthday, decoded.birthday)

	// Deterministic inputs should always produce the same phrase.
	again, err := createSeedWithValues(secret, 1638446400, 0)
	require.NoError(t, err)
	defer again.Free()
	assert.Equal(t, phrase, again.Encode(langEn, CoinMonero))
}

func TestDecodeWrongCoinFailsChecksum(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	langEn := getLangByName("English")
	require.NotNil(t, langEn)

	phrase := seed.Encode(langEn, CoinMonero)

	_, _, err = Decode(phrase, CoinAeon)
	assert.Equal(t, StatusErrChecksum, err)
}

func TestDecodeSwappedWordsFailsChecksum(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	langEn := getLangByName("English")
	require.NotNil(t, langEn)

	phrase := seed.Encode(langEn, CoinMonero)
	words := strings.Split(phrase, langEn.Separator)

	// Swap the first two words: any swap that changes the polynomial
	// value should be caught by the single check digit.
	if words[0] == words[1] {
		t.Skip("words happened to collide, cannot construct a corrupt phrase this way")
	}
	words[0], words[1] = words[1], words[0]
	corrupted := strings.Join(words, langEn.Separator)

	_, _, err = Decode(corrupted, CoinMonero)
	assert.Equal(t, StatusErrChecksum, err)
}

func TestDecodeWrongWordCount(t *testing.T) {
	_, _, err := Decode("one two three", CoinMonero)
	assert.Equal(t, StatusErrNumWords, err)
}

func TestDecodeUnknownWords(t *testing.T) {
	phrase := strings.Repeat("zzzznotaword ", NumWords)
	_, _, err := Decode(strings.TrimSpace(phrase), CoinMonero)
	assert.Equal(t, StatusErrLang, err)
}

func TestEnableFeaturesThenCreate(t *testing.T) {
	saved := reservedFeatures
	defer func() { reservedFeatures = saved }()
	reservedFeatures = featureMask ^ encryptedMask

	n := EnableFeatures(userFeaturesMask)
	assert.Equal(t, userFeatures, n)

	seed, err := Create(userFeaturesMask)
	require.NoError(t, err)
	defer seed.Free()

	assert.NotZero(t, seed.GetFeature(1))
	assert.NotZero(t, seed.GetFeature(2))
	assert.NotZero(t, seed.GetFeature(4))
}

func TestCryptIsInvolution(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	secretBefore := seed.secret
	assert.False(t, seed.IsEncrypted())

	seed.Crypt("hunter2")
	assert.True(t, seed.IsEncrypted())
	assert.NotEqual(t, secretBefore, seed.secret)

	seed.Crypt("hunter2")
	assert.False(t, seed.IsEncrypted())
	assert.Equal(t, secretBefore, seed.secret)
}

func TestCryptWrongPasswordDoesNotRestoreSecret(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	original := seed.secret
	seed.Crypt("correct horse battery staple")
	require.True(t, seed.IsEncrypted())

	seed.Crypt("wrong password")

	// Decrypting with the wrong password toggles the encrypted bit back
	// off but yields a different (garbage) secret, never the original.
	assert.False(t, seed.IsEncrypted())
	assert.NotEqual(t, original, seed.secret)
}

func TestStoreLoadRoundtrip(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	var storage Storage
	seed.Store(&storage)

	loaded, err := Load(&storage)
	require.NoError(t, err)
	defer loaded.Free()

	assert.Equal(t, seed.secret, loaded.secret)
	assert.Equal(t, seed.birthday, loaded.birthday)
	assert.Equal(t, seed.features, loaded.features)
	assert.Equal(t, seed.checksum, loaded.checksum)
}

func TestStoreLoadRoundtripEncrypted(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	seed.Crypt("hunter2")
	require.True(t, seed.IsEncrypted())

	var storage Storage
	seed.Store(&storage)

	loaded, err := Load(&storage)
	require.NoError(t, err, "an encrypted seed must persist and load identically (spec.md §4.10/§8)")
	defer loaded.Free()

	assert.True(t, loaded.IsEncrypted())
	assert.Equal(t, seed.secret, loaded.secret)
	assert.Equal(t, seed.features, loaded.features)
	assert.Equal(t, seed.checksum, loaded.checksum)

	loaded.Crypt("hunter2")
	assert.False(t, loaded.IsEncrypted())
}

func TestLoadRejectsBadHeader(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	var storage Storage
	seed.Store(&storage)
	storage[0] ^= 0xFF

	_, err = Load(&storage)
	assert.Equal(t, StatusErrFormat, err)
}

func TestLoadRejectsReservedFeatureBit(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	var storage Storage
	seed.Store(&storage)

	// Bit 3 (0x08) of the features/birthday word is reserved and must
	// always be zero on the wire, independent of EnableFeatures state.
	// Byte 9 holds features<<2 | birthday's top 2 bits (little-endian).
	storage[9] |= 0x08 << 2

	_, err = Load(&storage)
	assert.Equal(t, StatusErrFormat, err)
}

func TestGetBirthdayClampsUnknownTime(t *testing.T) {
	seed, err := createSeedWithValues(make([]byte, internal.SecretSize), ^uint64(0), 0)
	require.NoError(t, err)
	defer seed.Free()

	assert.Equal(t, genesis, seed.GetBirthday())
}

func TestKeygenIsDeterministicPerCoin(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	key1 := seed.Keygen(CoinMonero, 32)
	key2 := seed.Keygen(CoinMonero, 32)
	assert.Equal(t, key1, key2)

	keyOtherCoin := seed.Keygen(CoinAeon, 32)
	assert.NotEqual(t, key1, keyOtherCoin)
}

// failingAllocate simulates a host whose allocator is exhausted, to
// exercise the MEMORY status path without needing to actually run the
// process out of memory.
func failingAllocate(size int) ([]byte, error) {
	return nil, errors.New("allocation refused")
}

func TestCreateReturnsMemoryErrorWhenAllocatorFails(t *testing.T) {
	defer Inject(Dependencies{})
	Inject(Dependencies{Allocate: failingAllocate})

	seed, err := Create(0)
	assert.Nil(t, seed)
	assert.Equal(t, StatusErrMemory, err)
}

func TestCreateFromBytesReturnsMemoryErrorWhenAllocatorFails(t *testing.T) {
	defer Inject(Dependencies{})
	Inject(Dependencies{Allocate: failingAllocate})

	seed, err := CreateFromBytes(make([]byte, internal.SecretSize), 0)
	assert.Nil(t, seed)
	assert.Equal(t, StatusErrMemory, err)
}

func TestLoadReturnsMemoryErrorWhenAllocatorFails(t *testing.T) {
	seed, err := Create(0)
	require.NoError(t, err)
	defer seed.Free()

	var storage Storage
	seed.Store(&storage)

	defer Inject(Dependencies{})
	Inject(Dependencies{Allocate: failingAllocate})

	loaded, err := Load(&storage)
	assert.Nil(t, loaded)
	assert.Equal(t, StatusErrMemory, err)
}
