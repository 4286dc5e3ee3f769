// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package polyseed

import (
	"crypto/rand"
	"crypto/sha256"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/polyseed-go/polyseed/lang"
)

// Dependencies holds the callbacks the library consumes instead of
// reaching for global state directly. This mirrors the C reference
// implementation's polyseed_dependency/polyseed_inject split: random
// bytes, PBKDF2-HMAC-SHA256, Unicode normalization and the wall clock are
// all supplied by the host, not hard-coded. Memory zeroization is always
// the package's own volatile-write loop (see memzero) since there's
// nothing a host could usefully override there.
type Dependencies struct {
	// RandBytes fills b with cryptographically secure random bytes.
	RandBytes func(b []byte) error

	// PBKDF2SHA256 derives keyLen bytes from password and salt using
	// HMAC-SHA256 as the PRF.
	PBKDF2SHA256 func(password, salt []byte, iterations, keyLen int) []byte

	// NFC returns the NFC (composed) form of str.
	NFC func(str string) string

	// NFKD returns the NFKD (compatibility-decomposed) form of str.
	NFKD func(str string) string

	// Time returns the current unix time, or ^uint64(0) if unknown.
	// If nil, defaults to the system clock.
	Time func() uint64

	// Allocate reserves size bytes of scratch memory, returning an error
	// if none is available. It mirrors the C reference's optional
	// alloc/free pair (polyseed_dependency.alloc): the default just calls
	// make(), since Go's heap allocator doesn't fail synchronously the
	// way a C allocator can, but a host embedding this package under a
	// hard memory ceiling can inject one that does.
	Allocate func(size int) ([]byte, error)

	// Free releases memory obtained from Allocate. The default is a
	// no-op; Go's garbage collector reclaims make()'d slices on its own; a
	// custom Allocate paired with a pool or arena should pair it with a
	// matching Free.
	Free func(b []byte)
}

var deps Dependencies

func init() {
	Inject(Dependencies{})
}

// Inject installs the dependency callbacks used by the rest of the
// package. Every callback left nil is replaced by its default (crypto/rand,
// x/crypto's PBKDF2, x/text's normalization forms, the system clock, and
// make()/no-op for Allocate/Free), extending polyseed_inject's behavior of
// filling in stdlib_time.
//
// Inject is not safe to call concurrently with other package operations;
// per spec.md §5 the injected dependency table is process-wide mutable
// state that should be treated as write-once at startup.
func Inject(d Dependencies) {
	if d.RandBytes == nil {
		d.RandBytes = defaultRandBytes
	}
	if d.PBKDF2SHA256 == nil {
		d.PBKDF2SHA256 = defaultPBKDF2SHA256
	}
	if d.NFC == nil {
		d.NFC = defaultNFC
	}
	if d.NFKD == nil {
		d.NFKD = defaultNFKD
	}
	if d.Time == nil {
		d.Time = defaultTime
	}
	if d.Allocate == nil {
		d.Allocate = defaultAllocate
	}
	if d.Free == nil {
		d.Free = defaultFree
	}
	deps = d

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		runLangSelfCheck()
	}
}

// checkDeps asserts that the dependency table is fully populated. It
// only ever fires if a caller manages to zero out `deps` directly (it
// cannot be reached from outside the package), so this is a defensive
// backstop rather than a real runtime condition — see spec.md §7 tier
// (a): programmer errors are signaled by assertion, not returned.
func checkDeps() {
	if deps.RandBytes == nil || deps.PBKDF2SHA256 == nil || deps.NFC == nil ||
		deps.NFKD == nil || deps.Time == nil || deps.Allocate == nil || deps.Free == nil {
		panic(errors.New("polyseed: dependencies not injected"))
	}
}

func defaultRandBytes(b []byte) error {
	_, err := rand.Read(b)
	return err
}

func defaultPBKDF2SHA256(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

func defaultNFC(str string) string {
	return norm.NFC.String(str)
}

func defaultNFKD(str string) string {
	return norm.NFKD.String(str)
}

func defaultTime() uint64 {
	return uint64(time.Now().Unix())
}

func defaultAllocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func defaultFree(b []byte) {}

// memzero securely erases b. The KeepAlive call prevents the compiler
// from proving the overwrite loop is dead after b's last real use and
// eliding it, per spec.md §9's note that zeroization must not be
// optimized away.
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// runLangSelfCheck mirrors polyseed_inject's "#ifndef NDEBUG" language
// self-test: Inject runs it only while zerolog's global level admits debug
// messages. It is a sanity check on the registered wordlists, not
// something correct callers should ever see fail.
func runLangSelfCheck() {
	log.Debug().Int("num_langs", lang.GetNumLangs()).Msg("polyseed: running language registry self-check")
	if err := lang.DefaultRegistry.SelfCheck(); err != nil {
		log.Warn().Err(errors.WithStack(err)).Msg("polyseed: language registry self-check failed")
	}
}
