// Package codegen draws random display codes from a fixed alphabet.
//
// The source is deliberately non-cryptographic: the codes are cosmetic
// display strings, and switching to crypto/rand would change the observable
// output distribution. Do not upgrade silently.
package codegen

import (
	"math/rand/v2"
	"time"

	"github.com/okarpushin/otpdesk/internal/models"
)

const (
	AlphabetNumeric      = "0123456789"
	AlphabetAlphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Alphabet returns the character set for the given code type.
// Unknown types fall back to the numeric alphabet.
func Alphabet(t models.CodeType) string {
	if t == models.CodeTypeAlphanumeric {
		return AlphabetAlphanumeric
	}
	return AlphabetNumeric
}

// Generator draws codes from an injectable random source so tests can seed it.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator over rnd. A nil rnd gets a time-seeded source.
func New(rnd *rand.Rand) *Generator {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Generator{rnd: rnd}
}

// Draw returns a code of exactly length characters drawn uniformly from the
// alphabet for t.
func (g *Generator) Draw(length int, t models.CodeType) string {
	alphabet := Alphabet(t)
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.rnd.IntN(len(alphabet))]
	}
	return string(b)
}
