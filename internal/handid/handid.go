// Package handid generates sortable hand identifiers: a UUIDv7 rendered as a
// 26-character Crockford base32 string.
package handid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generator produces hand IDs stamped from its clock.
type Generator struct {
	clock   quartz.Clock
	entropy io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy replaces crypto/rand as the source of the random bits.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// New creates a generator. A nil clock means the real clock.
func New(clock quartz.Clock, opts ...Option) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	g := &Generator{clock: clock, entropy: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a fresh hand ID.
func (g *Generator) Next() (string, error) {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then random bits.
	now := g.clock.Now().UnixMilli()
	for i := range 6 {
		uuid[i] = byte(now >> (40 - 8*i))
	}
	if _, err := io.ReadFull(g.entropy, uuid[6:]); err != nil {
		return "", fmt.Errorf("handid: read entropy: %w", err)
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(uuid), nil
}

// encode packs 128 bits into 26 base32 characters, big-endian, with the two
// trailing pad bits zero.
func encode(data [16]byte) string {
	var b strings.Builder
	b.Grow(26)
	for i := range 26 {
		offset := i * 5
		idx, shift := offset/8, offset%8

		var v uint16 = uint16(data[idx]) << 8
		if idx+1 < len(data) {
			v |= uint16(data[idx+1])
		}
		b.WriteByte(alphabet[(v>>(11-shift))&0x1f])
	}
	return b.String()
}

// Validate checks that id is a well-formed hand ID.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("handid: must be 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("handid: first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("handid: invalid character %c at position %d", c, i)
		}
	}
	return nil
}
