package ir

import (
	"crypto/sha256"
	"encoding/binary"
)

// Domain prefixes for derived seeds.
// Version suffix enables future algorithm migration.
const (
	DomainSynth = "lipsum/synth/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)

	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// SynthSeed derives the two PCG seed words for synthesizing a replacement
// for srcLower. The same source word always yields the same seed, so it
// always synthesizes the same first candidate.
func SynthSeed(srcLower string) (uint64, uint64) {
	sum := hashWithDomain(DomainSynth, []byte(srcLower))
	return binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16])
}
