// Package slip10 implements SLIP-10 hierarchical deterministic key derivation
// for the Ed25519 curve.
package slip10

import (
	"encoding/binary"
)

// masterHMACKey is the fixed HMAC key SLIP-10 assigns to the Ed25519 curve
// for master key generation.
const masterHMACKey = "ed25519 seed"

// ExtendedKey is a SLIP-10 extended private key: a raw Ed25519 private key
// seed together with the chain code used to derive its children.
type ExtendedKey struct {
	Key       [32]byte
	ChainCode [32]byte
}

// DeriveFromPath derives the extended key at the given derivation path
// (e.g. "m/44'/501'/0'/0'") from the given seed. The returned Key is suitable
// as input to ed25519.NewKeyFromSeed. Segments may carry a ' or h hardening
// suffix, but hardening is implied either way since Ed25519 supports hardened
// derivation only.
func DeriveFromPath(seed []byte, pathString string) (*ExtendedKey, error) {
	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}

	descendantKey := newMaster(seed)
	for _, index := range path {
		descendantKey = descendantKey.child(index)
	}

	return descendantKey, nil
}

func newMaster(seed []byte) *ExtendedKey {
	mac := newHMACWriter([]byte(masterHMACKey))
	mac.InfallibleWrite(seed)
	return splitI(mac.Sum(nil))
}

// child derives one hardened child key. The HMAC input is
// 0x00 || parent key || ser32(i), 37 bytes, keyed with the parent chain code.
func (extKey *ExtendedKey) child(i uint32) *ExtendedKey {
	mac := newHMACWriter(extKey.ChainCode[:])
	mac.InfallibleWrite([]byte{0x00})
	mac.InfallibleWrite(extKey.Key[:])
	mac.InfallibleWrite(serializeUint32(i))
	return splitI(mac.Sum(nil))
}

func splitI(i []byte) *ExtendedKey {
	extKey := &ExtendedKey{}
	copy(extKey.Key[:], i[:32])
	copy(extKey.ChainCode[:], i[32:])
	return extKey
}

func serializeUint32(v uint32) []byte {
	serialized := make([]byte, 4)
	binary.BigEndian.PutUint32(serialized, v)
	return serialized
}
