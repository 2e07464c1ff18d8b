package slip10

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// hardenedIndexStart is the first index in the hardened range. Ed25519 has no
// public derivation mode, so every parsed index lands in
// [hardenedIndexStart, 2^32).
const hardenedIndexStart = 0x80000000

var (
	// ErrInvalidPathFormat is returned when a derivation path does not begin
	// with the root marker "m".
	ErrInvalidPathFormat = errors.New("derivation path must start with \"m\"")

	// ErrInvalidPathSegment is returned when a derivation path segment cannot
	// be parsed as a non-negative base-10 integer after stripping an optional
	// hardening suffix.
	ErrInvalidPathSegment = errors.New("invalid derivation path segment")
)

func parsePath(pathString string) ([]uint32, error) {
	segments := strings.Split(pathString, "/")
	if segments[0] != "m" {
		return nil, errors.Wrapf(ErrInvalidPathFormat, "path %q", pathString)
	}

	indexes := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		trimmed := segment
		if strings.HasSuffix(trimmed, "'") || strings.HasSuffix(trimmed, "h") {
			trimmed = trimmed[:len(trimmed)-1]
		}

		index, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPathSegment, "segment %q", segment)
		}

		// The suffix is cosmetic: the curve only supports hardened
		// derivation, so every index is forced into the hardened range.
		indexes = append(indexes, uint32(index)|hardenedIndexStart)
	}

	return indexes, nil
}
