// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest computes the module-level content digest spec §3 describes
// for change detection (explicitly not for incremental reparsing,
// which is a non-goal): a hex-encoded SHA-256 of the raw source bytes.
func Digest(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}
