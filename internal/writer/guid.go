// SPDX-License-Identifier: MPL-2.0

package writer

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// namespace salts entity identities so pyvsgen GUIDs do not collide with
// GUIDs another tool might derive from the same paths.
const namespace = "pyvsgen"

// GUID derives a stable RFC 4122 shaped identifier from an entity
// identity. Equal identities always produce equal GUIDs, which keeps
// regenerated solution and project files diff-stable.
func GUID(identity string) string {
	sum := sha1.Sum([]byte(namespace + ":" + strings.ToLower(identity)))

	// Stamp version 5 and the RFC variant bits, as uuid5 would.
	sum[6] = (sum[6] & 0x0f) | 0x50
	sum[8] = (sum[8] & 0x3f) | 0x80

	return strings.ToUpper(fmt.Sprintf("%x-%x-%x-%x-%x",
		sum[0:4], sum[4:6], sum[6:8], sum[8:10], sum[10:16]))
}
