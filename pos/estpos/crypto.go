package estpos

import (
	"context"
	"sort"
	"strings"

	"github.com/gopostr/gopos/pos"
)

// Crypt implements the EST "ver3" request hash and the HASHPARAMS-driven
// callback verification.
type Crypt struct {
	Logger pos.Logger
	Audit  pos.AuditSink
}

// Create3DHash computes the ver3 gate hash: parameters sorted
// case-insensitively (hash and encoding excluded), values joined with "|"
// after escaping literal backslash and pipe characters, the store key
// appended the same way, SHA-512, base64.
func (c Crypt) Create3DHash(account pos.Account, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		lower := strings.ToLower(k)
		if lower == "hash" || lower == "encoding" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(escape(params[k]))
		sb.WriteString("|")
	}
	sb.WriteString(escape(account.StoreKey))
	return pos.HashBase64(pos.SHA512, sb.String())
}

func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, "|", `\|`)
}

// Check3DHash verifies a 3-D callback. The bank lists the hashed fields
// inside the response itself (HASHPARAMS, colon-separated), so the
// verification order is taken from the response, SHA-1 hashed with the
// store key appended. A mismatch is reported as false plus an audit
// entry.
func (c Crypt) Check3DHash(ctx context.Context, account pos.Account, data map[string]any) bool {
	computed := pos.HashFromParams(pos.SHA1, account.StoreKey, data, "HASHPARAMS", ":")
	provided := pos.Str(data, "HASH")
	return pos.VerifyHash(ctx, c.Logger, c.Audit, string(pos.GatewayEstPos), pos.Str(data, "oid"), provided, computed)
}
