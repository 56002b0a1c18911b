package pos

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// HashAlgorithm names a digest algorithm fixed per bank.
type HashAlgorithm string

const (
	SHA1   HashAlgorithm = "sha1"
	SHA256 HashAlgorithm = "sha256"
	SHA512 HashAlgorithm = "sha512"
)

func newDigest(algo HashAlgorithm) hash.Hash {
	switch algo {
	case SHA1:
		return sha1.New()
	case SHA256:
		return sha256.New()
	default:
		return sha512.New()
	}
}

// HashBase64 returns base64(digest(data)), the encoding shared by most of
// the bank APIs.
func HashBase64(algo HashAlgorithm, data string) string {
	d := newDigest(algo)
	d.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(d.Sum(nil))
}

// HashHexUpper returns uppercase hex(digest(data)). Garanti validates this
// shape.
func HashHexUpper(algo HashAlgorithm, data string) string {
	d := newDigest(algo)
	d.Write([]byte(data))
	return strings.ToUpper(hex.EncodeToString(d.Sum(nil)))
}

// HMACSHA512Base64 returns base64(HMAC-SHA512(data)) keyed with key.
func HMACSHA512Base64(key, data []byte) string {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// HashFromParams implements the callback-verification pattern where the
// bank states at runtime, inside the response itself, which fields were
// hashed and in what order: data[paramsKey] holds a separator-joined list
// of field names. Values are concatenated in the stated order, the store
// key is appended, and the digest is base64-encoded. A trailing separator
// in the list is tolerated; missing fields contribute an empty string,
// exactly as the live banks compute it.
func HashFromParams(algo HashAlgorithm, storeKey string, data map[string]any, paramsKey, separator string) string {
	list, _ := data[paramsKey].(string)
	if list == "" {
		return ""
	}
	var sb strings.Builder
	for _, name := range strings.Split(list, separator) {
		if name == "" {
			continue
		}
		sb.WriteString(paramValue(data, name))
	}
	sb.WriteString(storeKey)
	return HashBase64(algo, sb.String())
}

// paramValue resolves a named field, searching nested maps depth-first
// when the name is absent at the top level.
func paramValue(data map[string]any, name string) string {
	if v, ok := data[name]; ok {
		return fmt.Sprintf("%v", v)
	}
	for _, v := range data {
		if nested, ok := v.(map[string]any); ok {
			if s := paramValue(nested, name); s != "" {
				return s
			}
		}
	}
	return ""
}

// VerifyHash compares a bank-provided hash with the locally computed one
// in constant time. A mismatch is an expected "declined or tampered"
// outcome: it is logged and audited, never raised as an error.
func VerifyHash(ctx context.Context, logger Logger, audit AuditSink, gateway, orderID, provided, computed string) bool {
	if logger == nil {
		logger = NopLogger{}
	}
	ok := subtle.ConstantTimeCompare([]byte(provided), []byte(computed)) == 1
	if ok {
		logger.Debug("hash verification passed", map[string]any{
			"gateway": gateway, "order_id": orderID,
		})
	} else {
		logger.Error("hash verification failed", map[string]any{
			"gateway":  gateway,
			"order_id": orderID,
			"provided": provided,
			"computed": computed,
		})
	}
	if audit != nil {
		audit.HashVerification(ctx, gateway, orderID, ok, provided, computed)
	}
	return ok
}
