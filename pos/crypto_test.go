package pos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBase64(t *testing.T) {
	assert.Equal(t, "qvTGHdzF6KLavt4PO0gs2a6pQ00=", HashBase64(SHA1, "hello"))
}

func TestHashHexUpper(t *testing.T) {
	assert.Equal(t,
		"2CF24DBA5FB0A30E26E83B2AC5B9E29E1B161E5C1FA7425E73043362938B9824",
		HashHexUpper(SHA256, "hello"))
}

func TestHMACSHA512Base64(t *testing.T) {
	assert.Equal(t,
		"PFlToY9zA+xlO6FwrjNPr6COOEby7+MXuH786CN2JTy1Kowx3c3lo6Lu4YPCs0y5H4XmTdvDJfdpKxmUc1ecWA==",
		HMACSHA512Base64([]byte("key"), []byte("data")))
}

func TestHashFromParams(t *testing.T) {
	// The bank names the hashed fields inside the response itself. "b"
	// only exists in a nested structure and the trailing separator is
	// tolerated, as live banks emit it.
	data := map[string]any{
		"HASHPARAMS": "a:b:",
		"a":          "1",
		"extra":      map[string]any{"b": "2"},
	}
	assert.Equal(t, "SCSYCEx8VdQ+WMhE6mziInSZGPw=", HashFromParams(SHA1, "sk", data, "HASHPARAMS", ":"))
}

func TestHashFromParams_MissingFieldContributesEmpty(t *testing.T) {
	withB := map[string]any{"HASHPARAMS": "a:b", "a": "1", "b": ""}
	withoutB := map[string]any{"HASHPARAMS": "a:b", "a": "1"}
	assert.Equal(t, HashFromParams(SHA1, "sk", withB, "HASHPARAMS", ":"),
		HashFromParams(SHA1, "sk", withoutB, "HASHPARAMS", ":"))
}

func TestHashFromParams_NoParamsList(t *testing.T) {
	assert.Equal(t, "", HashFromParams(SHA1, "sk", map[string]any{"a": "1"}, "HASHPARAMS", ":"))
}

type recordingAudit struct {
	gateway  string
	orderID  string
	ok       bool
	provided string
	computed string
	calls    int
}

func (r *recordingAudit) HashVerification(_ context.Context, gateway, orderID string, ok bool, provided, computed string) {
	r.gateway, r.orderID, r.ok, r.provided, r.computed = gateway, orderID, ok, provided, computed
	r.calls++
}

func TestVerifyHash_MatchAndMismatch(t *testing.T) {
	audit := &recordingAudit{}

	ok := VerifyHash(context.Background(), nil, audit, "estpos", "order-1", "abc", "abc")
	assert.True(t, ok)
	assert.Equal(t, 1, audit.calls)
	assert.True(t, audit.ok)

	// A mismatch is an outcome, not an error; both hashes are audited.
	ok = VerifyHash(context.Background(), nil, audit, "estpos", "order-1", "abc", "xyz")
	assert.False(t, ok)
	assert.Equal(t, 2, audit.calls)
	assert.False(t, audit.ok)
	assert.Equal(t, "abc", audit.provided)
	assert.Equal(t, "xyz", audit.computed)
}

func TestVerifyHash_NilCollaborators(t *testing.T) {
	assert.NotPanics(t, func() {
		VerifyHash(context.Background(), nil, nil, "estpos", "order-1", "a", "b")
	})
}
