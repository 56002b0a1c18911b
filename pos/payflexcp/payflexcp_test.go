package payflexcp

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopostr/gopos/pos"
)

func TestMapTxType(t *testing.T) {
	m := Mapper{}
	got, err := m.MapTxType(pos.TxPayAuth, pos.ModelNonSecure, nil)
	if err != nil || got != "Sale" {
		t.Errorf("MapTxType(pay) = (%q, %v), want Sale", got, err)
	}
	if _, err := m.MapTxType(pos.TxStatus, pos.ModelNonSecure, nil); !errors.Is(err, pos.ErrUnsupportedTransaction) {
		t.Errorf("MapTxType(status) error = %v, want ErrUnsupportedTransaction", err)
	}
}

func TestSerializerDecodeHTMLErrorPage(t *testing.T) {
	page := []byte(`<!DOCTYPE html>
<html>
<head><title>Hata</title><style>body { color: red }</style></head>
<body><h1>Islem gerceklestirilemedi</h1><p>Gecersiz istek</p></body>
</html>`)

	_, err := Serializer{}.Decode(page, pos.TxPayAuth)
	var transportErr *pos.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	msg := transportErr.Error()
	if !strings.Contains(msg, "Islem gerceklestirilemedi") {
		t.Errorf("error %q must carry the page text", msg)
	}
	if strings.Contains(msg, "color: red") {
		t.Errorf("error %q must not carry style content", msg)
	}
}

func TestSerializerDecodeXML(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<VposResponse>
  <ResultCode>0000</ResultCode>
</VposResponse>`)

	decoded, err := Serializer{}.Decode(raw, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded["ResultCode"] != "0000" {
		t.Errorf("ResultCode = %v", decoded["ResultCode"])
	}
}

func TestSerializerEncodeFormOrder(t *testing.T) {
	fields := pos.Fields{}
	fields.Set("HostMerchantId", "000100000013506")
	fields.Set("TransactionType", "Sale")

	encoded, err := Serializer{}.Encode(fields, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(encoded.String(), "HostMerchantId=000100000013506&TransactionType=Sale") {
		t.Errorf("field order not preserved: %s", encoded.String())
	}
}
