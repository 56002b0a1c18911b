package payfor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gopostr/gopos/pos"
)

func TestMapTxType(t *testing.T) {
	m := Mapper{}

	tests := []struct {
		tx   pos.TxType
		want string
	}{
		{pos.TxPayAuth, "Auth"},
		{pos.TxPayPreAuth, "PreAuth"},
		{pos.TxPayPostAuth, "PostAuth"},
		{pos.TxCancel, "Void"},
		{pos.TxRefund, "Refund"},
		{pos.TxStatus, "OrderInquiry"},
		{pos.TxHistory, "TxnHistory"},
	}
	for _, tt := range tests {
		got, err := m.MapTxType(tt.tx, pos.ModelNonSecure, nil)
		if err != nil {
			t.Fatalf("MapTxType(%s): %v", tt.tx, err)
		}
		if got != tt.want {
			t.Errorf("MapTxType(%s) = %q, want %q", tt.tx, got, tt.want)
		}
	}
}

func TestTxRoundTrip(t *testing.T) {
	m := Mapper{}
	rm := ResponseMapper{}
	// refund_partial and order_history share request tokens with refund
	// and history.
	for _, tx := range []pos.TxType{
		pos.TxPayAuth, pos.TxPayPreAuth, pos.TxPayPostAuth,
		pos.TxCancel, pos.TxRefund, pos.TxStatus, pos.TxHistory,
	} {
		token, err := m.MapTxType(tx, pos.ModelNonSecure, nil)
		if err != nil {
			t.Fatalf("MapTxType(%s): %v", tx, err)
		}
		back, err := rm.TxTypeFromBank(token)
		if err != nil {
			t.Fatalf("TxTypeFromBank(%q): %v", token, err)
		}
		if back != tx {
			t.Errorf("round trip %s -> %q -> %s", tx, token, back)
		}
	}
}

func TestSecureTypeRoundTrip(t *testing.T) {
	m := Mapper{}
	rm := ResponseMapper{}
	for _, model := range []pos.PaymentModel{
		pos.ModelNonSecure, pos.Model3DSecure, pos.Model3DPay, pos.Model3DHost,
	} {
		token, err := m.MapSecureType(model)
		if err != nil {
			t.Fatalf("MapSecureType(%s): %v", model, err)
		}
		back, err := rm.SecureTypeFromBank(token)
		if err != nil {
			t.Fatalf("SecureTypeFromBank(%q): %v", token, err)
		}
		if back != model {
			t.Errorf("round trip %s -> %q -> %s", model, token, back)
		}
	}
}

func TestOrderStatusSurfacesUnknownRaw(t *testing.T) {
	rm := ResponseMapper{}
	status, err := rm.OrderStatusFromBank("Voided")
	if err != nil || status != pos.OrderStatusCancelled {
		t.Errorf("Voided = (%v, %v), want cancelled", status, err)
	}
	status, err = rm.OrderStatusFromBank("WaitingFor3D")
	if err != nil {
		t.Fatalf("unknown status must not error: %v", err)
	}
	if string(status) != "WaitingFor3D" {
		t.Errorf("unknown status = %q, want the raw bank wording", status)
	}
}

func TestFormatters(t *testing.T) {
	f := Formatter{}
	if got := f.FormatAmount(1.10, pos.TxPayAuth); got != "1.10" {
		t.Errorf("FormatAmount(1.10) = %q, want 1.10", got)
	}
	if f.FormatInstallment(0) != "0" || f.FormatInstallment(1) != "0" {
		t.Error("single shot must render as 0")
	}
	if got := f.FormatInstallment(6); got != "6" {
		t.Errorf("FormatInstallment(6) = %q, want 6", got)
	}
	got, err := f.FormatDateTime(time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC), "ReqDate")
	if err != nil {
		t.Fatalf("FormatDateTime: %v", err)
	}
	if got != "20240414" {
		t.Errorf("FormatDateTime = %q, want 20240414", got)
	}
	if _, err := f.FormatDateTime(time.Now(), "SomeDate"); !errors.Is(err, pos.ErrUnsupportedField) {
		t.Errorf("unrecognized field error = %v, want ErrUnsupportedField", err)
	}
}

func TestCreate3DHash(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "085300000009704", StoreKey: "merchant-pass"}
	got := c.Create3DHash(account, "order-1", "1.10",
		"https://shop.example/ok", "https://shop.example/fail", "Auth", "0", "rnd123")
	if got != "YtYUoWe/hUMzg3J79LWEU0coLUo=" {
		t.Errorf("Create3DHash = %q", got)
	}
}

func TestCheck3DHash(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "085300000009704", StoreKey: "merchant-pass"}
	data := map[string]any{
		"ResponseRnd":    "rnd456",
		"OrderId":        "order-1",
		"ProcReturnCode": "00",
		"3DStatus":       "1",
		"ResponseHash":   "mCwz2oiYDB3hEmVjttyqu8HVHqw=",
	}
	if !c.Check3DHash(context.Background(), account, data) {
		t.Error("Check3DHash must accept a consistent callback")
	}
	data["3DStatus"] = "0"
	if c.Check3DHash(context.Background(), account, data) {
		t.Error("Check3DHash must reject a mutated callback")
	}
}

func TestSerializerEncode(t *testing.T) {
	fields := pos.Fields{}
	fields.Set("MbrId", MbrID)
	fields.Set("MerchantId", "085300000009704")
	fields.Set("TxnType", "Auth")

	encoded, err := Serializer{}.Encode(fields, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := encoded.String()
	if !strings.Contains(body, "<PayforRequest>") {
		t.Errorf("missing PayforRequest root: %s", body)
	}
	if !strings.Contains(body, "<MbrId>5</MbrId>") {
		t.Errorf("missing MbrId element: %s", body)
	}
}
