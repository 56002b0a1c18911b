package estpos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gopostr/gopos/pos"
)

func TestMapTxType(t *testing.T) {
	m := Mapper{}

	tests := []struct {
		tx      pos.TxType
		model   pos.PaymentModel
		want    string
		wantErr bool
	}{
		{pos.TxPayAuth, pos.ModelNonSecure, "Auth", false},
		{pos.TxPayAuth, pos.Model3DSecure, "Auth", false},
		{pos.TxPayPreAuth, pos.ModelNonSecure, "PreAuth", false},
		{pos.TxCancel, pos.ModelNonSecure, "Void", false},
		{pos.TxRefund, pos.ModelNonSecure, "Credit", false},
		{pos.TxRefundPartial, pos.ModelNonSecure, "Credit", false},
		{pos.TxStatus, pos.ModelNonSecure, "ORDERSTATUS", false},
		{pos.TxOrderHistory, pos.ModelNonSecure, "ORDERHISTORY", false},
		{pos.TxHistory, pos.ModelNonSecure, "", true},
	}

	for _, tt := range tests {
		got, err := m.MapTxType(tt.tx, tt.model, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("MapTxType(%s, %s) error = %v, wantErr %v", tt.tx, tt.model, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, pos.ErrUnsupportedTransaction) {
			t.Errorf("MapTxType(%s) error = %v, want ErrUnsupportedTransaction", tt.tx, err)
		}
		if got != tt.want {
			t.Errorf("MapTxType(%s, %s) = %q, want %q", tt.tx, tt.model, got, tt.want)
		}
	}
}

func TestMapTxTypeRoundTrip(t *testing.T) {
	m := Mapper{}
	rm := ResponseMapper{}

	// Credit covers both refund variants on the request side; the
	// response table resolves it to the plain refund.
	skip := map[pos.TxType]bool{pos.TxRefundPartial: true}

	for tx := range txTable {
		if skip[tx] {
			continue
		}
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

func TestMapLangFallsBackToTurkish(t *testing.T) {
	m := Mapper{}
	if got := m.MapLang("de"); got != "tr" {
		t.Errorf("MapLang(de) = %q, want tr", got)
	}
	if got := m.MapLang(pos.LangEN); got != "en" {
		t.Errorf("MapLang(en) = %q, want en", got)
	}
}

func TestMapCardTypeUnknown(t *testing.T) {
	m := Mapper{}
	_, err := m.MapCardType(pos.CardTypeTroy)
	if !errors.Is(err, pos.ErrNotFoundInMapping) {
		t.Errorf("MapCardType(troy) error = %v, want ErrNotFoundInMapping", err)
	}
}

func TestFormatAmount(t *testing.T) {
	f := Formatter{}
	if got := f.FormatAmount(1.10, pos.TxPayAuth); got != "1.10" {
		t.Errorf("FormatAmount(1.10) = %q, want 1.10", got)
	}
	if got := f.FormatAmount(1000.0, pos.TxPayAuth); got != "1000.00" {
		t.Errorf("FormatAmount(1000.0) = %q, want 1000.00", got)
	}
}

func TestFormatInstallment(t *testing.T) {
	f := Formatter{}
	if f.FormatInstallment(0) != f.FormatInstallment(1) {
		t.Error("FormatInstallment(0) and (1) must both normalize to the sentinel")
	}
	if got := f.FormatInstallment(0); got != "" {
		t.Errorf("FormatInstallment(0) = %q, want empty sentinel", got)
	}
	if got := f.FormatInstallment(6); got != "6" {
		t.Errorf("FormatInstallment(6) = %q, want 6", got)
	}
}

func TestFormatCardExpiry(t *testing.T) {
	f := Formatter{}
	exp := time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		field string
		want  string
	}{
		{"Expires", "04/24"},
		{"Ecom_Payment_Card_ExpDate_Month", "04"},
		{"Ecom_Payment_Card_ExpDate_Year", "24"},
	}
	for _, tt := range tests {
		got, err := f.FormatCardExpiry(exp, tt.field)
		if err != nil {
			t.Fatalf("FormatCardExpiry(%s): %v", tt.field, err)
		}
		if got != tt.want {
			t.Errorf("FormatCardExpiry(%s) = %q, want %q", tt.field, got, tt.want)
		}
	}

	if _, err := f.FormatCardExpiry(exp, "SomeOtherField"); !errors.Is(err, pos.ErrUnsupportedField) {
		t.Errorf("unrecognized field error = %v, want ErrUnsupportedField", err)
	}
}

func TestCreate3DHashVer3(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "700655000200", StoreKey: "TRPS0200"}
	params := map[string]string{
		"clientid":      "700655000200",
		"oid":           "order|123",
		"amount":        "100.25",
		"rnd":           "rand123",
		"storetype":     "3d",
		"hashAlgorithm": "ver3",
	}

	got := c.Create3DHash(account, params)
	want := "JGalVdk20IsF5XXY/IUGmzEaCq7b48GpsvhPdCbN6XythL10fSko8zyd0D4l+0sKhaGRjHlHwAXmtCXh772Kkw=="
	if got != want {
		t.Errorf("Create3DHash = %q, want %q", got, want)
	}

	// hash/encoding parameters never participate
	params["HASH"] = "anything"
	params["encoding"] = "UTF-8"
	if c.Create3DHash(account, params) != want {
		t.Error("hash and encoding parameters must be excluded from the hash input")
	}
}

func callbackFixture() map[string]any {
	return map[string]any{
		"clientid":       "700655000200",
		"oid":            "2020110828BC",
		"AuthCode":       "P77974",
		"ProcReturnCode": "00",
		"Response":       "Approved",
		"mdStatus":       "1",
		"cavv":           "BwAQAhIYRwEAABWGABhHEE6v5IU=",
		"eci":            "05",
		"md":             "435508:9716234382F9D9B630CC01452A6F160D31A2E1DBD41706C6AF8B8E6F980BE617:3473:##700655000200",
		"rnd":            "QRCP/4qxM0icIvx5hwDB",
		"HASHPARAMS":     "clientid:oid:AuthCode:ProcReturnCode:Response:mdStatus:cavv:eci:md:rnd:",
		"HASH":           "3pJE2SRhnHAmiBdzUJgwUzKHJag=",
	}
}

func TestCheck3DHash(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "700655000200", StoreKey: "TRPS0200"}

	if !c.Check3DHash(context.Background(), account, callbackFixture()) {
		t.Error("Check3DHash must accept the untouched callback fixture")
	}

	mutated := callbackFixture()
	mutated["mdStatus"] = "0"
	if c.Check3DHash(context.Background(), account, mutated) {
		t.Error("Check3DHash must reject a callback with a mutated mdStatus")
	}
}

func TestSerializerEncodeDeclaresCharset(t *testing.T) {
	s := Serializer{}
	fields := pos.Fields{}
	fields.Set("Name", "user")
	fields.Set("Type", "Auth")

	encoded, err := s.Encode(fields, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded.Format() != pos.FormatXML {
		t.Errorf("format = %s, want xml", encoded.Format())
	}
	body := encoded.String()
	if want := `encoding="ISO-8859-9"`; !contains(body, want) {
		t.Errorf("body %q does not declare %s", body, want)
	}
	if !contains(body, "<CC5Request>") {
		t.Errorf("body %q missing the CC5Request root", body)
	}
}

func TestSerializerDecode(t *testing.T) {
	s := Serializer{}
	raw := []byte(`<?xml version="1.0" encoding="ISO-8859-9"?><CC5Response><Response>Approved</Response><ProcReturnCode>00</ProcReturnCode><OrderId>order123</OrderId></CC5Response>`)

	decoded, err := s.Decode(raw, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded["Response"] != "Approved" {
		t.Errorf("Response = %v, want Approved", decoded["Response"])
	}
	if decoded["ProcReturnCode"] != "00" {
		t.Errorf("ProcReturnCode = %v, want 00", decoded["ProcReturnCode"])
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(pos.Account{ClientID: "700655000200"}, pos.ClientOptions{Env: pos.EnvTest})
	var verr *pos.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewClient without credentials error = %v, want ValidationError", err)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
