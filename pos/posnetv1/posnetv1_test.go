package posnetv1

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopostr/gopos/pos"
)

func TestEndpointTable(t *testing.T) {
	tests := []struct {
		name  string
		tx    pos.TxType
		model pos.PaymentModel
		order *pos.Order
		want  string
	}{
		{"non-secure sale", pos.TxPayAuth, pos.ModelNonSecure, nil, "/Sale"},
		{"3d sale", pos.TxPayAuth, pos.Model3DSecure, nil, "/Sale3D"},
		{"pre-auth", pos.TxPayPreAuth, pos.ModelNonSecure, nil, "/Auth"},
		{"capture", pos.TxPayPostAuth, pos.ModelNonSecure, nil, "/Capt"},
		{"cancel", pos.TxCancel, pos.ModelNonSecure, nil, "/Reverse"},
		{"refund of a capture", pos.TxRefund, pos.ModelNonSecure,
			&pos.Order{PriorTxType: pos.TxPayPostAuth}, "/Return"},
		{"refund of an uncaptured pre-auth reverses", pos.TxRefund, pos.ModelNonSecure,
			&pos.Order{PriorTxType: pos.TxPayPreAuth}, "/Reverse"},
		{"status", pos.TxStatus, pos.Model3DSecure, nil, "/TransactionInquiry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Endpoint(tt.tx, tt.model, tt.order)
			if err != nil {
				t.Fatalf("Endpoint: %v", err)
			}
			if got != tt.want {
				t.Errorf("Endpoint = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := Endpoint(pos.TxHistory, pos.ModelNonSecure, nil); !errors.Is(err, pos.ErrUnsupportedTransaction) {
		t.Errorf("Endpoint(history) error = %v, want ErrUnsupportedTransaction", err)
	}
	if _, err := Endpoint(pos.TxPayPostAuth, pos.Model3DSecure, nil); !errors.Is(err, pos.ErrUnsupportedTransaction) {
		t.Errorf("Endpoint(post, 3d) error = %v, want ErrUnsupportedTransaction", err)
	}
}

func TestFormatOrderID(t *testing.T) {
	got, err := FormatOrderID("order-1", pos.TxPayAuth, pos.ModelNonSecure)
	if err != nil {
		t.Fatalf("FormatOrderID: %v", err)
	}
	if got != "0000000000000order-1" {
		t.Errorf("FormatOrderID = %q", got)
	}

	got, err = FormatOrderID("order-1", pos.TxStatus, pos.Model3DSecure)
	if err != nil {
		t.Fatalf("FormatOrderID: %v", err)
	}
	if got != "TDS_000000000order-1" {
		t.Errorf("FormatOrderID = %q", got)
	}
	if len(got) != orderIDLength {
		t.Errorf("len = %d, want %d", len(got), orderIDLength)
	}

	_, err = FormatOrderID(strings.Repeat("x", 17), pos.TxStatus, pos.Model3DSecure)
	var vErr *pos.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
}

func TestFormatters(t *testing.T) {
	f := Formatter{}
	if got := f.FormatAmount(10.00, pos.TxPayAuth); got != "1000" {
		t.Errorf("FormatAmount(10.00) = %q, want 1000", got)
	}
	if got := f.FormatAmount(20.00, pos.TxPayAuth); got != "2000" {
		t.Errorf("FormatAmount(20.00) = %q, want 2000", got)
	}
	if f.FormatInstallment(0) != "00" || f.FormatInstallment(1) != "00" {
		t.Error("single shot must render as 00")
	}
}

func TestSerializerRoundTrip(t *testing.T) {
	fields := pos.Fields{}
	fields.Set("MerchantNo", "6700950031")
	fields.Set("TerminalNo", "67540050")

	encoded, err := Serializer{}.Encode(fields, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(encoded.String(), `{"MerchantNo":"6700950031"`) {
		t.Errorf("field order not preserved: %s", encoded.String())
	}

	decoded, err := Serializer{}.Decode([]byte(`{"ApprovedCode":"00","OrderId":"order-1"}`), pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded["ApprovedCode"] != "00" {
		t.Errorf("ApprovedCode = %v", decoded["ApprovedCode"])
	}
}

func TestMacDataMatchesClassicChain(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "6700950031", TerminalID: "67540050", StoreKey: "10,10,10,10,10,10,10,10"}
	m1 := c.MacData(account, "0000000000000order-1", "1000", "TL")
	m2 := c.MacData(account, "0000000000000order-1", "1000", "TL")
	if m1 == "" || m1 != m2 {
		t.Error("MacData must be deterministic")
	}
	if c.MacData(account, "0000000000000order-2", "1000", "TL") == m1 {
		t.Error("MacData must bind the order id")
	}
}
