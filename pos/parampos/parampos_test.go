package parampos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gopostr/gopos/pos"
)

func TestMapTxTypePicksMethod(t *testing.T) {
	m := Mapper{}

	tests := []struct {
		name  string
		tx    pos.TxType
		model pos.PaymentModel
		order *pos.Order
		want  string
	}{
		{"non-secure sale", pos.TxPayAuth, pos.ModelNonSecure, nil, "TP_Islem_Odeme_WNSC"},
		{"3d sale", pos.TxPayAuth, pos.Model3DSecure, nil, "TP_WMD_UCD"},
		{"foreign currency overrides the channel", pos.TxPayAuth, pos.Model3DSecure,
			&pos.Order{Currency: pos.CurrencyUSD}, "TP_Islem_Odeme_WD"},
		{"lira order stays on the channel method", pos.TxPayAuth, pos.Model3DSecure,
			&pos.Order{Currency: pos.CurrencyTRY}, "TP_WMD_UCD"},
		{"pre-auth", pos.TxPayPreAuth, pos.Model3DSecure, nil, "TP_Islem_Odeme_OnProv_WMD"},
		{"post-auth", pos.TxPayPostAuth, pos.ModelNonSecure, nil, "TP_Islem_Odeme_OnProv_Kapa"},
		{"cancel of a capture", pos.TxCancel, pos.ModelNonSecure,
			&pos.Order{PriorTxType: pos.TxPayAuth}, "TP_Islem_Iptal_Iade_Kismi"},
		{"cancel of a pre-auth", pos.TxCancel, pos.ModelNonSecure,
			&pos.Order{PriorTxType: pos.TxPayPreAuth}, "TP_Islem_Iptal_OnProv"},
		{"refund", pos.TxRefund, pos.ModelNonSecure, nil, "TP_Islem_Iptal_Iade_Kismi"},
		{"status", pos.TxStatus, pos.ModelNonSecure, nil, "TP_Islem_Sorgulama4"},
		{"history", pos.TxHistory, pos.ModelNonSecure, nil, "TP_Islem_Izleme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.MapTxType(tt.tx, tt.model, tt.order)
			if err != nil {
				t.Fatalf("MapTxType: %v", err)
			}
			if got != tt.want {
				t.Errorf("MapTxType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAmountSeparatorFlips(t *testing.T) {
	f := Formatter{}
	if got := f.FormatAmount(1.0, pos.TxPayAuth); got != "1,00" {
		t.Errorf("FormatAmount(1.0, pay) = %q, want 1,00", got)
	}
	if got := f.FormatAmount(1.0, pos.TxPayPreAuth); got != "1,00" {
		t.Errorf("FormatAmount(1.0, pre) = %q, want 1,00", got)
	}
	if got := f.FormatAmount(1.0, pos.TxRefund); got != "1.00" {
		t.Errorf("FormatAmount(1.0, refund) = %q, want 1.00", got)
	}
	if got := f.FormatAmount(1.0, pos.TxCancel); got != "1.00" {
		t.Errorf("FormatAmount(1.0, cancel) = %q, want 1.00", got)
	}
}

func TestCreateHash(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "10738", StoreKey: "0c13d406-873b-403b-9c09-a5766840d98c"}
	got := c.CreateHash(account, "1", "1,00", "1,00", "order-1")
	if got != "Rta/JxW//gCKcPuwK8zY5w5xkaY=" {
		t.Errorf("CreateHash = %q", got)
	}
}

func TestSerializerEncodemethodEnvelope(t *testing.T) {
	fields := pos.Fields{}
	fields.Set("CLIENT_CODE", "10738")
	fields.Set("Islem_Tutar", "1,00")

	encoded, err := Serializer{}.EncodeMethod("TP_WMD_UCD", fields)
	if err != nil {
		t.Fatalf("EncodeMethod: %v", err)
	}
	body := encoded.String()
	if !strings.Contains(body, "<soap:Envelope") || !strings.Contains(body, "<soap:Body>") {
		t.Errorf("missing SOAP envelope: %s", body)
	}
	if !strings.Contains(body, `<TP_WMD_UCD xmlns="https://turkpos.com.tr/">`) {
		t.Errorf("missing method element: %s", body)
	}
	if !strings.Contains(body, "<Islem_Tutar>1,00</Islem_Tutar>") {
		t.Errorf("field lost: %s", body)
	}
}

func TestSerializerDecodeUnwrapsResponseResult(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <TP_WMD_UCDResponse xmlns="https://turkpos.com.tr/">
      <TP_WMD_UCDResult>
        <Islem_ID>123456</Islem_ID>
        <Sonuc>1</Sonuc>
      </TP_WMD_UCDResult>
    </TP_WMD_UCDResponse>
  </soap:Body>
</soap:Envelope>`)

	decoded, err := Serializer{}.Decode(raw, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded["Sonuc"] != "1" {
		t.Errorf("Sonuc = %v, Response/Result nesting must be unwrapped", decoded["Sonuc"])
	}
}

func TestSerializerDecodeFault(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>Gecersiz istek</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`)

	_, err := Serializer{}.Decode(raw, pos.TxPayAuth)
	var bankErr *pos.BankError
	if !errors.As(err, &bankErr) {
		t.Fatalf("error = %v, want *BankError", err)
	}
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	account := pos.Account{
		ClientID: "10738",
		Username: "api-user",
		Password: "api-pass",
		StoreKey: "0c13d406-873b-403b-9c09-a5766840d98c",
	}
	c, err := NewClient(account, pos.ClientOptions{BaseURL: serverURL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestRequestSurfacesFaultOn500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>Islem_Hash gecersiz</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Request(context.Background(), pos.TxPayAuth, pos.ModelNonSecure, pos.Fields{}, nil)
	var bankErr *pos.BankError
	if !errors.As(err, &bankErr) {
		t.Fatalf("error = %v, want *BankError", err)
	}
	if bankErr.Message != "Islem_Hash gecersiz" {
		t.Errorf("Message = %q, want the fault string", bankErr.Message)
	}
	if bankErr.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d, want 500", bankErr.HTTPStatus)
	}
}

func TestRequestUndecodable500IsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Bad Gateway"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Request(context.Background(), pos.TxPayAuth, pos.ModelNonSecure, pos.Fields{}, nil)
	var transportErr *pos.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
}
