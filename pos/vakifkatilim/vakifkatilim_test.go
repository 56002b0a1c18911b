package vakifkatilim

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gopostr/gopos/pos"
)

func TestEndpointTable(t *testing.T) {
	tests := []struct {
		tx    pos.TxType
		model pos.PaymentModel
		want  string
	}{
		{pos.TxPayAuth, pos.ModelNonSecure, "/Home/Non3DPayGate"},
		{pos.TxPayAuth, pos.Model3DSecure, "/Home/ThreeDModelProvisionGate"},
		{pos.TxCancel, pos.ModelNonSecure, "/Home/SaleReversal"},
		{pos.TxRefundPartial, pos.Model3DSecure, "/Home/PartialDrawback"},
		{pos.TxHistory, pos.ModelNonSecure, "/Home/TransactionList"},
	}
	for _, tt := range tests {
		got, err := Endpoint(tt.tx, tt.model)
		if err != nil {
			t.Fatalf("Endpoint(%s, %s): %v", tt.tx, tt.model, err)
		}
		if got != tt.want {
			t.Errorf("Endpoint(%s, %s) = %q, want %q", tt.tx, tt.model, got, tt.want)
		}
	}

	if _, err := Endpoint(pos.TxHistory, pos.Model3DSecure); !errors.Is(err, pos.ErrUnsupportedTransaction) {
		t.Errorf("Endpoint(history, 3d) error = %v, want ErrUnsupportedTransaction", err)
	}
}

func TestFormatters(t *testing.T) {
	f := Formatter{}
	if got := f.FormatAmount(10.00, pos.TxPayAuth); got != "1000" {
		t.Errorf("FormatAmount(10.00) = %q, want 1000", got)
	}
	if f.FormatInstallment(0) != f.FormatInstallment(1) {
		t.Error("FormatInstallment(0) and (1) must both normalize to the sentinel")
	}
	got, err := f.FormatDateTime(time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC), "StartDate")
	if err != nil || got != "2024-04-14" {
		t.Errorf("FormatDateTime = (%q, %v), want 2024-04-14", got, err)
	}
}

func TestHashesMatchKuveytFamily(t *testing.T) {
	c := Crypt{}
	account := pos.Account{ClientID: "400235", Username: "apiuser", Password: "api-pass"}
	got := c.CreateHash(account, "order-1", "110", "https://shop.example/ok", "https://shop.example/fail")
	if got != "W7nIJ+jsw6p42HxKHRojikce7Np+dxkwWOkPb+ZKaBQ=" {
		t.Errorf("CreateHash = %q", got)
	}
	if s := c.CreateStatusHash(account, "order-1"); s != "esYryLI9DVNC+j0/wa42TZxrjDmEJmBm2D17PklR5eM=" {
		t.Errorf("CreateStatusHash = %q", s)
	}
}

func TestSerializerDecodeSOAPReport(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ns2:TransactionListResponse xmlns:ns2="http://boa.net/">
      <ns2:ResponseCode>00</ns2:ResponseCode>
      <ns2:MerchantOrderId>order-1</ns2:MerchantOrderId>
    </ns2:TransactionListResponse>
  </soap:Body>
</soap:Envelope>`)

	decoded, err := Serializer{}.Decode(raw, pos.TxHistory)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	inner, ok := decoded["TransactionListResponse"].(map[string]any)
	if !ok {
		t.Fatalf("TransactionListResponse = %#v", decoded)
	}
	if inner["ResponseCode"] != "00" {
		t.Errorf("ResponseCode = %v, namespace prefixes must be stripped", inner["ResponseCode"])
	}
}

func TestSerializerDecodeSOAPFault(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>Islem basarisiz</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`)

	_, err := Serializer{}.Decode(raw, pos.TxHistory)
	var bankErr *pos.BankError
	if !errors.As(err, &bankErr) {
		t.Fatalf("error = %v, want *BankError", err)
	}
	if bankErr.Message != "Islem basarisiz" {
		t.Errorf("fault message = %q, must be carried verbatim", bankErr.Message)
	}
}

func TestSerializerDecodePlainContract(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<VPosTransactionResponseContract>
  <ResponseCode>00</ResponseCode>
</VPosTransactionResponseContract>`)

	decoded, err := Serializer{}.Decode(raw, pos.TxPayAuth)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded["ResponseCode"] != "00" {
		t.Errorf("ResponseCode = %v", decoded["ResponseCode"])
	}
}

func TestRequestSurfacesFaultOn500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>MerchantOrderId bulunamadi</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer srv.Close()

	account := pos.Account{
		ClientID:   "400235",
		TerminalID: "84768",
		Username:   "apiuser",
		Password:   "apipass",
	}
	c, err := NewClient(account, pos.ClientOptions{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.Request(context.Background(), pos.TxStatus, pos.ModelNonSecure, pos.Fields{}, nil)
	var bankErr *pos.BankError
	if !errors.As(err, &bankErr) {
		t.Fatalf("error = %v, want *BankError", err)
	}
	if bankErr.Message != "MerchantOrderId bulunamadi" {
		t.Errorf("Message = %q, want the fault string", bankErr.Message)
	}
	if bankErr.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d, want 500", bankErr.HTTPStatus)
	}
}
