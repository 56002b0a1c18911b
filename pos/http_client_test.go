package pos

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPClient_PostSetsContentTypeByFormat(t *testing.T) {
	var gotContentType, gotBody, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewHTTPClient(NewHTTPClientConfig(server.URL, EnvTest))
	resp, err := client.Post(context.Background(), "/path", NewEncodedData([]byte(`{"a":"1"}`), FormatJSON), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"a":"1"}`, gotBody)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte("ok"), resp.Body)
}

func TestHTTPClient_HeaderOverride(t *testing.T) {
	var gotContentType, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("auth-hash")
	}))
	defer server.Close()

	client := NewHTTPClient(NewHTTPClientConfig(server.URL, EnvTest))
	_, err := client.Post(context.Background(), "", NewEncodedData(nil, FormatXML), map[string]string{
		"Content-Type": "text/xml; charset=ISO-8859-9",
		"auth-hash":    "signature",
	})
	assert.NoError(t, err)
	assert.Equal(t, "text/xml; charset=ISO-8859-9", gotContentType)
	assert.Equal(t, "signature", gotCustom)
}

func TestHTTPClient_NetworkErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewHTTPClient(NewHTTPClientConfig(server.URL, EnvTest))
	_, err := client.Post(context.Background(), "/path", NewEncodedData(nil, FormatJSON), nil)
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType(FormatJSON))
	assert.Equal(t, "text/xml; charset=UTF-8", ContentType(FormatXML))
	assert.Equal(t, "application/x-www-form-urlencoded", ContentType(FormatForm))
	assert.Equal(t, "text/plain", ContentType(FormatText))
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://host/a/b", joinURL("https://host/a", "/b"))
	assert.Equal(t, "https://host/a/b", joinURL("https://host/a/", "b"))
	assert.Equal(t, "https://host/a/b", joinURL("https://host/a", "b"))
	assert.Equal(t, "https://host/a", joinURL("https://host/a", ""))
}

func TestEncodeForm(t *testing.T) {
	fields := Fields{}
	fields.Set("xmldata", "<a>1 2</a>")
	fields.Set("second", "v")

	got := string(EncodeForm(fields))
	assert.Equal(t, "xmldata=%3Ca%3E1+2%3C%2Fa%3E&second=v", got)
}

func TestDecodeForm(t *testing.T) {
	decoded, err := DecodeForm([]byte("ProcReturnCode=00&ErrMsg=Onaylandi"))
	assert.NoError(t, err)
	assert.Equal(t, "00", decoded["ProcReturnCode"])
	assert.Equal(t, "Onaylandi", decoded["ErrMsg"])
}
