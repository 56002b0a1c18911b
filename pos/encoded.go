package pos

// DataFormat tags the wire format of an encoded body.
type DataFormat string

const (
	FormatXML  DataFormat = "xml"
	FormatJSON DataFormat = "json"
	FormatForm DataFormat = "form"
	FormatText DataFormat = "text"
)

// EncodedData is the boundary object between a serializer and a transport:
// an encoded body plus its format tag. It is immutable after construction;
// Body returns a copy so callers cannot mutate the original bytes.
type EncodedData struct {
	body   []byte
	format DataFormat
}

// NewEncodedData builds an EncodedData, copying the body.
func NewEncodedData(body []byte, format DataFormat) EncodedData {
	b := make([]byte, len(body))
	copy(b, body)
	return EncodedData{body: b, format: format}
}

// Body returns a copy of the encoded bytes.
func (d EncodedData) Body() []byte {
	b := make([]byte, len(d.body))
	copy(b, d.body)
	return b
}

// String returns the encoded body as a string.
func (d EncodedData) String() string { return string(d.body) }

// Format returns the wire format tag.
func (d EncodedData) Format() DataFormat { return d.format }
