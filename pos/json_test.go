package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeJSON_PreservesOrder(t *testing.T) {
	fields := Fields{}
	fields.Set("z", "last-inserted-first")
	fields.Set("a", 42)

	out, err := EncodeJSON(fields)
	assert.NoError(t, err)
	assert.Equal(t, `{"z":"last-inserted-first","a":42}`, string(out))
}

func TestEncodeJSON_NestedObjectsAndArrays(t *testing.T) {
	card := Fields{}
	card.Set("number", "4111111111111111")

	item := Fields{}
	item.Set("id", 1)

	fields := Fields{}
	fields.Set("card", card)
	fields.Set("items", []Fields{item})

	out, err := EncodeJSON(fields)
	assert.NoError(t, err)
	assert.Equal(t, `{"card":{"number":"4111111111111111"},"items":[{"id":1}]}`, string(out))
}

func TestEncodeJSON_EscapesStrings(t *testing.T) {
	fields := Fields{}
	fields.Set("msg", `a"b`)

	out, err := EncodeJSON(fields)
	assert.NoError(t, err)
	assert.Equal(t, `{"msg":"a\"b"}`, string(out))
}
