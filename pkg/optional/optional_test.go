package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title    Field[string] `json:"title"`
	Count    Field[int]    `json:"count"`
	Finished Field[bool]   `json:"finished"`
}

func TestField_AbsentNullValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":null,"count":3}`), &p))

	assert.True(t, p.Title.IsSet())
	assert.True(t, p.Title.IsNull())
	_, ok := p.Title.Value()
	assert.False(t, ok)

	assert.True(t, p.Count.IsSet())
	assert.False(t, p.Count.IsNull())
	n, ok := p.Count.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	// finished never appeared in the body
	assert.False(t, p.Finished.IsSet())
	assert.False(t, p.Finished.IsNull())
}

func TestField_TypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"finished":"yes"}`), &p)
	require.Error(t, err)
}

func TestField_Constructors(t *testing.T) {
	f := Of("hello")
	v, ok := f.Value()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	n := Null[string]()
	assert.True(t, n.IsSet())
	assert.True(t, n.IsNull())
}

func TestField_MarshalRoundTrip(t *testing.T) {
	p := payload{Title: Of("x"), Count: Null[int]()}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","count":null,"finished":null}`, string(b))
}
