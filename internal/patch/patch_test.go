package patch

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookPatch struct {
	Title      Field[string]  `json:"title"`
	Summary    Field[*string] `json:"summary"`
	Year       Field[int]     `json:"year"`
	Categories Field[[]uint]  `json:"categories"`
}

func TestField_UnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	var p bookPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Dune","summary":null,"categories":[]}`), &p))

	assert.True(t, p.Title.Set)
	assert.False(t, p.Title.Null)
	assert.Equal(t, "Dune", p.Title.Value)

	assert.True(t, p.Summary.Set)
	assert.True(t, p.Summary.IsNull())

	assert.False(t, p.Year.Set)
	assert.False(t, p.Year.IsNull())

	assert.True(t, p.Categories.Set)
	assert.False(t, p.Categories.Null)
	assert.Empty(t, p.Categories.Value)
}

func TestField_InvalidValue(t *testing.T) {
	var p bookPatch
	err := json.Unmarshal([]byte(`{"year":"nineteen"}`), &p)
	assert.Error(t, err)
}

func TestField_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(bookPatch{Title: Of("Dune"), Summary: NullOf[*string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dune","summary":null,"year":null,"categories":null}`, string(out))
}

func TestField_ValidationValue(t *testing.T) {
	assert.Nil(t, Field[int]{}.ValidationValue())
	assert.Nil(t, NullOf[int]().ValidationValue())
	assert.Equal(t, 1965, Of(1965).ValidationValue())
}

func TestField_IsEmpty(t *testing.T) {
	assert.False(t, Field[string]{}.IsEmpty())
	assert.False(t, NullOf[string]().IsEmpty())
	assert.True(t, Of("").IsEmpty())
	assert.False(t, Of("Dune").IsEmpty())
	assert.True(t, Of(0).IsEmpty())
}

func TestField_Pointer(t *testing.T) {
	assert.Nil(t, Field[string]{}.Pointer())
	assert.Nil(t, NullOf[string]().Pointer())
	p := Of("espresso").Pointer()
	require.NotNil(t, p)
	assert.Equal(t, "espresso", *p)
}

func TestPut(t *testing.T) {
	c := Changes{}
	Put(c, "title", Of("Dune"))
	Put(c, "summary", NullOf[string]())
	Put(c, "year", Field[int]{})

	assert.Equal(t, "Dune", c["title"])
	v, ok := c["summary"]
	assert.True(t, ok)
	assert.Nil(t, v)
	_, ok = c["year"]
	assert.False(t, ok)

	cols := c.Columns()
	sort.Strings(cols)
	assert.Equal(t, []string{"summary", "title"}, cols)

	m := c.Map()
	m["updated_on"] = "now"
	assert.Len(t, c, 2, "Map must return a copy")
}
