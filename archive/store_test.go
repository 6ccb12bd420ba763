// SPDX-License-Identifier: MIT

package archive_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gfstruct/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point is a minimal persistable fixture.
type point struct {
	Name string
	Tags []string
	N    int
}

const pointType = "archive_test.point"

func (p *point) PersistName() string { return pointType }

func (p *point) ReduceToDict() (map[string]any, error) {
	tags := make([]any, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = t
	}

	return map[string]any{"name": p.Name, "tags": tags, "n": p.N}, nil
}

func decodePoint(d map[string]any) (archive.Persistable, error) {
	p := &point{Name: d["name"].(string), N: d["n"].(int)}
	for _, t := range d["tags"].([]any) {
		p.Tags = append(p.Tags, t.(string))
	}

	return p, nil
}

func init() {
	archive.Register(pointType, decodePoint)
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() { archive.Register(pointType, decodePoint) })
	assert.Contains(t, archive.Registered(), pointType)
}

func TestStore_PutGet(t *testing.T) {
	st := archive.NewStore()
	require.NoError(t, st.Put("p", &point{Name: "a", Tags: []string{"x"}, N: 2}))

	got, err := st.Get("p")
	require.NoError(t, err)
	assert.Equal(t, &point{Name: "a", Tags: []string{"x"}, N: 2}, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, archive.ErrNotFound)

	typ, ok := st.Type("p")
	assert.True(t, ok)
	assert.Equal(t, pointType, typ)

	st.Delete("p")
	assert.Empty(t, st.Keys())
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	st := archive.NewStore()
	require.NoError(t, st.Put("b", &point{Name: "b", Tags: []string{"1", "2"}, N: 7}))
	require.NoError(t, st.Put("a", &point{Name: "a", Tags: []string{}, N: 0}))
	require.NoError(t, st.Save(path))

	back, err := archive.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, back.Keys())

	got, err := back.Get("b")
	require.NoError(t, err)
	assert.Equal(t, &point{Name: "b", Tags: []string{"1", "2"}, N: 7}, got)
}

func TestStore_DecodeErrors(t *testing.T) {
	st := archive.NewStore()
	err := st.Decode(bytes.NewBufferString("x:\n  data: {a: 1}\n"))
	assert.ErrorIs(t, err, archive.ErrMalformed, "missing type")

	err = st.Decode(bytes.NewBufferString("x:\n  type: nope\n  data: {a: 1}\n"))
	require.NoError(t, err)
	_, err = st.Get("x")
	assert.ErrorIs(t, err, archive.ErrUnknownType)
}
