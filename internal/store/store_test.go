package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registro struct {
	ID     string
	Nombre string
}

func TestNextIDMonotonico(t *testing.T) {
	c := New[registro]("PROV-", 2)

	assert.Equal(t, "PROV-01", c.NextID())
	assert.Equal(t, "PROV-02", c.NextID())

	// The sequence never reuses an id, even after the collection shrinks
	// back via Seed.
	c.Seed([]registro{{ID: "PROV-01"}})
	assert.Equal(t, "PROV-02", c.NextID())
}

func TestNextIDNoColisionaConBajas(t *testing.T) {
	c := New[registro]("INC-", 3)
	c.Seed([]registro{{ID: "INC-001"}, {ID: "INC-002"}})

	// Two rapid submissions must get distinct ids regardless of the
	// collection length in between.
	a := c.NextID()
	b := c.NextID()
	assert.Equal(t, "INC-003", a)
	assert.Equal(t, "INC-004", b)
	assert.NotEqual(t, a, b)
}

func TestVersionAvanzaSoloConMutacion(t *testing.T) {
	c := New[registro]("X-", 2)
	c.Seed([]registro{{ID: "X-01", Nombre: "uno"}})
	v := c.Version()

	// Reads do not advance the version.
	_ = c.Items()
	_, _ = c.Find(func(r registro) bool { return r.ID == "X-01" })
	assert.Equal(t, v, c.Version())

	c.Append(registro{ID: "X-02"})
	assert.Equal(t, v+1, c.Version())

	// A zero-match update leaves the version untouched.
	matched := c.Update(
		func(r registro) bool { return r.ID == "no-existe" },
		func(r registro) registro { return r },
	)
	assert.Zero(t, matched)
	assert.Equal(t, v+1, c.Version())
}

func TestUpdateReemplazaElSliceCompleto(t *testing.T) {
	c := New[registro]("X-", 2)
	c.Seed([]registro{{ID: "X-01", Nombre: "uno"}, {ID: "X-02", Nombre: "dos"}})

	antes := c.Items()
	matched := c.Update(
		func(r registro) bool { return r.ID == "X-02" },
		func(r registro) registro {
			r.Nombre = "dos editado"
			return r
		},
	)
	require.Equal(t, 1, matched)

	// Copy-on-write: the previous snapshot is untouched.
	assert.Equal(t, "dos", antes[1].Nombre)
	assert.Equal(t, "dos editado", c.Items()[1].Nombre)
}

func TestPrependInsertaAlFrente(t *testing.T) {
	c := New[registro]("V-", 3)
	c.Seed([]registro{{ID: "V-001"}})

	c.Prepend(registro{ID: "V-002"})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "V-002", c.Items()[0].ID)
	assert.Equal(t, "V-001", c.Items()[1].ID)
}
