package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistorialPushPop(t *testing.T) {
	h := NewHistorial(8)

	h.Push(MainMenu)
	h.Push(ProvidersList)
	h.Push(ProviderDetails)

	s, ok := h.Pop()
	assert.True(t, ok)
	assert.Equal(t, ProviderDetails, s)

	s, ok = h.Pop()
	assert.True(t, ok)
	assert.Equal(t, ProvidersList, s)
}

func TestHistorialColapsaDuplicadosConsecutivos(t *testing.T) {
	h := NewHistorial(8)

	h.Push(MainMenu)
	h.Push(MainMenu)
	h.Push(MainMenu)

	assert.Equal(t, 1, h.Len())
}

func TestHistorialAcotado(t *testing.T) {
	h := NewHistorial(2)

	h.Push(MainMenu)
	h.Push(ProvidersList)
	h.Push(ProductsList)

	// The oldest entry is dropped once the limit is reached.
	assert.Equal(t, 2, h.Len())
	s, _ := h.Pop()
	assert.Equal(t, ProductsList, s)
	s, _ = h.Pop()
	assert.Equal(t, ProvidersList, s)

	_, ok := h.Pop()
	assert.False(t, ok)
}
