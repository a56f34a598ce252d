package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_EliminaAcentos(t *testing.T) {
	assert.Equal(t, "garcia", Fold("García"))
	assert.Equal(t, "munoz", Fold("Muñoz"))
	assert.Equal(t, "jose perez", Fold("José Pérez"))
}

func TestFold_SinAcentosQuedaIgual(t *testing.T) {
	assert.Equal(t, "john doe", Fold("John Doe"))
	assert.Equal(t, "", Fold(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("María García", "garcia"))
	assert.True(t, ContainsFold("John", "JOH"))
	assert.False(t, ContainsFold("John", "jane"))
}
