package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CantidadCero_OutOfStock(t *testing.T) {
	assert.Equal(t, StatusOutOfStock, Status(0, 10))
	// cantidad cero gana aunque el umbral también sea cero
	assert.Equal(t, StatusOutOfStock, Status(0, 0))
}

func TestStatus_EnElUmbral_LowStock(t *testing.T) {
	assert.Equal(t, StatusLowStock, Status(10, 10))
	assert.Equal(t, StatusLowStock, Status(1, 10))
}

func TestStatus_SobreElUmbral_InStock(t *testing.T) {
	assert.Equal(t, StatusInStock, Status(11, 10))
	assert.Equal(t, StatusInStock, Status(1, 0))
}
