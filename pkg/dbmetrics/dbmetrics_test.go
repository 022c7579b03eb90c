package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM appointments"))
	assert.Equal(t, "insert", operation("  INSERT INTO appointments (id) VALUES ($1)"))
	assert.Equal(t, "delete", operation("DELETE FROM appointments WHERE id = $1"))
	assert.Equal(t, "unknown", operation(""))
}
