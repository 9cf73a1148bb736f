package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-mailer/internal/entity"
)

func TestNormalizeRowAppliesFallbacks(t *testing.T) {
	fields := []entity.SchemaField{
		{Title: "plan", FallbackValue: "free"},
		{Title: "city", FallbackValue: "unknown"},
	}

	row := map[string]string{"name": "alice", "email": "alice@x.com"}

	properties := NormalizeRow(row, fields)

	assert.Equal(t, "free", properties["plan"])
	assert.Equal(t, "unknown", properties["city"])
	assert.Equal(t, "alice", properties["name"])
	assert.Equal(t, "alice@x.com", properties["email"])
}

func TestNormalizeRowOverridesFallbackWithValue(t *testing.T) {
	fields := []entity.SchemaField{{Title: "plan", FallbackValue: "free"}}

	properties := NormalizeRow(map[string]string{"plan": "pro"}, fields)

	assert.Equal(t, "pro", properties["plan"])
}

func TestNormalizeRowIgnoresBlankValues(t *testing.T) {
	fields := []entity.SchemaField{{Title: "plan", FallbackValue: "free"}}

	assert.Equal(t, "free", NormalizeRow(map[string]string{"plan": ""}, fields)["plan"])
	assert.Equal(t, "free", NormalizeRow(map[string]string{"plan": "   "}, fields)["plan"])
}

func TestNormalizeRowKeepsUndeclaredColumns(t *testing.T) {
	fields := []entity.SchemaField{{Title: "plan", FallbackValue: "free"}}

	properties := NormalizeRow(map[string]string{"referrer": "ads"}, fields)

	assert.Equal(t, "ads", properties["referrer"])
	assert.Equal(t, "free", properties["plan"])
}

func TestNormalizeRowIsPure(t *testing.T) {
	fields := []entity.SchemaField{{Title: "plan", FallbackValue: "free"}}
	row := map[string]string{"name": "alice", "plan": "pro"}

	first := NormalizeRow(row, fields)
	second := NormalizeRow(row, fields)

	assert.Equal(t, first, second)
	// The input row must not be touched.
	assert.Equal(t, map[string]string{"name": "alice", "plan": "pro"}, row)
}
