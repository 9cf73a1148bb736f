package usecase

import (
	"strings"

	"github.com/xavierca1/ligue-mailer/internal/entity"
)

// NormalizeRow merges a raw row over the schema's fallback values. Every
// schema field is present in the result; a column that is blank after
// trimming keeps its fallback, anything else overrides it. Columns not
// declared in the schema pass through untouched.
func NormalizeRow(raw map[string]string, fields []entity.SchemaField) map[string]string {
	properties := make(map[string]string, len(fields)+len(raw))
	for _, f := range fields {
		properties[f.Title] = f.FallbackValue
	}
	for key, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		properties[key] = value
	}
	return properties
}
