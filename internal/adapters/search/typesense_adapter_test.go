package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The search request sorts by name, so the schema must declare the name
// field sortable or Typesense rejects every query.
func TestCatalogSchema_SortFieldIsSortable(t *testing.T) {
	schema := catalogSchema()

	sortField := strings.SplitN(searchSortBy, ":", 2)[0]

	var found bool
	for _, field := range schema.Fields {
		if field.Name != sortField {
			continue
		}
		found = true
		require.NotNil(t, field.Sort, "field %q must be declared sortable", sortField)
		assert.True(t, *field.Sort)
	}
	require.True(t, found, "schema has no field named %q", sortField)
}

func TestCatalogSchema_KindIsFaceted(t *testing.T) {
	schema := catalogSchema()

	var kind *bool
	for _, field := range schema.Fields {
		if field.Name == "kind" {
			kind = field.Facet
		}
	}

	require.NotNil(t, kind, "kind field must be faceted for per-kind filtering")
	assert.True(t, *kind)
}
