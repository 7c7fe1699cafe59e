package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("empty body decodes as an empty object", func(t *testing.T) {
		var dst map[string]interface{}
		req := httptest.NewRequest(http.MethodPost, "/api/tags", strings.NewReader("  "))

		require.NoError(t, DecodeJSON(req, &dst))
		assert.Empty(t, dst)
	})

	t.Run("malformed body", func(t *testing.T) {
		var dst map[string]interface{}
		req := httptest.NewRequest(http.MethodPost, "/api/tags", strings.NewReader(`{"tag_name":`))

		assert.Error(t, DecodeJSON(req, &dst))
	})
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "price is required.", ValidationMessage("price", "required", ""))
	assert.Equal(t, "stock must be numeric.", ValidationMessage("stock", "numeric", ""))
	assert.Equal(t, "category_id must be a whole number.", ValidationMessage("category_id", "number", ""))
}
