package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Swagger  string                                `json:"swagger"`
		BasePath string                                `json:"basePath"`
		Schemes  []string                              `json:"schemes"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/", doc.BasePath)
	assert.Equal(t, []string{"http"}, doc.Schemes)

	routes := map[string]string{
		"/register":                 "post",
		"/login":                    "post",
		"/logout":                   "post",
		"/api/overview/options":     "get",
		"/api/stats/balance":        "get",
		"/api/stats/categories":     "get",
		"/api/transactions":         "post",
		"/api/transactions-history": "get",
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		assert.Contains(t, doc.Paths[path], method, path)
	}
}
