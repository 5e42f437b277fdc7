package api_test

import (
	"encoding/json"
	"testing"

	"boutique/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	assert.Equal(t, "/api/v1", doc.Servers[0].URL)
	for _, path := range []string{
		"/clients",
		"/clients/{clientId}",
		"/clients/mobile/{mobileNumber}/summary",
		"/work-orders/{orderId}",
		"/work-orders/filter",
		"/dashboard/summary",
		"/statuses/{status}",
		"/search/work-orders",
		"/admin/data",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	status := doc.Components.Schemas["Status"].Value
	require.NotNil(t, status)
	assert.Len(t, status.Enum, 5)
	assert.Contains(t, status.Enum, "Delivered – Payment Pending")
}

func TestRegister(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)
	require.NoError(t, api.Register(doc))
	require.NoError(t, api.Register(doc))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
}
