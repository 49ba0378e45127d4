package api_test

import (
	"net/http"
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCRUD(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/addresses", jsonHandler(http.StatusOK, `[{"id":1,"line1":"Main 1","city":"Lima"}]`))
	mux.Handle("POST /v1/addresses", jsonHandler(http.StatusCreated, `{"id":2,"line1":"Main 2","city":"Lima"}`))
	mux.Handle("PUT /v1/addresses/{id}", jsonHandler(http.StatusOK, `{"id":2,"line1":"Main 3","city":"Lima"}`))
	mux.Handle("DELETE /v1/addresses/{id}", jsonHandler(http.StatusNoContent, ``))

	var rec recorder
	client, _ := newTestClient(t, rec.wrap(mux))
	ctx := t.Context()

	listed := client.Addresses(ctx)
	require.True(t, listed.Success, listed.Error)
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "1", listed.Data[0].ID)

	created := client.CreateAddress(ctx, domain.Address{ID: "ignored", Line1: "Main 2", City: "Lima"})
	require.True(t, created.Success, created.Error)
	assert.Equal(t, "2", created.Data.ID)
	assert.NotContains(t, rec.last().Body, "ignored")

	updated := client.UpdateAddress(ctx, domain.Address{ID: "2", Line1: "Main 3", City: "Lima"})
	require.True(t, updated.Success, updated.Error)
	assert.Equal(t, "/v1/addresses/2", rec.last().Path)
	assert.Equal(t, "Main 3", updated.Data.Line1)

	deleted := client.DeleteAddress(ctx, "2")
	require.True(t, deleted.Success, deleted.Error)
	assert.Equal(t, http.MethodDelete, rec.last().Method)

	invalid := client.CreateAddress(ctx, domain.Address{City: "Lima"})
	assert.False(t, invalid.Success)
	assert.Equal(t, "address line required", invalid.Error)
	assert.Equal(t, 4, rec.count())
}
