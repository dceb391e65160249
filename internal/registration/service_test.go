// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package registration_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melabook/melabook/internal/core/geography"
	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/docstore"
	"github.com/melabook/melabook/internal/registration"
)

const geographyJSON = `{
	"data": {
		"states": [
			{
				"name": "Odisha",
				"districts": [
					{
						"name": "Khordha",
						"blocks": [
							{"name": "Bhubaneswar", "gramPanchayats": ["Andharua"]}
						]
					}
				]
			}
		]
	}
}`

const taxonomyJSON = `{
	"Products": [
		{"Product Category ": "Handloom", "Product Sub Category ": "Saree"},
		{"Product Category ": "Handloom", "Product Sub Category ": "Dress Material"},
		{"Product Category ": "Food Products", "Product Sub Category ": "Pickles"}
	]
}`

func newTestService(t *testing.T) (*registration.Service, docstore.Store) {
	t.Helper()

	geo, err := geography.Parse([]byte(geographyJSON))
	require.NoError(t, err)

	global, err := taxonomy.Parse([]byte(taxonomyJSON))
	require.NoError(t, err)

	store := docstore.NewMemory()
	repo := registration.NewDocstoreRepository(store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return registration.NewService(repo, geo, global, logger), store
}

func validRegistration() registration.Registration {
	return registration.Registration{
		ExhibitionID: "mela-2024",
		StallNumber:  "A-101",
		Location: registration.Location{
			Odisha: &registration.OdishaLocation{
				District:      "Khordha",
				Block:         "Bhubaneswar",
				GramPanchayat: "Andharua",
			},
		},
		OrganizationType: "SHG",
		Participants: []registration.Participant{
			{Name: "Sasmita Behera", Phone: "9437000001"},
		},
		Inventory: []registration.InventoryItem{
			{ProductCategory: "Handloom", ProductName: "Saree", Quantity: 40, Value: 120000},
		},
	}
}

func TestService_Create(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRegistration())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-101", fetched.StallNumber)
	assert.Equal(t, "Khordha", fetched.Location.Odisha.District)
}

func TestService_Create_UnknownDistrict(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.Location.Odisha.District = "Wakanda"

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Equal(t, "location.odisha.district", appError.Details[0].Field)
}

func TestService_Create_UnknownBlock(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.Location.Odisha.Block = "Banki"

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)
	assert.Equal(t, "location.odisha.block", apperr.As(err).Details[0].Field)
}

func TestService_Create_UnknownGramPanchayat(t *testing.T) {
	service, _ := newTestService(t)

	// District and block resolve, but the gram panchayat is not under that block
	reg := validRegistration()
	reg.Location.Odisha.GramPanchayat = "Atlantis"

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)
	assert.Equal(t, "location.odisha.gramPanchayat", apperr.As(err).Details[0].Field)
}

func TestService_Create_GramPanchayatOptional(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.Location.Odisha.GramPanchayat = ""

	_, err := service.Create(context.Background(), reg)
	require.NoError(t, err)
}

func TestService_Create_BothLocationVariants(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.Location.Other = &registration.OtherLocation{State: "West Bengal"}

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)
	assert.Equal(t, "location", apperr.As(err).Details[0].Field)
}

func TestService_Create_OtherStateLocation(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.Location = registration.Location{
		Other: &registration.OtherLocation{State: "West Bengal", Address: "Kolkata"},
	}

	created, err := service.Create(context.Background(), reg)
	require.NoError(t, err)
	assert.Nil(t, created.Location.Odisha)
	assert.Equal(t, "West Bengal", created.Location.Other.State)
}

func TestService_Create_InventoryNotInTaxonomy(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	// "Pickles" exists only under "Food Products"
	reg.Inventory = []registration.InventoryItem{
		{ProductCategory: "Handloom", ProductName: "Pickles", Quantity: 5, Value: 500},
	}

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)
	assert.Equal(t, "inventory[0]", apperr.As(err).Details[0].Field)
}

func TestService_Create_NoParticipants(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.Participants = nil

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)
	assert.Equal(t, "participants", apperr.As(err).Details[0].Field)
}

func TestService_Create_OthersRequiresDetail(t *testing.T) {
	service, _ := newTestService(t)

	reg := validRegistration()
	reg.OrganizationType = "Others"
	reg.OtherOrganization = "   "

	_, err := service.Create(context.Background(), reg)
	require.Error(t, err)
	assert.Equal(t, "otherOrganization", apperr.As(err).Details[0].Field)
}

func TestService_Create_ClearsStaleOtherDetail(t *testing.T) {
	service, _ := newTestService(t)

	// Operator typed free text, then switched the dropdown back
	reg := validRegistration()
	reg.OrganizationType = "SHG"
	reg.OtherOrganization = "left over text"

	created, err := service.Create(context.Background(), reg)
	require.NoError(t, err)
	assert.Empty(t, created.OtherOrganization)
}

func TestService_ListByExhibition(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first := validRegistration()
	_, err := service.Create(ctx, first)
	require.NoError(t, err)

	second := validRegistration()
	second.StallNumber = "A-102"
	_, err = service.Create(ctx, second)
	require.NoError(t, err)

	other := validRegistration()
	other.ExhibitionID = "mela-2023"
	_, err = service.Create(ctx, other)
	require.NoError(t, err)

	listed, err := service.ListByExhibition(ctx, "mela-2024")
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestService_Update_StripsIdentityFields(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRegistration())
	require.NoError(t, err)

	err = service.Update(ctx, created.ID, map[string]any{
		"stallNumber":           "HACKED",
		"accommodationRequired": true,
	})
	require.NoError(t, err)

	fetched, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-101", fetched.StallNumber)
	assert.True(t, fetched.AccommodationRequired)
}

func TestService_Update_OnlyIdentityFields(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRegistration())
	require.NoError(t, err)

	err = service.Update(ctx, created.ID, map[string]any{"stallNumber": "B-200"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_Update_ValidatesInventory(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRegistration())
	require.NoError(t, err)

	err = service.Update(ctx, created.ID, map[string]any{
		"inventory": []map[string]any{
			{"productCategory": "Handloom", "productName": "Pickles", "quantity": 1, "value": 100},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// Rejected update must not have touched the stored document
	fetched, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saree", fetched.Inventory[0].ProductName)
}

func TestService_Update_Missing(t *testing.T) {
	service, _ := newTestService(t)

	err := service.Update(context.Background(), "ghost", map[string]any{"accommodationRequired": true})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_InventoryScope(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRegistration())
	require.NoError(t, err)

	scope, err := service.InventoryScope(ctx, created.ID)
	require.NoError(t, err)

	// Scope answers only from the stall's own inventory
	assert.True(t, scope.Has("Handloom", "Saree"))
	assert.False(t, scope.Has("Handloom", "Dress Material"))
	assert.False(t, scope.Has("Food Products", "Pickles"))
}
