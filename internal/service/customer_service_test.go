package service

import (
	"context"
	"testing"

	"printshop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, zerolog.Nop())

	repo.On("GetByPhone", ctx, "+5511999998888").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(nil)

	customer, err := svc.Create(ctx, &model.CustomerRequest{
		Name:  "Maria Santos",
		Phone: "+5511999998888",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, "Maria Santos", customer.Name)
	repo.AssertExpectations(t)
}

func TestCustomerService_Create_DuplicatePhone(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, zerolog.Nop())

	existing := &model.Customer{ID: uuid.New(), Name: "Maria", Phone: "+5511999998888"}
	repo.On("GetByPhone", ctx, "+5511999998888").Return(existing, nil)

	_, err := svc.Create(ctx, &model.CustomerRequest{Name: "Other", Phone: "+5511999998888"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(new(MockCustomerRepository), zerolog.Nop())

	tests := []struct {
		name string
		req  *model.CustomerRequest
	}{
		{name: "nil", req: nil},
		{name: "missing name", req: &model.CustomerRequest{Phone: "+55"}},
		{name: "missing phone", req: &model.CustomerRequest{Name: "Maria"}},
		{name: "blank name", req: &model.CustomerRequest{Name: "  ", Phone: "+55"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCustomerService_GetByPhone_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, zerolog.Nop())

	repo.On("GetByPhone", ctx, "+5500000000000").Return(nil, nil)

	_, err := svc.GetByPhone(ctx, "+5500000000000")
	assert.Equal(t, model.ErrCustomerNotFound, err)
}
