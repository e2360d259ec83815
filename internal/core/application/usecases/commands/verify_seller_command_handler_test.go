package commands_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSellerRepository struct{ mock.Mock }

func (m *MockSellerRepository) Add(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*seller.Seller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

func (m *MockSellerRepository) Update(ctx context.Context, s *seller.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockSellerUoW struct{ mock.Mock }

func (m *MockSellerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSellerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSellerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSellerUoW) SellerRepository() ports.SellerRepository {
	args := m.Called()
	return args.Get(0).(ports.SellerRepository)
}

type MockSellerUoWFactory struct{ mock.Mock }

func (m *MockSellerUoWFactory) Create() commands.SellerUoW {
	args := m.Called()
	return args.Get(0).(commands.SellerUoW)
}

func TestVerifySellerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s, err := seller.NewSeller(kernel.NewUUID(), kernel.NewUUID(), "Shop A")
	require.NoError(t, err)
	cmd, err := commands.NewVerifySellerCommand(adminActor(t), s.ID())
	require.NoError(t, err)

	repo := new(MockSellerRepository)
	uow := new(MockSellerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
		repo.On("Update", mock.Anything, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifySellerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, s.IsVerified())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestVerifySellerCommandHandler_Handle_AlreadyVerifiedIsNoop(t *testing.T) {
	ctx := t.Context()
	s, err := seller.NewSeller(kernel.NewUUID(), kernel.NewUUID(), "Shop A")
	require.NoError(t, err)
	s.Verify()

	cmd, err := commands.NewVerifySellerCommand(adminActor(t), s.ID())
	require.NoError(t, err)

	repo := new(MockSellerRepository)
	uow := new(MockSellerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
		repo.On("Update", mock.Anything, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifySellerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, s.IsVerified())
}

func TestVerifySellerCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleSeller)
	require.NoError(t, err)
	cmd, err := commands.NewVerifySellerCommand(act, kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockSellerUoWFactory)
	h := commands.NewVerifySellerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestVerifySellerCommandHandler_Handle_SellerNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewVerifySellerCommand(adminActor(t), id)
	require.NoError(t, err)

	repo := new(MockSellerRepository)
	uow := new(MockSellerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("sellerID", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifySellerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}
