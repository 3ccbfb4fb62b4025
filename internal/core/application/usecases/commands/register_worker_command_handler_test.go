package commands_test

import (
	"errors"
	"testing"

	"tradematch/internal/core/application/usecases/commands"
	"tradematch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustUserID(t *testing.T, id int64) kernel.UserID {
	t.Helper()
	userID, err := kernel.NewUserID(id)
	require.NoError(t, err)
	return userID
}

func mustPhone(t *testing.T, value string) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone(value)
	require.NoError(t, err)
	return phone
}

func TestRegisterWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterWorkerCommand(
		mustUserID(t, 100), "Alisher", mustPhone(t, "+998901234567"), "Plumber", "North")
	require.NoError(t, err)

	repo := new(MockWorkerRepository)
	uow := new(MockWorkerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*worker.Worker")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterWorkerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterWorkerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterWorkerCommand{} // not constructed properly
	factory := new(MockWorkerUoWFactory)
	h := commands.NewRegisterWorkerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrRegisterWorkerCommandIsNotConstructed)
}

func TestRegisterWorkerCommandHandler_Handle_UpsertError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterWorkerCommand(
		mustUserID(t, 100), "Alisher", mustPhone(t, "+998901234567"), "Plumber", "North")
	require.NoError(t, err)

	repo := new(MockWorkerRepository)
	uow := new(MockWorkerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*worker.Worker")).
			Return(errors.New("storage error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterWorkerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
