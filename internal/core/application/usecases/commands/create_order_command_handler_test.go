package commands_test

import (
	"errors"
	"testing"

	"tradematch/internal/core/application/usecases/commands"
	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderHandler(
	t *testing.T, factory commands.UoWFactory, notifier *MockNotifier,
) commands.CreateOrderCommandHandler {
	t.Helper()
	h, err := commands.NewCreateOrderCommandHandler(
		factory, services.NewMatcher(), testDispatcher(t, notifier), 10)
	require.NoError(t, err)
	return h
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requesterID := mustUserID(t, 200)
	cmd, err := commands.NewCreateOrderCommand(
		requesterID, "Plumber", "North", "+998907654321", "leaking pipe")
	require.NoError(t, err)

	matching := mustWorker(t, 100)
	offTrade, err := worker.NewWorker(
		mustUserID(t, 101), "Bobur", mustPhone(t, "+998901112233"), "Electrician", "North")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				require.NoError(t, o.AssignID(1))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("GetAllActive", mock.Anything).
			Return([]*worker.Worker{matching, offTrade}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Twice()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, matching.ID(), mock.Anything).Return(nil).Once()

	h := newCreateOrderHandler(t, factory, notifier)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Order.ID())
	require.Len(t, result.Candidates, 1)
	require.True(t, result.Candidates[0].ID().IsEqual(matching.ID()))
	require.Equal(t, 1, result.Delivered)
	notifier.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoCandidates(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		mustUserID(t, 200), "Roofer", "South", "+998907654321", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				require.NoError(t, o.AssignID(7))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("GetAllActive", mock.Anything).Return([]*worker.Worker{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Twice()

	notifier := new(MockNotifier)
	h := newCreateOrderHandler(t, factory, notifier)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, result.Candidates)
	require.Zero(t, result.Delivered)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		mustUserID(t, 200), "Plumber", "North", "+998907654321", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("storage error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := newCreateOrderHandler(t, factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommand_Validation(t *testing.T) {
	requesterID := mustUserID(t, 200)

	_, err := commands.NewCreateOrderCommand(requesterID, "", "North", "+998907654321", "")
	require.ErrorIs(t, err, commands.ErrTradeIsRequired)

	_, err = commands.NewCreateOrderCommand(requesterID, "Plumber", " ", "+998907654321", "")
	require.ErrorIs(t, err, commands.ErrRegionIsRequired)

	_, err = commands.NewCreateOrderCommand(requesterID, "Plumber", "North", "", "")
	require.ErrorIs(t, err, commands.ErrContactIsRequired)

	_, err = commands.NewCreateOrderCommand(requesterID, "Plumber", "North", "not a phone", "")
	require.Error(t, err)

	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
