package order_test

import (
	"testing"
	"time"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUserID(t *testing.T, raw int64) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID(raw)
	require.NoError(t, err)
	return id
}

func mustPhone(t *testing.T, raw string) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone(raw)
	require.NoError(t, err)
	return phone
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustUserID(t, 555), "Plumber", "North", mustPhone(t, "+998901234567"), "leaking tap")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts new without acceptor", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, "Plumber", o.Trade())
		assert.Equal(t, "North", o.Region())
		assert.Equal(t, "leaking tap", o.Comment())
		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.AcceptedBy())
		assert.Nil(t, o.AcceptedAt())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Second)
	})

	t.Run("empty comment is allowed", func(t *testing.T) {
		o, err := order.NewOrder(mustUserID(t, 555), "Plumber", "North", mustPhone(t, "+998901234567"), "")

		require.NoError(t, err)
		assert.Empty(t, o.Comment())
	})

	t.Run("short trade is rejected", func(t *testing.T) {
		_, err := order.NewOrder(mustUserID(t, 555), "el", "North", mustPhone(t, "+998901234567"), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("short region is rejected", func(t *testing.T) {
		_, err := order.NewOrder(mustUserID(t, 555), "Plumber", "N", mustPhone(t, "+998901234567"), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid requester is rejected", func(t *testing.T) {
		var requester kernel.UserID

		_, err := order.NewOrder(requester, "Plumber", "North", mustPhone(t, "+998901234567"), "")

		require.Error(t, err)
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignID(17))
		assert.Equal(t, int64(17), o.ID())
	})

	t.Run("second assignment fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignID(17))

		require.Error(t, o.AssignID(18))
		assert.Equal(t, int64(17), o.ID())
	})

	t.Run("non-positive id fails", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AssignID(0))
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("first accept wins", func(t *testing.T) {
		o := newTestOrder(t)
		workerID := mustUserID(t, 42)
		at := time.Now().UTC()

		err := o.Accept(workerID, at)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.AcceptedBy())
		assert.True(t, o.AcceptedBy().IsEqual(workerID))
		require.NotNil(t, o.AcceptedAt())
		assert.Equal(t, at, *o.AcceptedAt())
	})

	t.Run("second accept is rejected and state is untouched", func(t *testing.T) {
		o := newTestOrder(t)
		winner := mustUserID(t, 42)
		require.NoError(t, o.Accept(winner, time.Now().UTC()))

		err := o.Accept(mustUserID(t, 43), time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.AcceptedBy().IsEqual(winner))
	})

	t.Run("re-accept by the winner is also rejected", func(t *testing.T) {
		o := newTestOrder(t)
		winner := mustUserID(t, 42)
		require.NoError(t, o.Accept(winner, time.Now().UTC()))

		require.Error(t, o.Accept(winner, time.Now().UTC()))
	})

	t.Run("invalid worker id is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		var workerID kernel.UserID

		require.Error(t, o.Accept(workerID, time.Now().UTC()))
		assert.Equal(t, order.New, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	contact := "+998901234567"
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("restores a new order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			5, mustUserID(t, 555), "Plumber", "North", mustPhone(t, contact), "",
			order.New, nil, nil, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(5), o.ID())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("restores an accepted order", func(t *testing.T) {
		workerID := mustUserID(t, 42)
		acceptedAt := createdAt.Add(time.Minute)

		o, err := order.RestoreOrder(
			5, mustUserID(t, 555), "Plumber", "North", mustPhone(t, contact), "",
			order.Accepted, &workerID, &acceptedAt, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.AcceptedBy().IsEqual(workerID))
	})

	t.Run("accepted without acceptor is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			5, mustUserID(t, 555), "Plumber", "North", mustPhone(t, contact), "",
			order.Accepted, nil, nil, createdAt,
		)

		require.Error(t, err)
	})

	t.Run("new with acceptor is rejected", func(t *testing.T) {
		workerID := mustUserID(t, 42)
		acceptedAt := createdAt.Add(time.Minute)

		_, err := order.RestoreOrder(
			5, mustUserID(t, 555), "Plumber", "North", mustPhone(t, contact), "",
			order.New, &workerID, &acceptedAt, createdAt,
		)

		require.Error(t, err)
	})

	t.Run("acceptor without timestamp is rejected", func(t *testing.T) {
		workerID := mustUserID(t, 42)

		_, err := order.RestoreOrder(
			5, mustUserID(t, 555), "Plumber", "North", mustPhone(t, contact), "",
			order.Accepted, &workerID, nil, createdAt,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
