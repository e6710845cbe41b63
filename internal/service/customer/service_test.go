package customer_test

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
	"github.com/vladislavdragonenkov/pedidos/internal/service/customer"
	"github.com/vladislavdragonenkov/pedidos/internal/storage/memory"
)

func newService() *customer.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return customer.NewService(memory.NewCustomerRepository(), logger.WithField("component", "test"))
}

func TestCustomerCRUD(t *testing.T) {
	svc := newService()

	c := domain.Customer{
		ID:        uuid.New(),
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     "maria@example.com",
		CPF:       "58027658012",
	}

	inserted, err := svc.Insert(c)
	require.NoError(t, err)
	require.True(t, inserted.Same(c))

	got, err := svc.Get(c.ID)
	require.NoError(t, err)
	require.Equal(t, "Maria", got.FirstName)

	c.FirstName = "Mariana"
	require.NoError(t, svc.Update(c))
	got, err = svc.Get(c.ID)
	require.NoError(t, err)
	require.Equal(t, "Mariana", got.FirstName)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.Delete(c.ID))
	_, err = svc.Get(c.ID)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerUpdateMissing(t *testing.T) {
	svc := newService()
	err := svc.Update(domain.Customer{ID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
