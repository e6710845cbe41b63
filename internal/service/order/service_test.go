package order_test

import (
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
	"github.com/vladislavdragonenkov/pedidos/internal/service/order"
	"github.com/vladislavdragonenkov/pedidos/internal/storage/memory"
)

// recordingNotifier запоминает опубликованные события.
type recordingNotifier struct {
	events []domain.OrderEvent
	err    error
}

func (n *recordingNotifier) Publish(event domain.OrderEvent) error {
	if n.err != nil {
		return n.err
	}
	n.events = append(n.events, event)
	return nil
}

// recordingMailer запоминает отправленные письма и опционально падает.
type recordingMailer struct {
	sent []sentEmail
	err  error
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "order-service-test")
}

type fixture struct {
	svc      *order.Service
	repo     domain.OrderRepository
	notifier *recordingNotifier
	mailer   *recordingMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := memory.NewOrderRepository()
	notifier := &recordingNotifier{}
	mailer := &recordingMailer{}
	svc := order.NewServiceWithoutMetrics(repo, notifier, mailer, loggerForTests())
	return &fixture{svc: svc, repo: repo, notifier: notifier, mailer: mailer}
}

func validCustomer() domain.Customer {
	return domain.Customer{
		ID:        uuid.New(),
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     "maria@example.com",
		CPF:       "580.276.580-12",
	}
}

func validProduct(name string) domain.Product {
	return domain.Product{
		ID:               uuid.New(),
		Name:             name,
		Price:            decimal.RequireFromString("10.00"),
		ExpressAvailable: true,
	}
}

func intPtr(v int) *int { return &v }

func TestCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusOpen, created.Status)
	require.Empty(t, created.Lines)
	require.NotEqual(t, uuid.Nil, created.ID)

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.True(t, stored.Same(created))

	require.Len(t, f.notifier.events, 1)
	require.Equal(t, domain.EventTypeOrderCreated, f.notifier.events[0].Type)
	require.Equal(t, created.ID, f.notifier.events[0].OrderID)
}

func TestCreate_InvalidCustomer(t *testing.T) {
	f := newFixture(t)

	customer := validCustomer()
	customer.CPF = "123"

	_, err := f.svc.Create(customer, false)
	require.ErrorIs(t, err, domain.ErrInvalidCustomer)

	// Невалидный клиент никогда не должен дойти до репозитория.
	all, listErr := f.repo.ListAll()
	require.NoError(t, listErr)
	require.Empty(t, all)
	require.Empty(t, f.notifier.events)
}

func TestAddProduct_MergesQuantities(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	product := validProduct("Café")
	require.NoError(t, f.svc.AddProduct(created.ID, product, 2))
	require.NoError(t, f.svc.AddProduct(created.ID, product, 3))

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	require.Equal(t, 5, stored.Lines[0].Quantity)
}

func TestAddProduct_DistinctProducts(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	require.NoError(t, f.svc.AddProduct(created.ID, validProduct("Café"), 1))
	require.NoError(t, f.svc.AddProduct(created.ID, validProduct("Leite"), 2))

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 2)
}

func TestAddProduct_Errors(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	t.Run("invalid product", func(t *testing.T) {
		err := f.svc.AddProduct(created.ID, domain.Product{}, 1)
		require.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("zero quantity", func(t *testing.T) {
		err := f.svc.AddProduct(created.ID, validProduct("Café"), 0)
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("negative quantity", func(t *testing.T) {
		err := f.svc.AddProduct(created.ID, validProduct("Café"), -2)
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("order not found", func(t *testing.T) {
		err := f.svc.AddProduct(uuid.New(), validProduct("Café"), 1)
		require.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestAddProduct_ExpressRestriction(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), true)
	require.NoError(t, err)

	regular := validProduct("Arroz")
	regular.ExpressAvailable = false

	err = f.svc.AddProduct(created.ID, regular, 1)
	require.ErrorIs(t, err, domain.ErrProductNotExpress)

	express := validProduct("Café")
	require.NoError(t, f.svc.AddProduct(created.ID, express, 1))

	// Для обычного заказа ограничение не действует.
	plain, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)
	require.NoError(t, f.svc.AddProduct(plain.ID, regular, 1))
}

func TestRemoveProduct_WholeLine(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	product := validProduct("Café")
	require.NoError(t, f.svc.AddProduct(created.ID, product, 7))

	// Nil-количество удаляет позицию независимо от текущего количества.
	require.NoError(t, f.svc.RemoveProduct(created.ID, product, nil))

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Empty(t, stored.Lines)
}

func TestRemoveProduct_ByQuantity(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	product := validProduct("Café")
	require.NoError(t, f.svc.AddProduct(created.ID, product, 5))

	require.NoError(t, f.svc.RemoveProduct(created.ID, product, intPtr(2)))
	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	require.Equal(t, 3, stored.Lines[0].Quantity)

	// Снятие количества, равного остатку, удаляет позицию; в минус не уходим.
	require.NoError(t, f.svc.RemoveProduct(created.ID, product, intPtr(3)))
	stored, err = f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Empty(t, stored.Lines)
}

func TestRemoveProduct_MoreThanRemaining(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	product := validProduct("Café")
	require.NoError(t, f.svc.AddProduct(created.ID, product, 2))
	require.NoError(t, f.svc.RemoveProduct(created.ID, product, intPtr(10)))

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Empty(t, stored.Lines)
}

func TestRemoveProduct_Errors(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)
	product := validProduct("Café")
	require.NoError(t, f.svc.AddProduct(created.ID, product, 1))

	t.Run("invalid product", func(t *testing.T) {
		err := f.svc.RemoveProduct(created.ID, domain.Product{}, nil)
		require.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("negative quantity", func(t *testing.T) {
		err := f.svc.RemoveProduct(created.ID, product, intPtr(-1))
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("order not found", func(t *testing.T) {
		err := f.svc.RemoveProduct(uuid.New(), product, nil)
		require.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("product not in order", func(t *testing.T) {
		err := f.svc.RemoveProduct(created.ID, validProduct("Outro"), nil)
		require.ErrorIs(t, err, domain.ErrProductNotInOrder)
	})
}

func TestFinalize(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	require.NoError(t, f.svc.Finalize(created.ID))

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusFinalized, stored.Status)

	// Одно событие создания + одно событие финализации.
	require.Len(t, f.notifier.events, 2)
	require.Equal(t, domain.EventTypeOrderFinalized, f.notifier.events[1].Type)

	// Ровно одно письмо на верный адрес.
	require.Len(t, f.mailer.sent, 1)
	require.Equal(t, created.Customer.Email, f.mailer.sent[0].to)
	require.NotEmpty(t, f.mailer.sent[0].subject)
	require.NotEmpty(t, f.mailer.sent[0].body)
}

func TestFinalize_EmailFailure(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	f.mailer.err = errors.New("smtp unreachable")

	err = f.svc.Finalize(created.ID)
	require.ErrorIs(t, err, domain.ErrEmailSend)

	// Состояние уже сохранено: финализация не атомарна с доставкой письма.
	stored, getErr := f.repo.Get(created.ID)
	require.NoError(t, getErr)
	require.Equal(t, domain.OrderStatusFinalized, stored.Status)
	require.Len(t, f.notifier.events, 2)
}

func TestFinalize_NotFound(t *testing.T) {
	f := newFixture(t)
	err := f.svc.Finalize(uuid.New())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.Empty(t, f.mailer.sent)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(created.ID))

	stored, err := f.repo.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusCancelled, stored.Status)

	require.Len(t, f.notifier.events, 2)
	require.Equal(t, domain.EventTypeOrderCancelled, f.notifier.events[1].Type)
	// Отмена писем не рассылает.
	require.Empty(t, f.mailer.sent)
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture(t)
	require.ErrorIs(t, f.svc.Cancel(uuid.New()), domain.ErrOrderNotFound)
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	require.True(t, got.Same(created))

	_, err = f.svc.Get(uuid.New())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestList_NoFilterKeepsOrder(t *testing.T) {
	f := newFixture(t)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		created, err := f.svc.Create(validCustomer(), false)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	got, err := f.svc.List(nil)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := range got {
		require.Equal(t, ids[i], got[i].ID)
	}
}

func TestList_TermFilterByProductName(t *testing.T) {
	f := newFixture(t)

	// 5 заказов, из них 2 содержат товар с искомым названием.
	var withCoffee []uuid.UUID
	for i := 0; i < 5; i++ {
		created, err := f.svc.Create(validCustomer(), false)
		require.NoError(t, err)
		if i == 1 || i == 3 {
			require.NoError(t, f.svc.AddProduct(created.ID, validProduct("Café Especial"), 1))
			withCoffee = append(withCoffee, created.ID)
		} else {
			require.NoError(t, f.svc.AddProduct(created.ID, validProduct("Arroz"), 1))
		}
	}

	got, err := f.svc.List(&domain.OrderFilter{Term: "Café"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, withCoffee[0], got[0].ID)
	require.Equal(t, withCoffee[1], got[1].ID)
}

func TestList_StateFilter(t *testing.T) {
	f := newFixture(t)

	open, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)
	finalized, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)
	cancelled, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)

	require.NoError(t, f.svc.Finalize(finalized.ID))
	require.NoError(t, f.svc.Cancel(cancelled.ID))

	got, err := f.svc.List(&domain.OrderFilter{States: []domain.OrderStatus{domain.OrderStatusOpen}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, open.ID, got[0].ID)
}

func TestNotifierFailureDoesNotFailOperation(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("broker down")

	created, err := f.svc.Create(validCustomer(), false)
	require.NoError(t, err)
	require.NoError(t, f.svc.Finalize(created.ID))
}

func TestNilNotifier(t *testing.T) {
	repo := memory.NewOrderRepository()
	svc := order.NewServiceWithoutMetrics(repo, nil, &recordingMailer{}, loggerForTests())

	created, err := svc.Create(validCustomer(), false)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(created.ID))
}
