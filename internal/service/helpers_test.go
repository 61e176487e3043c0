package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"repairdesk/internal/contract"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/sqlite"
	"repairdesk/internal/utils"
)

// fixture is the shared world for service tests: an in-memory database
// with one fully seeded company ("C") plus a second company ("D") used for
// isolation checks.
type fixture struct {
	db       *gorm.DB
	validate *validator.Validate
	cipher   *utils.FieldCipher

	companyC *entity.Company
	companyD *entity.Company
	stagesC  []*entity.ServiceStatus
	clientC  *entity.Client
	clientD  *entity.Client
	model    *entity.Model
	userC    *entity.User
	userD    *entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	cipher, err := utils.NewFieldCipher("unit-test-secret")
	require.NoError(t, err)

	f := &fixture{
		db:       db,
		validate: validator.New(),
		cipher:   cipher,
	}

	f.companyC = f.seedCompany(t, "Gadget Clinic")
	f.companyD = f.seedCompany(t, "Pixel Repairs")
	f.stagesC = f.seedStages(t, f.companyC, "Received", "Diagnosed", "Repaired")
	f.clientC = f.seedClient(t, f.companyC, "Ana", "Suarez")
	f.clientD = f.seedClient(t, f.companyD, "Bruno", "Dias")
	f.model = f.seedModel(t, "Galaxy S21", "S21")
	f.userC = f.seedUser(t, f.companyC, "tech-c", "tech@gadget.test", "user")
	f.userD = f.seedUser(t, f.companyD, "tech-d", "tech@pixel.test", "user")
	return f
}

func (f *fixture) seedCompany(t *testing.T, name string) *entity.Company {
	t.Helper()
	now := utils.NowUTC()
	company := &entity.Company{
		UUID:      utils.NewPublicID(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.db.Create(company).Error)
	return company
}

func (f *fixture) seedStages(t *testing.T, company *entity.Company, names ...string) []*entity.ServiceStatus {
	t.Helper()
	now := utils.NowUTC()
	stages := make([]*entity.ServiceStatus, len(names))
	for i, name := range names {
		stages[i] = &entity.ServiceStatus{
			UUID:       utils.NewPublicID(),
			Name:       name,
			StageOrder: i + 1,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
			CompanyID:  company.CompanyID,
		}
		require.NoError(t, f.db.Create(stages[i]).Error)
	}
	return stages
}

func (f *fixture) seedClient(t *testing.T, company *entity.Company, names, lastNames string) *entity.Client {
	t.Helper()
	now := utils.NowUTC()

	cipheredNames, err := f.cipher.Encrypt(names)
	require.NoError(t, err)
	cipheredLast, err := f.cipher.Encrypt(lastNames)
	require.NoError(t, err)

	person := &entity.Person{
		UUID:      utils.NewPublicID(),
		Names:     cipheredNames,
		LastNames: cipheredLast,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.db.Create(person).Error)

	client := &entity.Client{
		UUID:      utils.NewPublicID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		CompanyID: company.CompanyID,
		PersonID:  person.PersonID,
	}
	require.NoError(t, f.db.Create(client).Error)
	return client
}

func (f *fixture) seedModel(t *testing.T, name, short string) *entity.Model {
	t.Helper()
	brand := &entity.Brand{
		UUID:      utils.NewPublicID(),
		Name:      "Samsung",
		IsActive:  true,
		CreatedAt: utils.NowUTC(),
	}
	require.NoError(t, f.db.Create(brand).Error)

	model := &entity.Model{
		UUID:      utils.NewPublicID(),
		Name:      name,
		ShortName: short,
		IsActive:  true,
		CreatedAt: utils.NowUTC(),
		BrandID:   brand.BrandID,
	}
	require.NoError(t, f.db.Create(model).Error)
	return model
}

func (f *fixture) seedUser(t *testing.T, company *entity.Company, nick, email, roleName string) *entity.User {
	t.Helper()
	now := utils.NowUTC()

	var role entity.Role
	err := f.db.Where("name = ?", roleName).First(&role).Error
	if err != nil {
		role = entity.Role{
			UUID:      utils.NewPublicID(),
			Name:      roleName,
			IsActive:  true,
			CreatedAt: now,
		}
		require.NoError(t, f.db.Create(&role).Error)
	}

	user := &entity.User{
		UUID:      utils.NewPublicID(),
		Nick:      nick,
		Email:     email,
		Password:  "not-a-real-hash",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		RoleID:    role.RoleID,
		CompanyID: company.CompanyID,
	}
	require.NoError(t, f.db.Create(user).Error)

	user.Role = &role
	return user
}

func actorFor(user *entity.User) *entity.Actor {
	return &entity.Actor{User: user}
}

func elevatedActorFor(user *entity.User) *entity.Actor {
	return &entity.Actor{User: user, Elevated: true}
}

// createOrder seeds an order through OrderService so the initial journal
// entry exists, returning the stored order id.
func (f *fixture) createOrder(t *testing.T, actor *entity.Actor, client *entity.Client) int64 {
	t.Helper()
	svc := NewOrderService(f.db, f.validate, f.cipher)

	resp, apierr := svc.Create(actor, &contract.CreateOrderRequest{
		Observation:        "Cracked screen",
		ProblemDescription: "Display does not turn on",
		ClientID:           client.ClientID,
		ModelID:            f.model.ModelID,
	})
	require.Nil(t, apierr)
	require.True(t, resp.OK)
	return resp.ServiceOrder.ID
}

// openEntryCount reports how many journal entries of the order are still
// open, to assert the single-open-entry invariant.
func (f *fixture) openEntryCount(t *testing.T, orderID int64) int64 {
	t.Helper()
	var count int64
	err := f.db.Model(&entity.StatusChange{}).
		Where("service_order_id = ? AND is_completed = ? AND is_active = ?", orderID, false, true).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func (f *fixture) reloadOrder(t *testing.T, orderID int64) *entity.ServiceOrder {
	t.Helper()
	var order entity.ServiceOrder
	require.NoError(t, f.db.First(&order, orderID).Error)
	return &order
}

