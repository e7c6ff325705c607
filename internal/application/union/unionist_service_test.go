package union

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/domain/union"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockUnionistRepository is a mock implementation of UnionistRepository
type MockUnionistRepository struct {
	mock.Mock
}

func (m *MockUnionistRepository) Create(ctx context.Context, unionist *union.Unionist) error {
	args := m.Called(ctx, unionist)
	return args.Error(0)
}

func (m *MockUnionistRepository) Save(ctx context.Context, unionist *union.Unionist) error {
	args := m.Called(ctx, unionist)
	return args.Error(0)
}

func (m *MockUnionistRepository) FindByID(ctx context.Context, id uuid.UUID) (*union.Unionist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*union.Unionist), args.Error(1)
}

func (m *MockUnionistRepository) FindByCode(ctx context.Context, code string) (*union.Unionist, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*union.Unionist), args.Error(1)
}

func (m *MockUnionistRepository) List(ctx context.Context, query shared.ListQuery) ([]union.Unionist, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]union.Unionist), args.Get(1).(int64), args.Error(2)
}

// MockDepartmentRepository is a mock implementation of DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *union.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Save(ctx context.Context, department *union.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*union.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*union.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByCode(ctx context.Context, code string) (*union.Department, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*union.Department), args.Error(1)
}

func (m *MockDepartmentRepository) List(ctx context.Context, query shared.ListQuery) ([]union.Department, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]union.Department), args.Get(1).(int64), args.Error(2)
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *union.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Save(ctx context.Context, post *union.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*union.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*union.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, query shared.ListQuery) ([]union.Post, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]union.Post), args.Get(1).(int64), args.Error(2)
}

// =============================================================================
// Helpers
// =============================================================================

func testActor() shared.ActorRef {
	return shared.ActorRef{ID: uuid.New(), Email: "admin@union.local"}
}

func newService() (*UnionistService, *MockUnionistRepository, *MockDepartmentRepository, *MockPostRepository) {
	unionistRepo := new(MockUnionistRepository)
	departmentRepo := new(MockDepartmentRepository)
	postRepo := new(MockPostRepository)
	return NewUnionistService(unionistRepo, departmentRepo, postRepo), unionistRepo, departmentRepo, postRepo
}

// =============================================================================
// UnionistService Tests
// =============================================================================

func TestUnionistService_Create(t *testing.T) {
	t.Run("creates unionist with parsed dates", func(t *testing.T) {
		service, unionistRepo, _, _ := newService()

		unionistRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *union.Unionist) bool {
			return u.FullName == "An Nguyen" &&
				u.Email == "an@union.local" &&
				u.DateOfBirth != nil &&
				u.JoinedDate != nil
		})).Return(nil)

		resp, err := service.Create(context.Background(), CreateUnionistRequest{
			FullName:    "An Nguyen",
			Gender:      "female",
			Email:       "An@Union.Local",
			DateOfBirth: "1990-04-12",
			JoinedDate:  "2020-01-15",
		}, testActor())

		assert.NoError(t, err)
		assert.Equal(t, "An Nguyen", resp.FullName)
		assert.Equal(t, "an@union.local", resp.Email)
		assert.Equal(t, "1990-04-12", *resp.DateOfBirth)
		unionistRepo.AssertExpectations(t)
	})

	t.Run("rejects blank full name", func(t *testing.T) {
		service, unionistRepo, _, _ := newService()

		_, err := service.Create(context.Background(), CreateUnionistRequest{FullName: "  "}, testActor())

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		unionistRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		service, unionistRepo, _, _ := newService()

		_, err := service.Create(context.Background(), CreateUnionistRequest{
			FullName:    "An Nguyen",
			DateOfBirth: "12/04/1990",
		}, testActor())

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		unionistRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects unknown department reference", func(t *testing.T) {
		service, unionistRepo, departmentRepo, _ := newService()
		departmentID := uuid.New()

		departmentRepo.On("FindByID", mock.Anything, departmentID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), CreateUnionistRequest{
			FullName:     "An Nguyen",
			DepartmentID: &departmentID,
		}, testActor())

		assert.ErrorIs(t, err, shared.ErrNotFound)
		unionistRepo.AssertNotCalled(t, "Create")
	})
}

func TestUnionistService_Update(t *testing.T) {
	t.Run("patches fields and reloads associations", func(t *testing.T) {
		service, unionistRepo, _, _ := newService()
		actor := testActor()

		existing, err := union.NewUnionist("An Nguyen", "female", "an@union.local", "", "", actor)
		assert.NoError(t, err)
		existing.Code = "CD00001"

		unionistRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		unionistRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *union.Unionist) bool {
			return u.FullName == "An Tran" && u.Code == "CD00001"
		})).Return(nil)

		resp, err := service.Update(context.Background(), existing.ID, UpdateUnionistRequest{
			FullName: "An Tran",
			Gender:   "female",
			Email:    "an@union.local",
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, "An Tran", resp.FullName)
		assert.Equal(t, "CD00001", resp.Code)
		unionistRepo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		service, unionistRepo, _, _ := newService()
		id := uuid.New()

		unionistRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), id, UpdateUnionistRequest{FullName: "X"}, testActor())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUnionistService_Delete(t *testing.T) {
	t.Run("soft deletes and stamps the actor", func(t *testing.T) {
		service, unionistRepo, _, _ := newService()
		actor := testActor()

		existing, err := union.NewUnionist("An Nguyen", "", "", "", "", actor)
		assert.NoError(t, err)

		unionistRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		unionistRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *union.Unionist) bool {
			return u.IsDeleted && u.DeletedBy.ID == actor.ID
		})).Return(nil)

		err = service.Delete(context.Background(), existing.ID, actor)
		assert.NoError(t, err)
		unionistRepo.AssertExpectations(t)
	})
}

func TestUnionistService_List(t *testing.T) {
	service, unionistRepo, _, _ := newService()
	actor := testActor()

	first, _ := union.NewUnionist("An Nguyen", "", "", "", "", actor)
	first.Code = "CD00001"
	second, _ := union.NewUnionist("Binh Tran", "", "", "", "", actor)
	second.Code = "CD00002"

	query := shared.ListQuery{Current: 1, PageSize: 10}
	unionistRepo.On("List", mock.Anything, query).Return([]union.Unionist{*first, *second}, int64(2), nil)

	responses, total, err := service.List(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, responses, 2)
	assert.Equal(t, "CD00001", responses[0].Code)
}

// =============================================================================
// DepartmentService Tests
// =============================================================================

func TestDepartmentService_Create(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	service := NewDepartmentService(departmentRepo)

	departmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *union.Department) bool {
		return d.Name == "Accounting"
	})).Return(nil)

	resp, err := service.Create(context.Background(), CreateDepartmentRequest{Name: "Accounting"}, testActor())

	assert.NoError(t, err)
	assert.Equal(t, "Accounting", resp.Name)
	departmentRepo.AssertExpectations(t)
}

func TestDepartmentService_Delete_AlreadyDeletedIsNoop(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	service := NewDepartmentService(departmentRepo)
	actor := testActor()

	existing, err := union.NewDepartment("Accounting", "", actor)
	assert.NoError(t, err)
	existing.MarkDeleted(actor, existing.UpdatedAt)

	departmentRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	err = service.Delete(context.Background(), existing.ID, testActor())
	assert.NoError(t, err)
	departmentRepo.AssertNotCalled(t, "Save")
}

// =============================================================================
// PostService Tests
// =============================================================================

func TestPostService_Update(t *testing.T) {
	postRepo := new(MockPostRepository)
	service := NewPostService(postRepo)
	actor := testActor()

	existing, err := union.NewPost("Chairperson", "", actor)
	assert.NoError(t, err)

	postRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	postRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.Update(context.Background(), existing.ID, UpdatePostRequest{
		Name:        "Vice Chairperson",
		Description: "Deputy of the executive board",
	}, actor)

	assert.NoError(t, err)
	assert.Equal(t, "Vice Chairperson", resp.Name)
	postRepo.AssertExpectations(t)
}
