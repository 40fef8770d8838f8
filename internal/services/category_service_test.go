package services_test

import (
	"context"
	"errors"
	"testing"

	"budget-watch/internal/models"
	"budget-watch/internal/repositories"
	"budget-watch/internal/repositories/repository_mocks"
	"budget-watch/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      services.CategoryServiceInterface
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = services.NewCategoryService(s.categoryRepo)
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryServiceTestSuite) TestListCategories() {
	categories := []models.Category{
		{ID: uuid.New(), Name: models.CategoryDining},
		{ID: uuid.New(), Name: models.CategoryGroceries},
	}
	s.categoryRepo.EXPECT().List().Return(categories, nil)

	result, err := s.service.ListCategories(s.ctx)

	s.Require().NoError(err)
	s.Equal(categories, result)
}

func (s *CategoryServiceTestSuite) TestListCategories_Error() {
	s.categoryRepo.EXPECT().List().Return(nil, errors.New("db down"))

	_, err := s.service.ListCategories(s.ctx)

	s.ErrorContains(err, "failed to list categories")
}

func (s *CategoryServiceTestSuite) TestEnsureSystemCategories_CreatesMissing() {
	existing := map[string]bool{
		models.CategoryGroceries: true,
		models.CategoryIncome:    true,
	}

	s.categoryRepo.EXPECT().GetByName(gomock.Any()).DoAndReturn(func(name string) (*models.Category, error) {
		if existing[name] {
			return &models.Category{ID: uuid.New(), Name: name, IsSystem: true}, nil
		}
		return nil, repositories.ErrCategoryNotFound
	}).Times(len(models.SystemCategories()))

	var created []string
	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		s.True(category.IsSystem)
		created = append(created, category.Name)
		return nil
	}).Times(len(models.SystemCategories()) - len(existing))

	count, err := s.service.EnsureSystemCategories(s.ctx)

	s.Require().NoError(err)
	s.Equal(len(models.SystemCategories())-len(existing), count)
	s.NotContains(created, models.CategoryGroceries)
	s.Contains(created, models.CategoryOther)
}

func (s *CategoryServiceTestSuite) TestEnsureSystemCategories_AlreadySeeded() {
	s.categoryRepo.EXPECT().GetByName(gomock.Any()).Return(&models.Category{ID: uuid.New()}, nil).
		Times(len(models.SystemCategories()))
	s.categoryRepo.EXPECT().Create(gomock.Any()).Times(0)

	count, err := s.service.EnsureSystemCategories(s.ctx)

	s.Require().NoError(err)
	s.Zero(count)
}

func (s *CategoryServiceTestSuite) TestEnsureSystemCategories_LookupErrorStops() {
	s.categoryRepo.EXPECT().GetByName(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

	count, err := s.service.EnsureSystemCategories(s.ctx)

	s.ErrorContains(err, "failed to look up category")
	s.Zero(count)
}

func (s *CategoryServiceTestSuite) TestEnsureSystemCategories_CreateError() {
	s.categoryRepo.EXPECT().GetByName(gomock.Any()).Return(nil, repositories.ErrCategoryNotFound).Times(1)
	s.categoryRepo.EXPECT().Create(gomock.Any()).Return(errors.New("unique violation")).Times(1)

	_, err := s.service.EnsureSystemCategories(s.ctx)

	s.ErrorContains(err, "failed to create category")
}
