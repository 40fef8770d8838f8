package repositories

import (
	"testing"
	"time"

	"budget-watch/internal/database"
	"budget-watch/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategorizationRuleRepositorySuite struct {
	suite.Suite
	db         *database.DB
	repo       CategorizationRuleRepositoryInterface
	categories CategoryRepositoryInterface
	userID     uuid.UUID
	dining     *models.Category
}

func (s *CategorizationRuleRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategorizationRuleRepository(s.db.DB)
	s.categories = NewCategoryRepository(s.db.DB)
	s.userID = uuid.New()
	s.dining = database.CreateTestCategory(s.T(), s.db, models.CategoryDining)
}

func (s *CategorizationRuleRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCategorizationRuleRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategorizationRuleRepositorySuite))
}

func (s *CategorizationRuleRepositorySuite) keywordRule(pattern string, priority int) *models.CategorizationRule {
	rule := &models.CategorizationRule{
		UserID:     s.userID,
		RuleName:   pattern,
		RuleType:   models.RuleTypeKeyword,
		Pattern:    pattern,
		CategoryID: s.dining.ID,
		Priority:   priority,
		IsActive:   true,
	}
	s.Require().NoError(s.repo.Create(rule))
	return rule
}

func (s *CategorizationRuleRepositorySuite) TestCreate_ValidatesRule() {
	rule := &models.CategorizationRule{UserID: s.userID, RuleType: models.RuleTypeKeyword, CategoryID: s.dining.ID}

	s.ErrorIs(s.repo.Create(rule), models.ErrRulePatternRequired)
}

func (s *CategorizationRuleRepositorySuite) TestListActive_PriorityThenAge() {
	low := s.keywordRule("cafe", 1)
	time.Sleep(5 * time.Millisecond)
	highOld := s.keywordRule("starbucks", 10)
	time.Sleep(5 * time.Millisecond)
	highNew := s.keywordRule("coffee", 10)

	rules, err := s.repo.ListActive()
	s.Require().NoError(err)
	s.Require().Len(rules, 3)
	s.Equal(highOld.ID, rules[0].ID)
	s.Equal(highNew.ID, rules[1].ID)
	s.Equal(low.ID, rules[2].ID)
}

func (s *CategorizationRuleRepositorySuite) TestDeactivate() {
	rule := s.keywordRule("starbucks", 0)

	s.ErrorIs(s.repo.Deactivate(rule.ID, uuid.New()), ErrRuleNotFound)
	s.Require().NoError(s.repo.Deactivate(rule.ID, s.userID))

	active, err := s.repo.ListActive()
	s.Require().NoError(err)
	s.Empty(active)

	owned, err := s.repo.ListByUser(s.userID)
	s.Require().NoError(err)
	s.Require().Len(owned, 1)
	s.False(owned[0].IsActive)

	found, err := s.repo.GetByID(rule.ID)
	s.Require().NoError(err)
	s.False(found.IsActive)
}

func (s *CategorizationRuleRepositorySuite) TestCategoryLookup() {
	found, err := s.categories.GetByName("dining")
	s.Require().NoError(err)
	s.Equal(s.dining.ID, found.ID)

	_, err = s.categories.GetByName("Pets")
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.categories.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)

	s.Require().NoError(s.categories.Create(&models.Category{Name: models.CategoryTravel}))
	all, err := s.categories.List()
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal(models.CategoryDining, all[0].Name)
}
