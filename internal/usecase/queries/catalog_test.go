//go:build unit

package queries_test

import (
	"context"
	"testing"

	"havenmart/internal/infra"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/queries"
	"havenmart/tests/common/builder"
	queriesmock "havenmart/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	store *queriesmock.PropertyReadStore
	cache *queriesmock.CatalogCache
	q     queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.store = new(queriesmock.PropertyReadStore)
	s.cache = new(queriesmock.CatalogCache)
	s.q = queries.NewCatalogQueries(s.store, s.cache)
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestList() {
	s.Run("cache hit skips the store", func() {
		s.SetupTest()
		cached := []*queries.PropertyView{builder.NewPropertyBuilder().BuildView()}
		s.cache.On("GetList", mock.Anything).Return(cached, true)

		views, err := s.q.List(context.Background())

		s.NoError(err)
		s.Equal(cached, views)
		s.store.AssertNotCalled(s.T(), "FindAll")
	})

	s.Run("cache miss reads through and fills the cache", func() {
		s.SetupTest()
		stored := []*queries.PropertyView{builder.NewPropertyBuilder().BuildView()}
		s.cache.On("GetList", mock.Anything).Return(nil, false)
		s.store.On("FindAll", mock.Anything).Return(stored, nil).Once()
		s.cache.On("SetList", mock.Anything, stored).Once()

		views, err := s.q.List(context.Background())

		s.NoError(err)
		s.Equal(stored, views)
		s.cache.AssertExpectations(s.T())
	})
}

func (s *CatalogQueriesTestSuite) TestGetByID() {
	s.Run("success", func() {
		s.SetupTest()
		view := builder.NewPropertyBuilder().BuildView()
		s.store.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		got, err := s.q.GetByID(context.Background(), view.ID)

		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: missing property", func() {
		s.SetupTest()
		id := uuid.New()
		s.store.On("FindByID", mock.Anything, id).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound))

		_, err := s.q.GetByID(context.Background(), id)

		s.ErrorIs(err, errs.ErrPropertyNotFound)
	})
}
