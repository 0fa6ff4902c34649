package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/application/services"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

type stubCatalogRepository struct {
	listed      []*entities.CatalogEntry
	found       *entities.CatalogEntry
	findErr     error
	searched    []*entities.CatalogEntry
	searchCalls int
	lastQuery   string
	lastLimit   int
}

func (s *stubCatalogRepository) Create(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error {
	return nil
}

func (s *stubCatalogRepository) List(ctx context.Context, kind entities.ItemKind) ([]*entities.CatalogEntry, error) {
	return s.listed, nil
}

func (s *stubCatalogRepository) FindByName(ctx context.Context, kind entities.ItemKind, name string) (*entities.CatalogEntry, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.found, nil
}

func (s *stubCatalogRepository) Search(ctx context.Context, kind entities.ItemKind, query string, limit int) ([]*entities.CatalogEntry, error) {
	s.searchCalls++
	s.lastQuery = query
	s.lastLimit = limit
	return s.searched, nil
}

type stubSearchRepository struct {
	entries     []*entities.CatalogEntry
	err         error
	searchCalls int
	lastLimit   int
}

func (s *stubSearchRepository) InitSchema(ctx context.Context) error { return nil }

func (s *stubSearchRepository) Index(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error {
	return nil
}

func (s *stubSearchRepository) Search(ctx context.Context, kind entities.ItemKind, query string, limit int) ([]*entities.CatalogEntry, error) {
	s.searchCalls++
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func TestCatalogService_Find_TrimsAndRequiresName(t *testing.T) {
	repo := &stubCatalogRepository{found: &entities.CatalogEntry{Name: "ECG"}}
	svc := services.NewCatalogService(repo, nil)

	entry, err := svc.Find(context.Background(), "  ECG  ", entities.ItemKindProcedure)
	require.NoError(t, err)
	assert.Equal(t, "ECG", entry.Name)

	_, err = svc.Find(context.Background(), "   ", entities.ItemKindProcedure)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCatalogService_Search_PrefersIndex(t *testing.T) {
	repo := &stubCatalogRepository{}
	index := &stubSearchRepository{
		entries: []*entities.CatalogEntry{{Name: "Paracetamol 500mg"}},
	}
	svc := services.NewCatalogService(repo, index)

	entries, err := svc.Search(context.Background(), "para", entities.ItemKindMedicine)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, index.searchCalls)
	assert.Equal(t, 10, index.lastLimit)
	assert.Zero(t, repo.searchCalls)
}

func TestCatalogService_Search_FallsBackToDatabase(t *testing.T) {
	repo := &stubCatalogRepository{
		searched: []*entities.CatalogEntry{{Name: "Paracetamol 500mg"}},
	}
	index := &stubSearchRepository{err: errors.New("typesense down")}
	svc := services.NewCatalogService(repo, index)

	entries, err := svc.Search(context.Background(), "para", entities.ItemKindMedicine)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, index.searchCalls)
	assert.Equal(t, 1, repo.searchCalls)
	assert.Equal(t, "para", repo.lastQuery)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestCatalogService_Search_EmptyQuery(t *testing.T) {
	svc := services.NewCatalogService(&stubCatalogRepository{}, nil)

	_, err := svc.Search(context.Background(), "   ", entities.ItemKindMedicine)

	assert.True(t, apperrors.IsValidation(err))
}

func TestCatalogService_Search_NoIndexUsesDatabase(t *testing.T) {
	repo := &stubCatalogRepository{
		searched: []*entities.CatalogEntry{{Name: "ECG"}},
	}
	svc := services.NewCatalogService(repo, nil)

	entries, err := svc.Search(context.Background(), "ecg", entities.ItemKindProcedure)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, repo.searchCalls)
}
