package handlers

import (
	"context"

	"github.com/Rakhulsr/ecommerce-back-end/app/models"
	"github.com/Rakhulsr/ecommerce-back-end/app/repositories"
)

// --- Mock Repositories ---

type MockCategoryRepo struct {
	Categories []models.Category
	Category   *models.Category
	Affected   int64
	Err        error

	LastID    string
	LastWith  []repositories.Association
	LastSaved *repositories.CategoryFields
}

func (m *MockCategoryRepo) GetAll(ctx context.Context, with ...repositories.Association) ([]models.Category, error) {
	m.LastWith = with
	return m.Categories, m.Err
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id string, with ...repositories.Association) (*models.Category, error) {
	m.LastID, m.LastWith = id, with
	return m.Category, m.Err
}

func (m *MockCategoryRepo) Create(ctx context.Context, fields repositories.CategoryFields) (*models.Category, error) {
	m.LastSaved = &fields
	return m.Category, m.Err
}

func (m *MockCategoryRepo) Update(ctx context.Context, id string, fields repositories.CategoryFields) (int64, error) {
	m.LastID, m.LastSaved = id, &fields
	return m.Affected, m.Err
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id string) (int64, error) {
	m.LastID = id
	return m.Affected, m.Err
}

type MockProductRepo struct {
	Products []models.Product
	Product  *models.Product
	Affected int64
	Err      error

	LastID    string
	LastWith  []repositories.Association
	LastSaved *repositories.ProductFields
}

func (m *MockProductRepo) GetAll(ctx context.Context, with ...repositories.Association) ([]models.Product, error) {
	m.LastWith = with
	return m.Products, m.Err
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string, with ...repositories.Association) (*models.Product, error) {
	m.LastID, m.LastWith = id, with
	return m.Product, m.Err
}

func (m *MockProductRepo) Create(ctx context.Context, fields repositories.ProductFields) (*models.Product, error) {
	m.LastSaved = &fields
	return m.Product, m.Err
}

func (m *MockProductRepo) Update(ctx context.Context, id string, fields repositories.ProductFields) (int64, error) {
	m.LastID, m.LastSaved = id, &fields
	return m.Affected, m.Err
}

func (m *MockProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	m.LastID = id
	return m.Affected, m.Err
}

type MockTagRepo struct {
	Tags     []models.Tag
	Tag      *models.Tag
	Affected int64
	Err      error

	LastID    string
	LastWith  []repositories.Association
	LastSaved *repositories.TagFields
}

func (m *MockTagRepo) GetAll(ctx context.Context, with ...repositories.Association) ([]models.Tag, error) {
	m.LastWith = with
	return m.Tags, m.Err
}

func (m *MockTagRepo) GetByID(ctx context.Context, id string, with ...repositories.Association) (*models.Tag, error) {
	m.LastID, m.LastWith = id, with
	return m.Tag, m.Err
}

func (m *MockTagRepo) Create(ctx context.Context, fields repositories.TagFields) (*models.Tag, error) {
	m.LastSaved = &fields
	return m.Tag, m.Err
}

func (m *MockTagRepo) Update(ctx context.Context, id string, fields repositories.TagFields) (int64, error) {
	m.LastID, m.LastSaved = id, &fields
	return m.Affected, m.Err
}

func (m *MockTagRepo) Delete(ctx context.Context, id string) (int64, error) {
	m.LastID = id
	return m.Affected, m.Err
}
