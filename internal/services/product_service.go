package services

import (
	"log"
	"time"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional, nil disables event publication
}

// NewProductService creates a new ProductService. The RabbitMQ client may be
// nil, in which case no change events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product from the create request. The store
// assigns the ID and timestamps.
func (s *ProductService) CreateProduct(input *models.ProductCreate) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		Price:       input.Price,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent("created", product.ID)
	return product, nil
}

// UpdateProduct applies a partial update to an existing product. Nil fields
// in the request keep their stored value; the updated timestamp is refreshed.
func (s *ProductService) UpdateProduct(id uint, input *models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publishEvent("updated", product.ID)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("deleted", id)
	return nil
}

// publishEvent emits a product change event when a broker is configured.
// Publish failures are logged and never surfaced to the caller.
func (s *ProductService) publishEvent(action string, productID uint) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"action":     action,
		"product_id": productID,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.mqClient.PublishProductEvent(event); err != nil {
		log.Printf("Failed to publish product %s event for ID %d: %v", action, productID, err)
	}
}
