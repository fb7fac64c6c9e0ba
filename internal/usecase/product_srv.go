package usecase

import (
	"context"

	"customer-crm/internal/apperr"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/dto/response"

	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context) ([]response.ProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log.With(zap.String("service", "product")),
	}
}

func (s *productService) List(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, apperr.Wrap(err, "failed to list products")
	}
	return response.ProductsToResponse(products), nil
}
