package services

import (
	"context"
	"fmt"

	"github.com/lezit/transports-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService struct {
	serviceRepo models.ServiceRepo
}

func NewCatalogService(serviceRepo models.ServiceRepo) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

type ServiceInput struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=person goods"`
	Description string  `json:"description" validate:"required,max=500"`
	BasePrice   float64 `json:"basePrice" validate:"gte=0"`
	PricePerKm  float64 `json:"pricePerKm" validate:"gte=0"`
	IsActive    *bool   `json:"isActive"`
}

func (cs *CatalogService) ListServices(ctx context.Context, filter models.ServiceFilter) ([]*models.Service, error) {
	services, err := cs.serviceRepo.ListServices(ctx, filter)
	if err != nil {
		return nil, models.NewDependencyError("failed to fetch services", err)
	}
	return services, nil
}

func (cs *CatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	serviceID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewValidationError("invalid service ID format")
	}

	service, err := cs.serviceRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, wrapRepoErr("failed to fetch service", err)
	}
	return service, nil
}

func (cs *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*models.Service, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("invalid service data: %v", err))
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	service := &models.Service{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		PricePerKm:  input.PricePerKm,
		IsActive:    isActive,
	}

	created, err := cs.serviceRepo.CreateService(ctx, service)
	if err != nil {
		return nil, wrapRepoErr("failed to create service", err)
	}
	return created, nil
}

func (cs *CatalogService) UpdateService(ctx context.Context, id string, input ServiceInput) (*models.Service, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("invalid service data: %v", err))
	}

	serviceID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewValidationError("invalid service ID format")
	}

	update := map[string]interface{}{
		"name":         input.Name,
		"category":     input.Category,
		"description":  input.Description,
		"base_price":   input.BasePrice,
		"price_per_km": input.PricePerKm,
	}
	if input.IsActive != nil {
		update["is_active"] = *input.IsActive
	}

	updated, err := cs.serviceRepo.UpdateService(ctx, serviceID, update)
	if err != nil {
		return nil, wrapRepoErr("failed to update service", err)
	}
	return updated, nil
}

func (cs *CatalogService) DeleteService(ctx context.Context, id string) error {
	serviceID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.NewValidationError("invalid service ID format")
	}

	if err := cs.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		return wrapRepoErr("failed to delete service", err)
	}
	return nil
}

func (cs *CatalogService) SetServiceActive(ctx context.Context, id string, active bool) (*models.Service, error) {
	serviceID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewValidationError("invalid service ID format")
	}

	updated, err := cs.serviceRepo.SetServiceActive(ctx, serviceID, active)
	if err != nil {
		return nil, wrapRepoErr("failed to update service status", err)
	}
	return updated, nil
}
