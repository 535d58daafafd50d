package location

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LocationService interface {
		AddLocation(ctx context.Context, req domain.AddLocationRequest) (domain.LocationResponse, error)
		UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest) (domain.LocationResponse, error)
		DeleteLocation(ctx context.Context, id string) error
		GetLocations(ctx context.Context, room string) ([]domain.LocationResponse, error)
		GetLocationByID(ctx context.Context, id string) (domain.LocationResponse, error)
		GetRooms(ctx context.Context) ([]string, error)
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) AddLocation(ctx context.Context, req domain.AddLocationRequest) (domain.LocationResponse, error) {
	location := &entities.StorageLocation{
		ID:   uuid.New(),
		Name: req.Name,
		Room: req.Room,
	}
	if req.Description != "" {
		location.Description = &req.Description
	}

	if err := s.locationRepository.AddLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	return toLocationResponse(location, 0), nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest) (domain.LocationResponse, error) {
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LocationResponse{}, domain.ErrLocationNotFound
		}
		return domain.LocationResponse{}, err
	}

	location.Name = req.Name
	location.Room = req.Room
	location.Description = nil
	if req.Description != "" {
		location.Description = &req.Description
	}

	if err := s.locationRepository.UpdateLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	count, err := s.locationRepository.CountItems(ctx, id)
	if err != nil {
		return domain.LocationResponse{}, err
	}

	return toLocationResponse(location, count), nil
}

// DeleteLocation refuses to remove a location that still holds items, so
// items can never be orphaned.
func (s *locationService) DeleteLocation(ctx context.Context, id string) error {
	if _, err := s.locationRepository.GetLocationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}

	count, err := s.locationRepository.CountItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrLocationNotEmpty
	}

	return s.locationRepository.DeleteLocation(ctx, id)
}

func (s *locationService) GetLocations(ctx context.Context, room string) ([]domain.LocationResponse, error) {
	records, err := s.locationRepository.FindLocations(ctx, room)
	if err != nil {
		return nil, err
	}

	response := make([]domain.LocationResponse, 0, len(records))
	for _, record := range records {
		response = append(response, domain.LocationResponse{
			ID:          record.ID.String(),
			Name:        record.Name,
			Room:        record.Room,
			Description: record.Description,
			ItemCount:   record.ItemCount,
			CreatedAt:   record.CreatedAt,
			UpdatedAt:   record.UpdatedAt,
		})
	}

	return response, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, id string) (domain.LocationResponse, error) {
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LocationResponse{}, domain.ErrLocationNotFound
		}
		return domain.LocationResponse{}, err
	}

	count, err := s.locationRepository.CountItems(ctx, id)
	if err != nil {
		return domain.LocationResponse{}, err
	}

	return toLocationResponse(location, count), nil
}

func (s *locationService) GetRooms(ctx context.Context) ([]string, error) {
	return s.locationRepository.GetRooms(ctx)
}

func toLocationResponse(location *entities.StorageLocation, itemCount int64) domain.LocationResponse {
	return domain.LocationResponse{
		ID:          location.ID.String(),
		Name:        location.Name,
		Room:        location.Room,
		Description: location.Description,
		ItemCount:   itemCount,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}
