package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// TransportService handles transport cost records. A transport left with
// paid below total gets a debt derived over the remaining amount.
type TransportService struct {
	transportRepo repository.TransportRepository
	categoryRepo  repository.TransportCategoryRepository
	debtService   *DebtService
}

// NewTransportService creates a new transport service
func NewTransportService(
	transportRepo repository.TransportRepository,
	categoryRepo repository.TransportCategoryRepository,
	debtService *DebtService,
) *TransportService {
	return &TransportService{
		transportRepo: transportRepo,
		categoryRepo:  categoryRepo,
		debtService:   debtService,
	}
}

// CreateTransportInput represents the input for creating a transport record
type CreateTransportInput struct {
	Name            string
	Phone           string
	Address         string
	TransportAmount float64
	PaidAmount      float64
	Destination     string
	Type            string
	CategoryID      *uuid.UUID
	SubTypeID       *uuid.UUID
	TransportMethod string
	Purpose         string
	Distance        float64
	Notes           string
	IsQuick         bool
	TransportDate   time.Time
}

// CreateTransport records a transport cost and derives a debt for whatever
// part of it is unpaid.
func (s *TransportService) CreateTransport(ctx context.Context, input *CreateTransportInput, recordedBy string) (*entity.Transport, error) {
	if input.TransportAmount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}
	if input.PaidAmount < 0 || input.PaidAmount > input.TransportAmount {
		return nil, apperror.NewBadRequestError("Paid amount must be between zero and the total")
	}

	transportDate := input.TransportDate
	if transportDate.IsZero() {
		transportDate = time.Now().UTC()
	}
	transportType := input.Type
	if transportType == "" {
		transportType = "inside"
	}
	method := input.TransportMethod
	if method == "" {
		method = "car"
	}

	transport := &entity.Transport{
		Name:            input.Name,
		Phone:           input.Phone,
		Address:         input.Address,
		TransportAmount: input.TransportAmount,
		PaidAmount:      input.PaidAmount,
		Destination:     input.Destination,
		Type:            transportType,
		CategoryID:      input.CategoryID,
		SubTypeID:       input.SubTypeID,
		TransportMethod: method,
		Purpose:         input.Purpose,
		Distance:        input.Distance,
		Notes:           input.Notes,
		IsQuick:         input.IsQuick,
		RecordedBy:      recordedBy,
		TransportDate:   transportDate,
	}

	if err := s.transportRepo.Create(ctx, transport); err != nil {
		return nil, err
	}

	if transport.RemainingAmount() > 0 {
		if _, err := s.debtService.DeriveFromSource(ctx, transport); err != nil {
			log.Printf("transport %s: debt derivation failed: %v", transport.ID, err)
		}
	}

	return transport, nil
}

// GetTransport returns a transport record by ID
func (s *TransportService) GetTransport(ctx context.Context, id uuid.UUID) (*entity.Transport, error) {
	transport, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, apperror.NewNotFoundError("Transport")
	}
	return transport, nil
}

// ListTransports returns a filtered page of transport records
func (s *TransportService) ListTransports(ctx context.Context, params *repository.TransportFilterParams) (*pagination.PaginatedResult[entity.Transport], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	transports, total, err := s.transportRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transports, p), nil
}

// UpdateTransportInput represents the editable fields of a transport record
type UpdateTransportInput struct {
	Name            *string
	Phone           *string
	Address         *string
	Destination     *string
	TransportMethod *string
	Purpose         *string
	Distance        *float64
	Notes           *string
}

// UpdateTransport edits a transport's descriptive fields
func (s *TransportService) UpdateTransport(ctx context.Context, id uuid.UUID, input *UpdateTransportInput) (*entity.Transport, error) {
	transport, err := s.GetTransport(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		transport.Name = *input.Name
	}
	if input.Phone != nil {
		transport.Phone = *input.Phone
	}
	if input.Address != nil {
		transport.Address = *input.Address
	}
	if input.Destination != nil {
		transport.Destination = *input.Destination
	}
	if input.TransportMethod != nil {
		transport.TransportMethod = *input.TransportMethod
	}
	if input.Purpose != nil {
		transport.Purpose = *input.Purpose
	}
	if input.Distance != nil {
		transport.Distance = *input.Distance
	}
	if input.Notes != nil {
		transport.Notes = *input.Notes
	}

	if err := s.transportRepo.Update(ctx, transport); err != nil {
		return nil, err
	}
	return transport, nil
}

// DeleteTransport removes a transport record
func (s *TransportService) DeleteTransport(ctx context.Context, id uuid.UUID) error {
	transport, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transport == nil {
		return apperror.NewNotFoundError("Transport")
	}
	return s.transportRepo.Delete(ctx, id)
}

// ListCategories returns all transport categories with their sub-types
func (s *TransportService) ListCategories(ctx context.Context) ([]entity.TransportCategory, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory adds a transport category
func (s *TransportService) CreateCategory(ctx context.Context, category *entity.TransportCategory) error {
	return s.categoryRepo.Create(ctx, category)
}

// CreateSubType adds a sub-type under a transport category
func (s *TransportService) CreateSubType(ctx context.Context, subType *entity.TransportSubType) error {
	return s.categoryRepo.CreateSubType(ctx, subType)
}

// ListSubTypes returns sub-types, optionally filtered by category
func (s *TransportService) ListSubTypes(ctx context.Context, categoryID *uuid.UUID) ([]entity.TransportSubType, error) {
	return s.categoryRepo.ListSubTypes(ctx, categoryID)
}
