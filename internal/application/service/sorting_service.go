// Package service contains the application services that orchestrate
// domain operations for the delivery mechanisms (HTTP handlers, CLIs).
package service

import (
	"context"

	"github.com/hapkiduki/sortline-go/internal/application/dto"
	"github.com/hapkiduki/sortline-go/internal/application/port"
	"github.com/hapkiduki/sortline-go/internal/domain/entity"
)

// SortingService classifies packages for the automated sorting line.
// The service itself is stateless; every call works only on its own input,
// so a single instance is safe to share across any number of goroutines.
type SortingService struct {
	logger port.Logger
}

// NewSortingService creates a new SortingService.
//
// Parameters:
//   - logger: structured logger for decision logging
//
// Returns:
//   - *SortingService: the created service
func NewSortingService(logger port.Logger) *SortingService {
	return &SortingService{
		logger: logger,
	}
}

// SortPackage classifies a single package from its raw measurements.
//
// Parameters:
//   - ctx: request context (used for log correlation only; the
//     classification itself cannot block)
//   - req: the package measurements
//
// Returns:
//   - dto.SortResult: the category plus the intermediates it was derived from
//   - error: valueobject.ErrInvalidQuantity if any measurement is negative,
//     NaN, or infinite
func (s *SortingService) SortPackage(ctx context.Context, req dto.SortRequest) (dto.SortResult, error) {
	pkg, err := entity.NewPackageFromScalars(req.Width, req.Height, req.Length, req.Mass)
	if err != nil {
		s.logger.WithContext(ctx).Warn("Rejected malformed package measurements",
			"width", req.Width,
			"height", req.Height,
			"length", req.Length,
			"mass", req.Mass,
			"error", err,
		)
		return dto.SortResult{}, err
	}

	result := dto.SortResult{
		Category: pkg.SortCategory().String(),
		Volume:   pkg.Volume(),
		Bulky:    pkg.IsBulky(),
		Heavy:    pkg.IsHeavy(),
	}

	s.logger.WithContext(ctx).Info("Package sorted",
		"package", pkg.String(),
		"category", result.Category,
		"volume_cm3", result.Volume,
		"bulky", result.Bulky,
		"heavy", result.Heavy,
	)

	return result, nil
}

// SortBatch classifies a list of packages. Packages fail independently:
// an invalid measurement marks only its own item as failed, and every item
// keeps its position from the request.
//
// Parameters:
//   - ctx: request context
//   - req: the batch of package measurements
//
// Returns:
//   - dto.BatchSortResult: per-package outcomes in request order
func (s *SortingService) SortBatch(ctx context.Context, req dto.BatchSortRequest) dto.BatchSortResult {
	result := dto.BatchSortResult{
		Items: make([]dto.BatchSortItem, 0, len(req.Packages)),
	}

	for i, pkg := range req.Packages {
		item := dto.BatchSortItem{Index: i}

		sorted, err := s.SortPackage(ctx, pkg)
		if err != nil {
			item.Error = err.Error()
			result.Failed++
		} else {
			item.Result = &sorted
			result.Sorted++
		}

		result.Items = append(result.Items, item)
	}

	s.logger.WithContext(ctx).Info("Batch sorted",
		"total", len(req.Packages),
		"sorted", result.Sorted,
		"failed", result.Failed,
	)

	return result
}
