package mock

import (
	"context"

	"github.com/fwojciec/litmap"
)

var _ litmap.LandmarkService = (*LandmarkService)(nil)

// LandmarkService is a mock implementation of litmap.LandmarkService.
type LandmarkService struct {
	CreateLandmarksFn       func(ctx context.Context, landmarks []*litmap.Landmark) (int, error)
	FindLandmarkByIDFn      func(ctx context.Context, id string) (*litmap.Landmark, error)
	FindLandmarksFn         func(ctx context.Context, filter litmap.LandmarkFilter) ([]*litmap.Landmark, error)
	FindBooksFn             func(ctx context.Context) ([]*litmap.BookSummary, error)
	DeleteLandmarksByBookFn func(ctx context.Context, book string) (int, error)
}

func (s *LandmarkService) CreateLandmarks(ctx context.Context, landmarks []*litmap.Landmark) (int, error) {
	return s.CreateLandmarksFn(ctx, landmarks)
}

func (s *LandmarkService) FindLandmarkByID(ctx context.Context, id string) (*litmap.Landmark, error) {
	return s.FindLandmarkByIDFn(ctx, id)
}

func (s *LandmarkService) FindLandmarks(ctx context.Context, filter litmap.LandmarkFilter) ([]*litmap.Landmark, error) {
	return s.FindLandmarksFn(ctx, filter)
}

func (s *LandmarkService) FindBooks(ctx context.Context) ([]*litmap.BookSummary, error) {
	return s.FindBooksFn(ctx)
}

func (s *LandmarkService) DeleteLandmarksByBook(ctx context.Context, book string) (int, error) {
	return s.DeleteLandmarksByBookFn(ctx, book)
}
