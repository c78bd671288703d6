package service

import (
	"context"
	"errors"
	"regexp"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

var tableNumberPattern = regexp.MustCompile(`^T\d{2}$`)

type CreateTableInput struct {
	Number     string `json:"table_number" binding:"required"`
	Size       int    `json:"table_size" binding:"required,gt=0"`
	IsOccupied bool   `json:"is_occupied"`
}

type UpdateTableInput struct {
	Number     *string `json:"table_number"`
	Size       *int    `json:"table_size" binding:"omitempty,gt=0"`
	IsOccupied *bool   `json:"is_occupied"`
}

type TableService struct {
	tables repository.TableRepository
	log    *logger.Logger
}

func NewTableService(tables repository.TableRepository, log *logger.Logger) *TableService {
	return &TableService{tables: tables, log: log.WithComponent("table_service")}
}

func (s *TableService) Create(ctx context.Context, in CreateTableInput) (*model.Table, error) {
	if err := s.checkNumber(ctx, in.Number, 0); err != nil {
		return nil, err
	}
	if in.Size <= 0 {
		return nil, invalid("table size must be positive")
	}
	table := &model.Table{Number: in.Number, Size: in.Size, IsOccupied: in.IsOccupied}
	if err := s.tables.Create(ctx, table); err != nil {
		return nil, storeErr(err, "table", 0)
	}
	return table, nil
}

func (s *TableService) checkNumber(ctx context.Context, number string, selfID uint) error {
	if !tableNumberPattern.MatchString(number) {
		return invalid("table number %q must look like T01", number)
	}
	existing, err := s.tables.FindByNumber(ctx, number)
	switch {
	case err == nil && existing.ID != selfID:
		return conflict("table number %q already exists", number)
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return err
	}
	return nil
}

func (s *TableService) Get(ctx context.Context, id uint) (*model.Table, error) {
	table, err := s.tables.GetByID(ctx, id)
	return table, storeErr(err, "table", id)
}

func (s *TableService) List(ctx context.Context, skip, limit int) ([]model.Table, error) {
	return s.tables.List(ctx, skip, limit)
}

func (s *TableService) Update(ctx context.Context, id uint, in UpdateTableInput) (*model.Table, error) {
	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "table", id)
	}
	if in.Number != nil && *in.Number != table.Number {
		if err := s.checkNumber(ctx, *in.Number, id); err != nil {
			return nil, err
		}
		table.Number = *in.Number
	}
	if in.Size != nil {
		if *in.Size <= 0 {
			return nil, invalid("table size must be positive")
		}
		table.Size = *in.Size
	}
	if in.IsOccupied != nil {
		table.IsOccupied = *in.IsOccupied
	}
	if err := s.tables.Update(ctx, table); err != nil {
		return nil, storeErr(err, "table", id)
	}
	return table, nil
}

func (s *TableService) SetOccupied(ctx context.Context, id uint, occupied bool) (*model.Table, error) {
	table, err := s.tables.SetOccupied(ctx, id, occupied)
	if err != nil {
		return nil, storeErr(err, "table", id)
	}
	s.log.Info("table status changed", "table_id", id, "is_occupied", occupied)
	return table, nil
}

func (s *TableService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.tables.Delete(ctx, id), "table", id)
}

func (s *TableService) FindBySize(ctx context.Context, size int) ([]model.Table, error) {
	return s.tables.FindBySize(ctx, size)
}

func (s *TableService) FindAvailable(ctx context.Context) ([]model.Table, error) {
	return s.tables.FindByOccupied(ctx, false)
}

func (s *TableService) FindOccupied(ctx context.Context) ([]model.Table, error) {
	return s.tables.FindByOccupied(ctx, true)
}

func (s *TableService) FindAvailableBySize(ctx context.Context, size int) ([]model.Table, error) {
	return s.tables.FindAvailableBySize(ctx, size)
}
