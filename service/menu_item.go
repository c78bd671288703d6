package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type CreateMenuItemInput struct {
	Name        string           `json:"item_name" binding:"required,max=100"`
	Type        model.ItemType   `json:"item_type" binding:"required"`
	Price       *decimal.Decimal `json:"item_price" binding:"required"`
	Description string           `json:"item_description"`
	Image       string           `json:"item_image" binding:"max=255"`
	IsAvailable *bool            `json:"is_available"`
}

type UpdateMenuItemInput struct {
	Name        *string          `json:"item_name" binding:"omitempty,max=100"`
	Type        *model.ItemType  `json:"item_type"`
	Price       *decimal.Decimal `json:"item_price"`
	Description *string          `json:"item_description"`
	Image       *string          `json:"item_image" binding:"omitempty,max=255"`
	IsAvailable *bool            `json:"is_available"`
}

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped,omitempty"`
}

type MenuItemService struct {
	items      repository.MenuItemRepository
	orderItems repository.OrderItemRepository
	log        *logger.Logger
}

func NewMenuItemService(items repository.MenuItemRepository, orderItems repository.OrderItemRepository, log *logger.Logger) *MenuItemService {
	return &MenuItemService{items: items, orderItems: orderItems, log: log.WithComponent("menu_item_service")}
}

func (s *MenuItemService) Create(ctx context.Context, in CreateMenuItemInput) (*model.MenuItem, error) {
	if !in.Type.Valid() {
		return nil, invalid("unknown item type %q", in.Type)
	}
	if in.Price == nil || !in.Price.IsPositive() {
		return nil, invalid("item price must be greater than zero")
	}
	item := &model.MenuItem{
		Name:        in.Name,
		Type:        in.Type,
		Price:       in.Price.Round(2),
		Description: in.Description,
		Image:       in.Image,
		IsAvailable: in.IsAvailable == nil || *in.IsAvailable,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, storeErr(err, "menu item", 0)
	}
	return item, nil
}

func (s *MenuItemService) Get(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	return item, storeErr(err, "menu item", id)
}

func (s *MenuItemService) List(ctx context.Context, skip, limit int) ([]model.MenuItem, error) {
	return s.items.List(ctx, skip, limit)
}

func (s *MenuItemService) Update(ctx context.Context, id uint, in UpdateMenuItemInput) (*model.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "menu item", id)
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, invalid("unknown item type %q", *in.Type)
		}
		item.Type = *in.Type
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, invalid("item price must be greater than zero")
		}
		item.Price = in.Price.Round(2)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, storeErr(err, "menu item", id)
	}
	return item, nil
}

// Delete refuses to remove items that existing orders still reference.
func (s *MenuItemService) Delete(ctx context.Context, id uint) error {
	used, err := s.orderItems.CountByMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return conflict("menu item %d is used by %d order items", id, used)
	}
	return storeErr(s.items.Delete(ctx, id), "menu item", id)
}

func (s *MenuItemService) FindByType(ctx context.Context, itemType model.ItemType) ([]model.MenuItem, error) {
	if !itemType.Valid() {
		return nil, invalid("unknown item type %q", itemType)
	}
	return s.items.FindByType(ctx, itemType)
}

func (s *MenuItemService) FindAvailable(ctx context.Context) ([]model.MenuItem, error) {
	return s.items.FindAvailable(ctx)
}

// Import reads menu items from the first sheet of an xlsx workbook.
// Columns: name, type, price, description, available. The first row is a header.
// Invalid rows are skipped and reported; valid rows are inserted together.
func (s *MenuItemService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, invalid("failed to parse Excel file: %v", err)
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return nil, invalid("workbook has no sheets")
	}
	rows, err := xl.GetRows(sheets[0])
	if err != nil {
		return nil, invalid("failed to read sheet %q: %v", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, invalid("Excel must have at least one row of data")
	}

	result := &ImportResult{}
	var items []model.MenuItem
	for i, row := range rows[1:] {
		item, err := parseMenuRow(row)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{Row: i + 2, Reason: err.Error()})
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, invalid("no valid rows found")
	}

	if err := s.items.CreateBatch(ctx, items); err != nil {
		return nil, storeErr(err, "menu item", 0)
	}
	result.Imported = len(items)
	s.log.Info("menu items imported", "imported", result.Imported, "skipped", len(result.Skipped))
	return result, nil
}

func parseMenuRow(row []string) (model.MenuItem, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	item := model.MenuItem{
		Name:        cell(0),
		Type:        model.ItemType(strings.ToLower(cell(1))),
		Description: cell(3),
		IsAvailable: true,
	}
	if item.Name == "" {
		return item, fmt.Errorf("name is empty")
	}
	if !item.Type.Valid() {
		return item, fmt.Errorf("unknown item type %q", cell(1))
	}
	price, err := decimal.NewFromString(cell(2))
	if err != nil || !price.IsPositive() {
		return item, fmt.Errorf("invalid price %q", cell(2))
	}
	item.Price = price.Round(2)

	if v := cell(4); v != "" {
		available, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return item, fmt.Errorf("invalid availability %q", v)
		}
		item.IsAvailable = available
	}
	return item, nil
}
