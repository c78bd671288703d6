package service

import (
	"context"
	"fmt"
	"io"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const salesSheet = "Sales"

var salesHeader = []any{"Order ID", "Order Date", "Customer ID", "Table ID", "Payment Method", "Total", "Discount", "Final"}

type ReportService struct {
	orders repository.OrderRepository
	log    *logger.Logger
}

func NewReportService(orders repository.OrderRepository, log *logger.Logger) *ReportService {
	return &ReportService{orders: orders, log: log.WithComponent("report_service")}
}

// WriteSalesReport writes paid orders as an xlsx workbook with a closing total row.
func (s *ReportService) WriteSalesReport(ctx context.Context, w io.Writer) error {
	orders, err := s.orders.FindByStatus(ctx, model.OrderPaid)
	if err != nil {
		return err
	}

	xl := excelize.NewFile()
	defer xl.Close()
	if err := xl.SetSheetName("Sheet1", salesSheet); err != nil {
		return err
	}
	if err := xl.SetSheetRow(salesSheet, "A1", &salesHeader); err != nil {
		return err
	}

	sum := decimal.Zero
	for i, order := range orders {
		method := ""
		if order.PaymentMethod != nil {
			method = string(*order.PaymentMethod)
		}
		row := []any{
			order.ID,
			order.OrderDate.Format("2006-01-02 15:04"),
			order.CustomerID,
			order.TableID,
			method,
			order.TotalAmount.InexactFloat64(),
			order.DiscountAmount.InexactFloat64(),
			order.FinalAmount.InexactFloat64(),
		}
		if err := xl.SetSheetRow(salesSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
		sum = sum.Add(order.FinalAmount)
	}

	totalRow := []any{"Total", "", "", "", "", "", "", sum.InexactFloat64()}
	if err := xl.SetSheetRow(salesSheet, fmt.Sprintf("A%d", len(orders)+2), &totalRow); err != nil {
		return err
	}

	s.log.Info("sales report generated", "orders", len(orders), "revenue", sum.String())
	_, err = xl.WriteTo(w)
	return err
}
