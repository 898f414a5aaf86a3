package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/order"
)

type itemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	CostPrice   int64     `json:"cost_price"`
	LineTotal   int64     `json:"line_total"`
}

type orderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Number             string              `json:"number"`
	CustomerName       string              `json:"customer_name,omitempty"`
	Date               time.Time           `json:"date"`
	Items              []itemResponse      `json:"items"`
	Status             order.Status        `json:"status"`
	TotalAmount        int64               `json:"total_amount"`
	DiscountPercentage float64             `json:"discount_percentage"`
	OtherIncomeAmount  int64               `json:"other_income_amount"`
	FinalAmount        int64               `json:"final_amount"`
	TotalCost          int64               `json:"total_cost"`
	TotalProfit        int64               `json:"total_profit"`
	PaymentMethod      order.PaymentMethod `json:"payment_method,omitempty"`
	CashReceived       int64               `json:"cash_received"`
	ChangeGiven        int64               `json:"change_given"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          *time.Time          `json:"updated_at,omitempty"`
}

func toResponse(o *order.Order) orderResponse {
	items := make([]itemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, itemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			CostPrice:   item.CostPrice,
			LineTotal:   order.LineTotal(item),
		})
	}

	return orderResponse{
		ID:                 o.ID,
		Number:             o.Number,
		CustomerName:       o.CustomerName,
		Date:               o.Date,
		Items:              items,
		Status:             o.Status,
		TotalAmount:        o.TotalAmount,
		DiscountPercentage: o.DiscountPercentage,
		OtherIncomeAmount:  o.OtherIncomeAmount,
		FinalAmount:        o.FinalAmount,
		TotalCost:          o.TotalCost,
		TotalProfit:        o.TotalProfit,
		PaymentMethod:      o.PaymentMethod,
		CashReceived:       o.CashReceived,
		ChangeGiven:        o.ChangeGiven,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toResponseList(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toResponse(o))
	}

	return resp
}
