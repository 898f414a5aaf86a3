// Package invoice renders a completed sales order as a printable HTML
// document. It only reads already-computed order fields; nothing here feeds
// back into the ledger.
package invoice

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/minhtp/sobanhang/internal/order"
)

var ErrNotCompleted = errors.New("only completed orders can be invoiced")

var tmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"vnd": FormatVND,
	"lineTotal": func(item order.Item) int64 {
		return order.LineTotal(item)
	},
}).Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>Hóa đơn {{.Number}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
td.num, th.num { text-align: right; }
tfoot td { font-weight: bold; }
</style>
</head>
<body>
<h1>Hóa đơn bán hàng</h1>
<p>Số: <strong>{{.Number}}</strong><br>
Ngày: {{.Date.Format "02/01/2006"}}{{if .CustomerName}}<br>
Khách hàng: {{.CustomerName}}{{end}}</p>
<table>
<thead>
<tr><th>Sản phẩm</th><th class="num">SL</th><th class="num">Đơn giá</th><th class="num">Thành tiền</th></tr>
</thead>
<tbody>
{{range .Items}}<tr><td>{{.ProductName}}</td><td class="num">{{.Quantity}}</td><td class="num">{{vnd .UnitPrice}}</td><td class="num">{{vnd (lineTotal .)}}</td></tr>
{{end}}</tbody>
<tfoot>
<tr><td colspan="3">Tổng cộng</td><td class="num">{{vnd .TotalAmount}}</td></tr>
{{if .DiscountPercentage}}<tr><td colspan="3">Chiết khấu ({{.DiscountPercentage}}%)</td><td class="num"></td></tr>
{{end}}{{if .OtherIncomeAmount}}<tr><td colspan="3">Thu khác</td><td class="num">{{vnd .OtherIncomeAmount}}</td></tr>
{{end}}<tr><td colspan="3">Thành tiền</td><td class="num">{{vnd .FinalAmount}}</td></tr>
{{if eq .PaymentMethod "cash"}}<tr><td colspan="3">Tiền khách đưa</td><td class="num">{{vnd .CashReceived}}</td></tr>
<tr><td colspan="3">Tiền thối lại</td><td class="num">{{vnd .ChangeGiven}}</td></tr>
{{end}}</tfoot>
</table>
<p>Cảm ơn quý khách!</p>
</body>
</html>
`))

// Render produces the printable invoice for a completed order.
func Render(o *order.Order) ([]byte, error) {
	if o.Status != order.StatusCompleted {
		return nil, ErrNotCompleted
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, o); err != nil {
		return nil, fmt.Errorf("rendering invoice: %w", err)
	}

	return buf.Bytes(), nil
}

// FormatVND renders an amount with dot grouping separators, e.g. 185000 as
// "185.000 ₫".
func FormatVND(amount int64) string {
	s := strconv.FormatInt(amount, 10)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder

	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(r)
	}

	out := b.String() + " ₫"
	if neg {
		out = "-" + out
	}

	return out
}
