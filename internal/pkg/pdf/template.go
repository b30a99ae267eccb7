package pdf

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body { font-family: Georgia, serif; margin: 0; padding: 24px; color: #2b2b2b; }
        .header { display: flex; justify-content: space-between; border-bottom: 2px solid #e7e1da; padding-bottom: 18px; margin-bottom: 28px; }
        .brand { font-size: 30px; letter-spacing: 4px; text-transform: uppercase; }
        .meta { text-align: right; font-size: 13px; }
        .meta p { margin: 3px 0; }
        .section-title { font-size: 13px; letter-spacing: 2px; text-transform: uppercase; color: #8a7f74; margin-bottom: 8px; }
        .ship-to p { margin: 2px 0; }
        .items { width: 100%; border-collapse: collapse; margin: 28px 0; font-size: 13px; }
        .items th { text-align: left; border-bottom: 1px solid #2b2b2b; padding: 8px 4px; }
        .items td { border-bottom: 1px solid #eee; padding: 10px 4px; vertical-align: top; }
        .num { text-align: right; }
        .totals { float: right; width: 280px; font-size: 14px; }
        .totals td { padding: 6px 4px; }
        .grand td { font-size: 17px; font-weight: bold; border-top: 2px solid #2b2b2b; }
        .footer { clear: both; padding-top: 48px; text-align: center; color: #8a7f74; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <div class="brand">{{.Company.Name}}</div>
            <p>{{.Company.Address}}</p>
            <p>{{.Company.Email}} · {{.Company.Website}}</p>
        </div>
        <div class="meta">
            <p><strong>Invoice #:</strong> {{.InvoiceNumber}}</p>
            <p><strong>Order #:</strong> {{.Order.OrderNumber}}</p>
            <p><strong>Order Date:</strong> {{date .Order.CreatedAt}}</p>
            <p><strong>Status:</strong> {{.Order.Status}}</p>
            <p><strong>Tracking:</strong> {{.Order.TrackingNumber}}</p>
            <p><strong>Estimated Delivery:</strong> {{date .Order.EstimatedDelivery}}</p>
        </div>
    </div>

    {{with .Order.ShippingAddress}}
    <div class="ship-to">
        <div class="section-title">Ship To</div>
        <p><strong>{{.FullName}}</strong></p>
        <p>{{.Address}}</p>
        <p>{{.City}}, {{.State}} {{.ZipCode}}</p>
        {{if .Country}}<p>{{.Country}}</p>{{end}}
        <p>{{.Phone}}</p>
    </div>
    {{end}}

    <table class="items">
        <thead>
            <tr>
                <th>Item</th>
                <th>Variant</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td>{{.Name}}</td>
                <td>{{variant .}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{money .Price}}</td>
                <td class="num">{{lineTotal .}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <table class="totals">
        <tr><td>Subtotal</td><td class="num">{{money .Order.Subtotal}}</td></tr>
        <tr><td>Shipping</td><td class="num">{{if .Order.FreeShipping}}Free{{else}}{{money .Order.Shipping}}{{end}}</td></tr>
        <tr><td>Tax</td><td class="num">{{money .Order.Tax}}</td></tr>
        <tr class="grand"><td>Total</td><td class="num">{{money .Order.Total}}</td></tr>
    </table>

    <div class="footer">
        <p>Thank you for shopping with {{.Company.Name}}.</p>
        <p>Questions about this invoice? Write to {{.Company.Email}}.</p>
    </div>
</body>
</html>
`
