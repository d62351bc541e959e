package mailer

// Email templates in HTML format

// BookingConfirmationTemplate is sent to the guest after a successful booking
const BookingConfirmationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #f4f7f5;
            color: #1f2d27;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #dde7e1;
        }
        .logo h1 {
            font-size: 26px;
            color: #2f6f4f;
            margin: 0 0 24px;
            text-align: center;
        }
        h2 {
            font-size: 22px;
            margin: 0 0 16px;
        }
        p {
            color: #4a5a52;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 16px 0;
        }
        td {
            padding: 8px 0;
            font-size: 15px;
            color: #4a5a52;
            border-bottom: 1px solid #eef3f0;
        }
        td.label { font-weight: 600; width: 40%; }
        .total { font-size: 18px; font-weight: 700; color: #2f6f4f; }
        .footer {
            text-align: center;
            font-size: 13px;
            color: #8aa095;
            margin-top: 24px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo"><h1>Plumeria Retreat</h1></div>
            <h2>Your booking is confirmed!</h2>
            <p>Hi {{.GuestName}}, thank you for booking your stay with us. Here are your details:</p>
            <table>
                <tr><td class="label">Booking reference</td><td>{{.BookingID}}</td></tr>
                <tr><td class="label">Check-in</td><td>{{.CheckIn}}</td></tr>
                <tr><td class="label">Check-out</td><td>{{.CheckOut}}</td></tr>
                <tr><td class="label">Guests</td><td>{{.Guests}}</td></tr>
                <tr><td class="label">Total</td><td class="total">${{printf "%.2f" .Total}}</td></tr>
            </table>
            <p>We look forward to welcoming you to the lakeside. If you have any questions, just reply to this email.</p>
        </div>
        <div class="footer">Plumeria Lakeside Retreat &middot; Pawna Lake</div>
    </div>
</body>
</html>
`

// EnquiryAckTemplate acknowledges a contact form submission
const EnquiryAckTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #f4f7f5;
            color: #1f2d27;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #dde7e1;
        }
        .logo h1 {
            font-size: 26px;
            color: #2f6f4f;
            margin: 0 0 24px;
            text-align: center;
        }
        h2 { font-size: 22px; margin: 0 0 16px; }
        p {
            color: #4a5a52;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .footer {
            text-align: center;
            font-size: 13px;
            color: #8aa095;
            margin-top: 24px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo"><h1>Plumeria Retreat</h1></div>
            <h2>We received your message</h2>
            <p>Hi {{.Name}}, thanks for getting in touch. Our team will reply within one business day.</p>
            <p>Your message:</p>
            <p><em>{{.Message}}</em></p>
        </div>
        <div class="footer">Plumeria Lakeside Retreat &middot; Pawna Lake</div>
    </div>
</body>
</html>
`
