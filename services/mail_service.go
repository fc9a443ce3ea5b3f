package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"hms/models"
)

// SendMail gửi một email HTML qua SMTP, bắn một lần không retry
func SendMail(to []string, subject string, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendInvoiceEmail gửi tóm tắt hóa đơn cho khách sau khi trả phòng
func SendInvoiceEmail(email string, guestName string, hotelName string, bill models.FinalBill) error {
	subject := "Subject: Hóa đơn kỳ lưu trú của bạn\n"

	var lines strings.Builder
	for _, item := range bill.Services {
		lines.WriteString(fmt.Sprintf(`<tr><td>%s</td><td style="text-align:right">%.2f</td></tr>`, item.Name, item.Price))
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Hóa đơn</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Cảm ơn bạn đã lưu trú tại %s. Dưới đây là hóa đơn của bạn:</p>
			<table border="0" cellpadding="4">
				<tr><td>Tiền phòng (%d đêm)</td><td style="text-align:right">%.2f</td></tr>
				%s
				<tr><td>Tạm tính</td><td style="text-align:right">%.2f</td></tr>
				<tr><td>Phí dịch vụ (%.1f%%)</td><td style="text-align:right">%.2f</td></tr>
				<tr><td>Thuế (%.1f%%)</td><td style="text-align:right">%.2f</td></tr>
				<tr><td><strong>Tổng cộng</strong></td><td style="text-align:right"><strong>%.2f</strong></td></tr>
				<tr><td>Đã thanh toán</td><td style="text-align:right">%.2f</td></tr>
			</table>
			<p>Hẹn gặp lại bạn,<br>%s</p>
		</body>
		</html>
	`, guestName, hotelName,
		bill.Nights, bill.RoomCharge,
		lines.String(),
		bill.Subtotal,
		bill.ServiceChargeRate, bill.ServiceChargeAmount,
		bill.GstRate, bill.GstAmount,
		bill.Total, bill.PaidAmount,
		hotelName)

	return SendMail([]string{email}, subject, body)
}
