package service

import (
	"fmt"
	"log"
	"time"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
)

// Sender delivers out-of-band notifications. Implementations must not block
// the request path; dispatch is asynchronous.
type Sender interface {
	SendBookingStatusNotification(booking *db.Booking, status string)
	SendSessionAlert(toEmail string, data entities.SessionAlertData)
}

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func vietnamLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		loc = time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// StatusText maps a booking status to its Vietnamese display text.
func StatusText(status string) string {
	switch status {
	case "pending":
		return "Chờ xác nhận"
	case "confirmed":
		return "Đã xác nhận"
	case "completed":
		return "Hoàn thành"
	case "cancelled":
		return "Đã hủy"
	}
	return status
}

// SendBookingStatusNotification emails and texts the customer after an admin
// confirms or cancels a booking. Contact fields are optional on bookings, so
// each channel is skipped when its address is missing.
func (s *SenderService) SendBookingStatusNotification(booking *db.Booking, status string) {
	loc := vietnamLocation()
	statusText := StatusText(status)

	vehicleName := ""
	if booking.VehicleName != nil {
		vehicleName = *booking.VehicleName
	}

	data := entities.BookingEmailData{
		CustomerName:    booking.CustomerName,
		BookingID:       booking.ID,
		PickupLocation:  booking.PickupLocation,
		PickupFormatted: fmt.Sprintf("%s %s", booking.PickupDate.In(loc).Format("02/01/2006"), booking.PickupTime),
		VehicleName:     vehicleName,
		StatusText:      statusText,
	}

	if booking.CustomerEmail != nil && *booking.CustomerEmail != "" {
		subject := fmt.Sprintf("Đơn đặt xe #%d - %s", data.BookingID, data.StatusText)
		plainBody := fmt.Sprintf(
			"Xin chào %s,\n\n"+
				"Đơn đặt xe #%d của bạn hiện ở trạng thái: %s.\n\n"+
				"Điểm đón: %s\n"+
				"Thời gian đón: %s\n",
			data.CustomerName, data.BookingID, data.StatusText, data.PickupLocation, data.PickupFormatted,
		)
		if data.VehicleName != "" {
			plainBody += fmt.Sprintf("Xe: %s\n", data.VehicleName)
		}
		plainBody += "\nCảm ơn bạn đã sử dụng dịch vụ của chúng tôi."
		htmlBody := fmt.Sprintf(
			"<p>Xin chào %s,</p><p>Đơn đặt xe <b>#%d</b> của bạn hiện ở trạng thái: <b>%s</b>.</p>"+
				"<p>Điểm đón: %s<br>Thời gian đón: %s</p>",
			data.CustomerName, data.BookingID, data.StatusText, data.PickupLocation, data.PickupFormatted,
		)

		go func(toEmail, toName, subject, plainBody, htmlBody string) {
			if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBody); err != nil {
				log.Printf("ALERT (async): failed to send status email for booking %d: %v", data.BookingID, err)
			}
		}(*booking.CustomerEmail, data.CustomerName, subject, plainBody, htmlBody)
	}

	smsBody := fmt.Sprintf("Thao Vy Xe: Đơn đặt xe #%d của bạn %s. Đón lúc %s.",
		data.BookingID, data.StatusText, data.PickupFormatted)
	go func(phone, body string) {
		if err := SendSMS(phone, body); err != nil {
			log.Printf("ALERT (async): failed to send status SMS for booking %d: %v", data.BookingID, err)
		}
	}(booking.CustomerPhone, smsBody)
}

// SendSessionAlert notifies the account owner that a new login happened while
// other sessions were still active.
func (s *SenderService) SendSessionAlert(toEmail string, data entities.SessionAlertData) {
	loc := vietnamLocation()
	subject := fmt.Sprintf("Cảnh báo bảo mật: phiên đăng nhập mới cho tài khoản %s", data.Username)
	plainBody := fmt.Sprintf(
		"Xin chào %s,\n\n"+
			"Tài khoản của bạn vừa được đăng nhập trong khi %d phiên khác vẫn đang hoạt động.\n\n"+
			"Phiên mới: %s\n"+
			"Địa chỉ IP: %s\n"+
			"Trình duyệt: %s\n"+
			"Thời gian: %s\n\n"+
			"Phiên gần nhất trước đó: %s (IP %s, bắt đầu %s)\n\n"+
			"Nếu không phải bạn, hãy đổi mật khẩu ngay.",
		data.Username, data.ActiveSessions,
		data.NewSessionID, data.IPAddress, data.UserAgent,
		data.LoginTime.In(loc).Format("02/01/2006 15:04:05"),
		data.PriorSessionID, data.PriorSessionIP,
		data.PriorSessionStart.In(loc).Format("02/01/2006 15:04:05"),
	)
	htmlBody := fmt.Sprintf(
		"<p>Xin chào %s,</p><p>Tài khoản của bạn vừa được đăng nhập trong khi <b>%d</b> phiên khác vẫn đang hoạt động.</p>"+
			"<p>Phiên mới: %s<br>IP: %s<br>Trình duyệt: %s</p>"+
			"<p>Nếu không phải bạn, hãy đổi mật khẩu ngay.</p>",
		data.Username, data.ActiveSessions, data.NewSessionID, data.IPAddress, data.UserAgent,
	)

	go func(toEmail, toName, subject, plainBody, htmlBody string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBody); err != nil {
			log.Printf("ALERT (async): failed to send session alert for %s: %v", data.Username, err)
		}
	}(toEmail, data.Username, subject, plainBody, htmlBody)
}
