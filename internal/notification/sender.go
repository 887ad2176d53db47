// Package notification delivers admin alert emails for new orders and
// enquiries, either directly over SMTP or through the task queue.
package notification

import "context"

// OrderAlertData carries the order details rendered into the alert email.
type OrderAlertData struct {
	CustomerName   string
	Phone          string
	BrickType      string
	QuantityBricks string
	DeliveryArea   string
	LeadPriority   string
	WhatsAppURL    string
}

// EnquiryAlertData carries the enquiry details rendered into the alert email.
type EnquiryAlertData struct {
	Name    string
	Phone   string
	Message string
}

// Sender delivers admin notification emails.
type Sender interface {
	SendOrderAlert(ctx context.Context, toEmail string, data OrderAlertData) error
	SendEnquiryAlert(ctx context.Context, toEmail string, data EnquiryAlertData) error
}
