package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskOrderAlertEmail = "notifications.order_alert_email"

const TaskEnquiryAlertEmail = "notifications.enquiry_alert_email"

type OrderAlertEmailPayload struct {
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	BrickType      string `json:"brickType"`
	QuantityBricks string `json:"quantityBricks"`
	DeliveryArea   string `json:"deliveryArea"`
	LeadPriority   string `json:"leadPriority"`
	WhatsAppURL    string `json:"whatsappUrl"`
}

type EnquiryAlertEmailPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func NewOrderAlertEmailTask(payload OrderAlertEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderAlertEmail, data), nil
}

func ParseOrderAlertEmailPayload(task *asynq.Task) (OrderAlertEmailPayload, error) {
	var payload OrderAlertEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return OrderAlertEmailPayload{}, err
	}
	return payload, nil
}

func NewEnquiryAlertEmailTask(payload EnquiryAlertEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEnquiryAlertEmail, data), nil
}

func ParseEnquiryAlertEmailPayload(task *asynq.Task) (EnquiryAlertEmailPayload, error) {
	var payload EnquiryAlertEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return EnquiryAlertEmailPayload{}, err
	}
	return payload, nil
}
