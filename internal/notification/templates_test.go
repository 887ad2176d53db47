package notification

import (
	"strings"
	"testing"
)

func TestRenderOrderAlertTemplate(t *testing.T) {
	content, err := renderEmailTemplate("order_alert.html", orderAlertEmailData{
		baseEmailData: baseEmailData{Title: "New brick order", Heading: "New order received"},
		OrderAlertData: OrderAlertData{
			CustomerName:   "Ravi Kumar",
			Phone:          "+919812345678",
			BrickType:      "Avval",
			QuantityBricks: "15,000",
			DeliveryArea:   "Ludhiana",
			LeadPriority:   "hot",
			WhatsAppURL:    "https://wa.me/919876543210?text=hello",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Ravi Kumar", "Avval", "15,000", "Ludhiana", "hot", "wa.me"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected rendered email to contain %q", want)
		}
	}
}

func TestRenderOrderAlertTemplateOmitsEmptyWhatsAppLink(t *testing.T) {
	content, err := renderEmailTemplate("order_alert.html", orderAlertEmailData{
		baseEmailData:  baseEmailData{Title: "New brick order", Heading: "New order received"},
		OrderAlertData: OrderAlertData{CustomerName: "Ravi Kumar"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(content, "wa.me") {
		t.Fatal("expected no WhatsApp link without a URL")
	}
}

func TestRenderEnquiryAlertTemplateEscapesHTML(t *testing.T) {
	content, err := renderEmailTemplate("enquiry_alert.html", enquiryAlertEmailData{
		baseEmailData: baseEmailData{Title: "New enquiry", Heading: "New enquiry received"},
		EnquiryAlertData: EnquiryAlertData{
			Name:    "Tom & Sons",
			Phone:   "+919812345678",
			Message: "<script>alert(1)</script>need bricks",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(content, "<script>") {
		t.Fatal("expected message HTML to be escaped")
	}
	if !strings.Contains(content, "Tom &amp; Sons") {
		t.Fatal("expected escaped ampersand in name")
	}
}
