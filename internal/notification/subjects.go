package notification

const (
	subjectOrderAlertFmt   = "New brick order from %s"
	subjectEnquiryAlertFmt = "New enquiry from %s"
)
