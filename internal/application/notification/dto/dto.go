package dto

// AssignmentEmail is the message sent to an agent when an inquiry is handed
// to them.
type AssignmentEmail struct {
	To            string
	AgentName     string
	InquiryID     string
	CustomerName  string
	CustomerPhone string
	InquiryType   string
	Message       string
	Reassigned    bool
	DashboardURL  string
}
