package entity

// AlertMessage is the notification sent for an account over the threshold.
type AlertMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
