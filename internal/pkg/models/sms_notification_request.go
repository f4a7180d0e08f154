package models

// SmsNotificationRequestPayload is the message published to the notification
// topic after a confirmed acceptance. PatternID selects the SMS template on
// the notification service side.
type SmsNotificationRequestPayload struct {
	NotificationParameter map[string]string `json:"notificationParameter"`
	PatternID             string            `json:"patternId"`
	SourceAddress         string            `json:"sourceAddress"`
	DestinationAddress    string            `json:"destinationAddress"`
}
