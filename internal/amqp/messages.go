package amqp

import (
	"encoding/json"
	"time"

	"satnica/internal/core"
)

// EarningsAlertMessage carries one notification request: a submitted entry
// whose earnings deviated from the user's running average. The payload is
// self-contained so the delivery worker never has to query the store.
type EarningsAlertMessage struct {
	UserID         string              `json:"user_id"`
	RecordID       string              `json:"record_id"`
	Classification core.Classification `json:"classification"`
	Message        string              `json:"message"`
	Earnings       float64             `json:"earnings"`
	Average        float64             `json:"average"`
	Timestamp      time.Time           `json:"timestamp"`
}

func NewEarningsAlertMessage(userID, recordID string, cls core.Classification, message string, earnings, average float64) *EarningsAlertMessage {
	return &EarningsAlertMessage{
		UserID:         userID,
		RecordID:       recordID,
		Classification: cls,
		Message:        message,
		Earnings:       earnings,
		Average:        average,
		Timestamp:      time.Now(),
	}
}

func (m *EarningsAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func EarningsAlertMessageFromJSON(data []byte) (*EarningsAlertMessage, error) {
	var msg EarningsAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
