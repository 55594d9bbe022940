package notify

import (
	"encoding/json"
	"errors"
	"time"
)

// TypeContactCreated marks a freshly stored contact message.
const TypeContactCreated = "contact.created"

const messageVersion = 1

// Message is the payload published for downstream notification consumers.
type Message struct {
	Type      string `json:"type"`
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"message"`
	CreatedAt string `json:"createdAt"`
	RequestID string `json:"requestId,omitempty"`
	Version   int    `json:"version"`
}

// ContactCreated builds the notification for a stored contact message.
func ContactCreated(id, name, email, subject, body string, createdAt time.Time, requestID string) Message {
	return Message{
		Type:      TypeContactCreated,
		ContactID: id,
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
		RequestID: requestID,
		Version:   messageVersion,
	}
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	if msg.Type == "" {
		return Message{}, errors.New("missing message type")
	}
	return msg, nil
}
