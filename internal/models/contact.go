package models

import "time"

// Contact is a submitted contact-form message. Write-once: created via the
// contact endpoint and only ever read back as a listing.
type Contact struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Email     string    `json:"email" gorm:"column:email;not null"`
	Subject   string    `json:"subject" gorm:"column:subject;not null"`
	Message   string    `json:"message" gorm:"column:message;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

// NewContact builds a contact record from the submitted form fields.
func NewContact(name, email, subject, message string) *Contact {
	return &Contact{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
}
