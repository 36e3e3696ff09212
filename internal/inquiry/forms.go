package inquiry

import "feed-catalog/internal/quote"

const (
	KindContact = "contact"
	KindQuote   = "quote"

	contactPrefix = "CT"
	quotePrefix   = "QT"

	contactAcceptedMessage = "Thank you for contacting us. Our team will review your message and get back to you within 24 hours."
	quoteAcceptedMessage   = "Your quote request has been submitted successfully. We'll send you a detailed proposal within 24 hours."

	contactFailedMessage = "Failed to send message. Please try again."
	quoteFailedMessage   = "Failed to submit quote request. Please try again."
)

// ContactForm is the contact page payload.
type ContactForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,emailshape"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// QuoteForm is the contact block of a quote request.
type QuoteForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,emailshape"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	FarmType  string `json:"farmType" validate:"required"`
	Message   string `json:"message,omitempty"`
}

// QuoteRequest is the body of POST /api/quote.
type QuoteRequest struct {
	FormData       QuoteForm        `json:"formData"`
	QuoteItems     []quote.LineItem `json:"quoteItems"`
	EstimatedTotal float64          `json:"estimatedTotal"`
}

// Confirmation acknowledges an accepted submission.
type Confirmation struct {
	Kind    string
	ID      string
	Message string
}

type QuoteResponse struct {
	Success bool   `json:"success"`
	QuoteID string `json:"quoteId"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}
