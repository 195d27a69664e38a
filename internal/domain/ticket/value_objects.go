package ticket

import (
	"errors"
	"strings"
)

const (
	SubjectMaxLen = 80
	InquiryMaxLen = 500

	ImageMaxBytes = 5 << 20 // 5 MB
)

var (
	ErrEmptySubject    = errors.New("subject is required")
	ErrSubjectTooLong  = errors.New("subject exceeds 80 characters")
	ErrEmptyInquiry    = errors.New("inquiry is required")
	ErrInquiryTooLong  = errors.New("inquiry exceeds 500 characters")
	ErrEmptyReply      = errors.New("reply message is required")
	ErrImageTooLarge   = errors.New("image exceeds 5 MB")
	ErrUnsupportedType = errors.New("image must be PNG or JPEG")
)

type Subject struct {
	value string
}

func NewSubject(s string) (Subject, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Subject{}, ErrEmptySubject
	}
	if len([]rune(s)) > SubjectMaxLen {
		return Subject{}, ErrSubjectTooLong
	}
	return Subject{value: s}, nil
}

func (s Subject) Value() string {
	return s.value
}

type Inquiry struct {
	value string
}

func NewInquiry(s string) (Inquiry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Inquiry{}, ErrEmptyInquiry
	}
	if len([]rune(s)) > InquiryMaxLen {
		return Inquiry{}, ErrInquiryTooLong
	}
	return Inquiry{value: s}, nil
}

func (i Inquiry) Value() string {
	return i.value
}

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
}

// ValidateImage re-checks the advisory client-side constraints. The image
// itself is not stored here; only the reference travels with the ticket.
func ValidateImage(contentType string, size int64) error {
	if _, ok := allowedImageTypes[strings.ToLower(contentType)]; !ok {
		return ErrUnsupportedType
	}
	if size > ImageMaxBytes {
		return ErrImageTooLarge
	}
	return nil
}
