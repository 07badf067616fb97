package ports

import (
	"context"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// ContactService dispatches contact-form submissions.
//
// Submit sends the operator notification and the submitter acknowledgment.
// Transport failures surface as domain.ErrMailDelivery; nothing is persisted
// either way.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

// ContactThrottle suppresses repeat submissions from the same address within
// a short window. Implementations must be safe to skip entirely (nil checker).
type ContactThrottle interface {
	IsRecent(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}
