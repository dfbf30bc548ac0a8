package contracts

import "context"

type OTPService interface {
	// Issue generates, stores, and dispatches a one-time code for the phone.
	Issue(ctx context.Context, phone string) error
	// Verify checks the code and consumes it on success.
	Verify(ctx context.Context, phone, code string) error
}
