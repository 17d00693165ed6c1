package usecase

import "time"

// SetNow overrides the order use case clock in tests.
func (u *OrderUseCase) SetNow(fn func() time.Time) { u.now = fn }
