package domain

// Authorize requires the caller to be the stored principal.
func Authorize(caller, principal Identity) error {
	if caller != principal {
		return ErrUnauthorized
	}
	return nil
}
