package domain

// RegistryKey is the well-known key the AdminRegistry singleton is stored
// under.
const RegistryKey = "admin"

// AdminRegistry holds the controlling authority and the pause switch that
// gates every campaign operation. Exactly one exists per deployment.
type AdminRegistry struct {
	Authority Identity
	Paused    bool
}

// NewAdminRegistry returns the initial registry for caller.
func NewAdminRegistry(caller Identity) AdminRegistry {
	return AdminRegistry{Authority: caller}
}

// EnsureActive fails with ErrContractPaused while the registry is paused.
func (r AdminRegistry) EnsureActive() error {
	if r.Paused {
		return ErrContractPaused
	}
	return nil
}

// TogglePause flips the pause flag. Only the authority may do so.
func (r *AdminRegistry) TogglePause(caller Identity) error {
	if err := Authorize(caller, r.Authority); err != nil {
		return err
	}
	r.Paused = !r.Paused
	return nil
}
