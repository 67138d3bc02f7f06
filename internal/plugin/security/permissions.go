package security

import (
	"slices"
	"sync"
)

// PermissionChecker tracks the capabilities granted to one script owner.
type PermissionChecker struct {
	mu           sync.RWMutex
	capabilities map[Capability]bool
	owner        string
}

// NewPermissionChecker creates a checker with no capabilities granted.
func NewPermissionChecker(owner string) *PermissionChecker {
	return &PermissionChecker{
		capabilities: make(map[Capability]bool),
		owner:        owner,
	}
}

// Owner returns the name the checker was created for.
func (pc *PermissionChecker) Owner() string {
	return pc.owner
}

// Grant grants a capability.
func (pc *PermissionChecker) Grant(cap Capability) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.capabilities[cap] = true
}

// Revoke revokes a capability. Capabilities implied by a still-granted
// parent remain available.
func (pc *PermissionChecker) Revoke(cap Capability) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	delete(pc.capabilities, cap)
}

// HasCapability returns true if cap or one of its parents is granted.
func (pc *PermissionChecker) HasCapability(cap Capability) bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.capabilities[cap] {
		return true
	}
	for granted := range pc.capabilities {
		if ImpliesCapability(granted, cap) {
			return true
		}
	}
	return false
}

// CheckCapability returns a *CapabilityError if cap is not granted.
func (pc *PermissionChecker) CheckCapability(cap Capability) error {
	if !pc.HasCapability(cap) {
		return NewCapabilityError(cap, "", "not granted")
	}
	return nil
}

// CheckClipboard checks if clipboard access is permitted for operation.
func (pc *PermissionChecker) CheckClipboard(operation string) error {
	if !pc.HasCapability(CapabilityClipboard) {
		return NewCapabilityError(CapabilityClipboard, operation, "not granted")
	}
	return nil
}

// Capabilities returns the directly granted capabilities, sorted.
func (pc *PermissionChecker) Capabilities() []Capability {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	caps := make([]Capability, 0, len(pc.capabilities))
	for cap := range pc.capabilities {
		caps = append(caps, cap)
	}
	slices.Sort(caps)
	return caps
}
