// Package security provides capability checks for plugin scripts.
package security

import (
	"fmt"
	"slices"
	"strings"
)

// Capability represents a permission that a script can be granted.
// Capabilities are hierarchical: granting a parent capability
// implicitly grants all child capabilities.
type Capability string

// Known capabilities.
const (
	// CapabilityEditor grants access to all editor state.
	CapabilityEditor Capability = "editor"

	// CapabilityRegisters grants read and write access to registers.
	CapabilityRegisters Capability = "editor.registers"

	// CapabilityClipboard allows reading and writing the "+ and "* registers
	// when they are backed by the system clipboard.
	CapabilityClipboard Capability = "clipboard"
)

// CapabilityInfo provides metadata about a capability.
type CapabilityInfo struct {
	Name        Capability
	DisplayName string
	Description string
}

var capabilityRegistry = map[Capability]CapabilityInfo{
	CapabilityEditor: {
		Name:        CapabilityEditor,
		DisplayName: "Editor",
		Description: "Full access to editor state",
	},
	CapabilityRegisters: {
		Name:        CapabilityRegisters,
		DisplayName: "Registers",
		Description: "Read and write registers and the working directory",
	},
	CapabilityClipboard: {
		Name:        CapabilityClipboard,
		DisplayName: "Clipboard",
		Description: "Read and write the system clipboard",
	},
}

// GetCapabilityInfo returns information about a capability.
func GetCapabilityInfo(cap Capability) (CapabilityInfo, bool) {
	info, ok := capabilityRegistry[cap]
	return info, ok
}

// AllCapabilities returns all known capabilities, sorted.
func AllCapabilities() []Capability {
	caps := make([]Capability, 0, len(capabilityRegistry))
	for cap := range capabilityRegistry {
		caps = append(caps, cap)
	}
	slices.Sort(caps)
	return caps
}

// IsChildOf returns true if child is a child of parent.
func IsChildOf(child, parent Capability) bool {
	return strings.HasPrefix(string(child), string(parent)+".")
}

// ImpliesCapability returns true if having granted implies having required.
func ImpliesCapability(granted, required Capability) bool {
	return granted == required || IsChildOf(required, granted)
}

// CapabilityError represents a missing capability.
type CapabilityError struct {
	Capability Capability
	Operation  string
	Message    string
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("capability %q required for %s: %s", e.Capability, e.Operation, e.Message)
	}
	return fmt.Sprintf("capability %q: %s", e.Capability, e.Message)
}

// NewCapabilityError creates a new capability error.
func NewCapabilityError(cap Capability, operation, message string) *CapabilityError {
	return &CapabilityError{
		Capability: cap,
		Operation:  operation,
		Message:    message,
	}
}
