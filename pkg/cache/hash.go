package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys.
type Keyer interface {
	PlanKey(opts PlanKeyOpts) string
}

// PlanKeyOpts are the inputs that fully determine a generated plan.
type PlanKeyOpts struct {
	Component string `json:"component"`
	// TemplateHash is the hash of the template file, empty for built-ins.
	TemplateHash string `json:"template_hash,omitempty"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Seed         uint64 `json:"seed"`
	FlipX        bool   `json:"flip_x"`
	FlipY        bool   `json:"flip_y"`
	Margin       [4]int `json:"margin"`
	MaxAttempts  int    `json:"max_attempts"`
	Version      string `json:"version,omitempty"`
	// Registry fingerprints the registered components when Component is
	// empty and any of them may be picked.
	Registry []string `json:"registry,omitempty"`
}

// DefaultKeyer hashes the full option set.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlanKey returns "plan:<sha256 of opts>".
func (DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey("plan", opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
