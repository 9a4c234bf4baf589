// Package session tracks interactive calculator state. Each session
// holds the current parameter tuple; outputs are always recomputed
// from it, never stored.
package session

import (
	"errors"
	"time"

	"capm-lab/internal/model"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one user's interactive state. Preset names the preset the
// parameters came from; it is cleared when a value is edited by hand.
type Session struct {
	ID        string       `json:"id"`
	Params    model.Params `json:"params"`
	Preset    string       `json:"preset,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ParamsPatch is a partial parameter update. Fields are pointers
// because zero is a legal rate: nil means "leave unchanged".
type ParamsPatch struct {
	RiskFreeRate *float64 `json:"risk_free_rate"`
	MarketReturn *float64 `json:"market_return"`
	Beta         *float64 `json:"beta"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p ParamsPatch) IsEmpty() bool {
	return p.RiskFreeRate == nil && p.MarketReturn == nil && p.Beta == nil
}

// Apply overlays the patch on params and returns the result.
func (p ParamsPatch) Apply(params model.Params) model.Params {
	if p.RiskFreeRate != nil {
		params.RiskFreeRate = *p.RiskFreeRate
	}
	if p.MarketReturn != nil {
		params.MarketReturn = *p.MarketReturn
	}
	if p.Beta != nil {
		params.Beta = *p.Beta
	}
	return params
}

// Store is the session boundary. Only the in-memory implementation
// ships; the interface keeps handlers testable against fakes.
type Store interface {
	// Create opens a session seeded with params. preset records where
	// the values came from ("default" for a fresh session).
	Create(params model.Params, preset string) (Session, error)

	// Get returns a live session. Expired sessions are gone.
	Get(id string) (Session, error)

	// Update overlays a partial parameter change and clears the preset
	// marker, since the values are now hand-edited.
	Update(id string, patch ParamsPatch) (Session, error)

	// Apply overwrites all three parameters at once, recording the
	// preset name they came from.
	Apply(id string, params model.Params, preset string) (Session, error)

	// Delete removes a session. Deleting an unknown ID is an error.
	Delete(id string) error
}
