package service

import (
	"ReviewBoard/internal/metrics"
	"ReviewBoard/internal/model"
)

// OwnershipGuard сверяет действующего пользователя с сохранённым владельцем ресурса.
type OwnershipGuard struct {
	revealForeign bool
}

// NewOwnershipGuard создаёт проверку владения. При revealForeign чужой ресурс даёт
// ErrForbidden, иначе ErrNotFound: чтобы не раскрывать его существование.
func NewOwnershipGuard(revealForeign bool) *OwnershipGuard {
	return &OwnershipGuard{revealForeign: revealForeign}
}

// Check возвращает nil, если actor: владелец. ownerID берётся только из хранилища.
func (g *OwnershipGuard) Check(actor *model.Identity, ownerID, resource string) error {
	if actor == nil || actor.ID == "" {
		return ErrUnauthorized
	}
	if actor.ID == ownerID {
		return nil
	}
	metrics.OwnershipDenialsTotal.WithLabelValues(resource).Inc()
	if g.revealForeign {
		return ErrForbidden
	}
	return ErrNotFound
}
