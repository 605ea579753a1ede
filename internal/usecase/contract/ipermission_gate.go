package usecasecontract

import "github.com/openforum/likeservice/internal/domain/entity"

// IPermissionGate answers the two authorization questions the like feature
// has. The button is rendered when either answer is yes; the toggle action
// itself requires CanCreateLike.
type IPermissionGate interface {
	CanCreateLike(actor entity.Actor) bool
	CanViewLikes(actor entity.Actor) bool
}
