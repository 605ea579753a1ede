package permission

import (
	"github.com/openforum/likeservice/internal/domain/entity"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

// ClaimsGate answers permission questions from the actor's token snapshot.
// The authorization decision itself was made by the auth subsystem when it
// minted the token; this gate only reads the result.
type ClaimsGate struct{}

// NewClaimsGate creates a new ClaimsGate.
func NewClaimsGate() usecasecontract.IPermissionGate {
	return &ClaimsGate{}
}

func (g *ClaimsGate) CanCreateLike(actor entity.Actor) bool {
	return actor.UserID != "" && actor.HasPermission(entity.PermLikeAdd)
}

func (g *ClaimsGate) CanViewLikes(actor entity.Actor) bool {
	return actor.UserID != "" && actor.HasPermission(entity.PermLikeView)
}
