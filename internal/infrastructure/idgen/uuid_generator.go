package idgen

import (
	"gestao_plataformas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// UUIDGenerator yields "<prefix>-<uuid v4>", or a bare uuid for an empty
// prefix.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func New() UUIDGenerator { return UUIDGenerator{} }

func (UUIDGenerator) NewID(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
