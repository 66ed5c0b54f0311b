package application

import (
	"context"

	"github.com/gmatheus/commerce-core/internal/client/domain"
)

type ClientRepository interface {
	Add(ctx context.Context, c domain.Client) error
	Find(ctx context.Context, id string) (domain.Client, error)
}
