package application

import (
	"context"
	"fmt"

	"github.com/gmatheus/commerce-core/internal/client/domain"
)

type AddClientInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Document   string `json:"document"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
}

type Service struct {
	repo ClientRepository
}

func NewService(repo ClientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, in AddClientInput) (domain.Client, error) {
	client := domain.NewClient(in.Name, in.Email, in.Document, domain.Address{
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
	})
	if err := s.repo.Add(ctx, client); err != nil {
		return domain.Client{}, fmt.Errorf("add client: %w", err)
	}
	return client, nil
}

func (s *Service) Find(ctx context.Context, id string) (domain.Client, error) {
	return s.repo.Find(ctx, id)
}
