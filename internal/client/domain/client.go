package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrClientNotFound = errors.New("client not found")

type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
}

type Client struct {
	ID        string
	Name      string
	Email     string
	Document  string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewClient(name, email, document string, address Address) Client {
	now := time.Now().UTC()
	return Client{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Document:  document,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
