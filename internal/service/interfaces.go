package service

import (
	"mime/multipart"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetAll() ([]TeamResponse, error)
	GetByID(id uint) (*TeamResponse, error)
	Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uint) error
	Search(query string) ([]TeamResponse, error)
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(req *CreatePlayerRequest) (*PlayerDetailResponse, error)
	GetAll() ([]PlayerResponse, error)
	GetByID(id uint) (*PlayerDetailResponse, error)
	Update(id uint, req *UpdatePlayerRequest) (*PlayerDetailResponse, error)
	Delete(id uint) error
	Search(query string) ([]PlayerSearchResult, error)
}

// TransferServiceInterface defines the interface for transfer service
type TransferServiceInterface interface {
	Create(req *CreateTransferRequest) (*TransferResponse, error)
	GetAll() ([]TransferResponse, error)
}

// AssetServiceInterface defines the interface for the player image store
type AssetServiceInterface interface {
	SavePlayerImage(playerID uint, file *multipart.FileHeader) (string, error)
}
