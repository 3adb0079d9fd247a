package repositories

import "github.com/vsinha/oee/pkg/domain/entities"

// TableSource loads a production log into an in-memory table
type TableSource interface {
	Load(path string) (*entities.Table, error)
}
