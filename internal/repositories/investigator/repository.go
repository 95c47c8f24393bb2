// Package investigator stores investigator records keyed by id with a per-owner index
package investigator

//go:generate mockgen -destination=mock/mock_repository.go -package=investigatormock github.com/KirkDiggler/coc-api/internal/repositories/investigator Repository

import (
	"context"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// Repository defines investigator persistence
type Repository interface {
	// Create stores a new investigator
	// Returns errors.InvalidArgument for a nil record or empty id
	// Returns errors.AlreadyExists if the id is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads an investigator by id
	// Returns errors.NotFound if it does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored investigator, moving it between owner indexes if needed
	// Returns errors.NotFound if it does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an investigator and its occupation stat selection
	// Returns errors.NotFound if it does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns every investigator of an owner, most recently updated first
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// GetOccupationStat returns the characteristic picked for a choice formula.
	// A missing selection is not an error, Stat is empty.
	GetOccupationStat(ctx context.Context, input GetOccupationStatInput) (*GetOccupationStatOutput, error)

	// SetOccupationStat stores the picked characteristic, an empty Stat clears it
	SetOccupationStat(ctx context.Context, input SetOccupationStatInput) (*SetOccupationStatOutput, error)
}

// CreateInput defines the input for creating an investigator
type CreateInput struct {
	Character *coc.Character
}

// CreateOutput defines the output for creating an investigator
type CreateOutput struct {
	Character *coc.Character
}

// GetInput defines the input for getting an investigator
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an investigator
type GetOutput struct {
	Character *coc.Character
}

// UpdateInput defines the input for updating an investigator
type UpdateInput struct {
	Character *coc.Character
}

// UpdateOutput defines the output for updating an investigator
type UpdateOutput struct {
	Character *coc.Character
}

// DeleteInput defines the input for deleting an investigator
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an investigator
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's investigators
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's investigators
type ListByOwnerOutput struct {
	Characters []*coc.Character
}

// GetOccupationStatInput defines the input for reading the selected stat
type GetOccupationStatInput struct {
	ID string
}

// GetOccupationStatOutput defines the output for reading the selected stat
type GetOccupationStatOutput struct {
	Stat coc.Characteristic
}

// SetOccupationStatInput defines the input for storing the selected stat
type SetOccupationStatInput struct {
	ID   string
	Stat coc.Characteristic
}

// SetOccupationStatOutput defines the output for storing the selected stat
type SetOccupationStatOutput struct{}
