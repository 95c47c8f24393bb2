// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	invrepo "github.com/KirkDiggler/coc-api/internal/repositories/investigator"
	invrepomock "github.com/KirkDiggler/coc-api/internal/repositories/investigator/mock"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
	rolllogmock "github.com/KirkDiggler/coc-api/internal/repositories/roll_log/mock"
)

// ExpectInvestigatorGet sets up a mock expectation for loading an investigator
func ExpectInvestigatorGet(
	ctx context.Context, mockRepo *invrepomock.MockRepository,
	character *coc.Character, err error,
) *gomock.Call {
	var out *invrepo.GetOutput
	if err == nil {
		out = &invrepo.GetOutput{Character: character}
	}
	return mockRepo.EXPECT().
		Get(ctx, invrepo.GetInput{ID: character.ID}).
		Return(out, err)
}

// ExpectInvestigatorUpdate sets up a mock expectation that echoes the stored record back
func ExpectInvestigatorUpdate(ctx context.Context, mockRepo *invrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input invrepo.UpdateInput) (*invrepo.UpdateOutput, error) {
			return &invrepo.UpdateOutput{Character: input.Character}, nil
		})
}

// ExpectOccupationStat sets up a mock expectation for reading the chosen occupation stat.
// An empty stat means nothing has been chosen.
func ExpectOccupationStat(
	ctx context.Context, mockRepo *invrepomock.MockRepository,
	id string, stat coc.Characteristic,
) *gomock.Call {
	return mockRepo.EXPECT().
		GetOccupationStat(ctx, invrepo.GetOccupationStatInput{ID: id}).
		Return(&invrepo.GetOccupationStatOutput{Stat: stat}, nil)
}

// ExpectOccupationStatReset sets up a mock expectation for clearing the occupation stat
func ExpectOccupationStatReset(ctx context.Context, mockRepo *invrepomock.MockRepository, id string) *gomock.Call {
	return mockRepo.EXPECT().
		SetOccupationStat(ctx, invrepo.SetOccupationStatInput{ID: id}).
		Return(&invrepo.SetOccupationStatOutput{}, nil)
}

// ExpectRollLogAppend accepts any append and records the entries into sink when it is not nil
func ExpectRollLogAppend(
	ctx context.Context, mockRepo *rolllogmock.MockRepository,
	sink *[]rolllog.Entry,
) *gomock.Call {
	return mockRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			if sink != nil {
				*sink = append(*sink, input.Entries...)
			}
			return &rolllog.AppendOutput{}, nil
		})
}
