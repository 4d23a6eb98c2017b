package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	all := []Status{
		StatusPending,
		StatusInProcess,
		StatusFinalized,
		StatusCancelled,
		StatusCancelledByNovelty,
	}

	allowed := map[Status]map[Status]bool{
		StatusPending: {
			StatusInProcess:          true,
			StatusCancelled:          true,
			StatusCancelledByNovelty: true,
		},
		StatusInProcess: {
			StatusFinalized:          true,
			StatusCancelled:          true,
			StatusCancelledByNovelty: true,
		},
		StatusFinalized: {},
		StatusCancelled: {},
		StatusCancelledByNovelty: {
			StatusPending: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			if allowed[from][to] {
				assert.NoError(t, err, "%s -> %s should be legal", from, to)
			} else {
				assert.Error(t, err, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(Status("desconocido"), StatusPending)
	assert.Error(t, err)

	var transErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transErr)
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusInProcess.IsActive())
	assert.False(t, StatusFinalized.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCancelledByNovelty.IsActive())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelledByNovelty.Valid())
	assert.False(t, Status("archivada").Valid())
}
