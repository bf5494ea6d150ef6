package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
	"vehicle-booking-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	cause := stderrors.New("connection reset")

	testCases := []struct {
		name string
		err  error
		kind errors.Kind
		code int
	}{
		{"bad request", errors.BadRequest("no payload body"), errors.KindValidation, http.StatusBadRequest},
		{"schema", errors.UnprocessableEntity("invalid payload", nil), errors.KindValidation, http.StatusUnprocessableEntity},
		{"domain", errors.DomainValidation("start date must be before end date"), errors.KindDomainValidation, http.StatusBadRequest},
		{"persistence", errors.Persistence("failed to save booking", cause), errors.KindPersistence, http.StatusInternalServerError},
		{"publish", errors.EventPublish("failed to publish event", cause), errors.KindEventPublish, http.StatusInternalServerError},
		{"invariant", errors.InvariantViolation("booking id is required"), errors.KindInvariantViolation, http.StatusInternalServerError},
		{"plain error", stderrors.New("boom"), errors.KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, errors.KindOf(tc.err))
			assert.Equal(t, tc.code, errors.CodeOf(tc.err))
		})
	}
}

func TestCauseIsKept(t *testing.T) {
	cause := stderrors.New("E11000 duplicate key")
	err := fmt.Errorf("create booking: %w", errors.Persistence("failed to save booking", cause))

	assert.True(t, errors.IsKind(err, errors.KindPersistence))
	assert.False(t, errors.IsKind(err, errors.KindEventPublish))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "create booking: failed to save booking: E11000 duplicate key", err.Error())
}
