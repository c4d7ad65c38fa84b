package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

func TestNewEmployee(t *testing.T) {
	t.Parallel()

	e, err := NewEmployee("Jane O'Neil-Smith", RoleTCP, true)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(e.ID, "EMP"))
	require.Len(t, e.ID, len("EMP")+8)
	require.Equal(t, "Jane O'Neil-Smith", e.Name)
	require.Equal(t, RoleTCP, e.Role)
	require.True(t, e.Availability)
}

func TestNewEmployeeCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	e, err := NewEmployee("  Jane   Doe  ", RoleLCT, true)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", e.Name)
}

func TestNewEmployeeValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		role       EmployeeRole
		wantFields []string
	}{
		{"empty name", "   ", RoleTCP, []string{"name"}},
		{"too short", "J", RoleTCP, []string{"name"}},
		{"too long", strings.Repeat("a", 101), RoleTCP, []string{"name"}},
		{"digits", "Jane2", RoleTCP, []string{"name"}},
		{"bad role", "Jane Doe", EmployeeRole("MANAGER"), []string{"role"}},
		{"both invalid", "!", EmployeeRole(""), []string{"name", "role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewEmployee(tt.input, tt.role, true)
			require.Error(t, err)

			var de *apperrors.DomainError
			require.ErrorAs(t, err, &de)
			require.Equal(t, "VALIDATION_FAILED", de.Code)
			// Every violated field must be reported together.
			require.Len(t, de.Details, len(tt.wantFields))
			for _, field := range tt.wantFields {
				require.Contains(t, de.Details, field)
			}
		})
	}
}

func TestNewEmployeeNameLengthCountsRunes(t *testing.T) {
	t.Parallel()

	// 100 accented characters is 200 bytes but exactly the character limit.
	e, err := NewEmployee(strings.Repeat("é", 100), RoleTCP, true)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("é", 100), e.Name)

	_, err = NewEmployee(strings.Repeat("é", 101), RoleTCP, true)
	require.Error(t, err)
}

func TestEmployeeAvailabilityToggles(t *testing.T) {
	t.Parallel()

	e, err := NewEmployee("Jane Doe", RoleSupervisor, true)
	require.NoError(t, err)

	e.MarkUnavailable()
	require.False(t, e.Availability)
	e.MarkAvailable()
	require.True(t, e.Availability)
}
