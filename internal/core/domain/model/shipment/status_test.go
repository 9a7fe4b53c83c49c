package shipment_test

import (
	"testing"

	"couriernet/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status shipment.Status
		want   string
	}{
		{shipment.StatusNadana, "Nadana"},
		{shipment.StatusPrzypisanoKierowce, "Przypisano kierowcę"},
		{shipment.StatusPrzyjetaOdKlienta, "Przyjęta od klienta"},
		{shipment.StatusDostarczona, "Dostarczona"},
		{shipment.StatusInterwencja, "Interwencja"},
		{shipment.StatusUnknown, "Unknown"},
		{shipment.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("round_trips_all_valid_statuses", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusNadana,
			shipment.StatusPrzypisanoKierowce,
			shipment.StatusPrzyjetaOdKlienta,
			shipment.StatusDostarczona,
			shipment.StatusInterwencja,
		} {
			parsed, err := shipment.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := shipment.ParseStatus("Paid")
		require.Error(t, err)

		_, err = shipment.ParseStatus("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, shipment.StatusNadana.IsActive())
	assert.True(t, shipment.StatusPrzypisanoKierowce.IsActive())
	assert.True(t, shipment.StatusPrzyjetaOdKlienta.IsActive())
	assert.False(t, shipment.StatusDostarczona.IsActive())
	assert.False(t, shipment.StatusInterwencja.IsActive())
	assert.False(t, shipment.StatusUnknown.IsActive())
}

func TestStatus_AssignDriver(t *testing.T) {
	t.Run("allowed_from_any_valid_status", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusNadana,
			shipment.StatusPrzypisanoKierowce,
			shipment.StatusPrzyjetaOdKlienta,
			shipment.StatusDostarczona,
			shipment.StatusInterwencja,
		} {
			next, err := s.AssignDriver()
			require.NoError(t, err)
			assert.Equal(t, shipment.StatusPrzypisanoKierowce, next)
		}
	})

	t.Run("rejected_for_unknown", func(t *testing.T) {
		_, err := shipment.StatusUnknown.AssignDriver()
		require.ErrorIs(t, err, shipment.ErrInvalidStateTransition)
	})
}

func TestStatus_AcceptPickup(t *testing.T) {
	t.Run("only_from_przypisano_kierowce", func(t *testing.T) {
		next, err := shipment.StatusPrzypisanoKierowce.AcceptPickup()
		require.NoError(t, err)
		assert.Equal(t, shipment.StatusPrzyjetaOdKlienta, next)
	})

	t.Run("rejected_from_everything_else", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusUnknown,
			shipment.StatusNadana,
			shipment.StatusPrzyjetaOdKlienta,
			shipment.StatusDostarczona,
			shipment.StatusInterwencja,
		} {
			_, err := s.AcceptPickup()
			require.ErrorIs(t, err, shipment.ErrInvalidStateTransition, s.String())
		}
	})
}

func TestStatus_ConfirmDelivery(t *testing.T) {
	t.Run("only_from_przyjeta_od_klienta", func(t *testing.T) {
		next, err := shipment.StatusPrzyjetaOdKlienta.ConfirmDelivery()
		require.NoError(t, err)
		assert.Equal(t, shipment.StatusDostarczona, next)
	})

	t.Run("rejected_from_everything_else", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusUnknown,
			shipment.StatusNadana,
			shipment.StatusPrzypisanoKierowce,
			shipment.StatusDostarczona,
			shipment.StatusInterwencja,
		} {
			_, err := s.ConfirmDelivery()
			require.ErrorIs(t, err, shipment.ErrInvalidStateTransition, s.String())
		}
	})
}

func TestStatus_Intervene(t *testing.T) {
	t.Run("allowed_from_non_terminal", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusNadana,
			shipment.StatusPrzypisanoKierowce,
			shipment.StatusPrzyjetaOdKlienta,
		} {
			next, err := s.Intervene()
			require.NoError(t, err)
			assert.Equal(t, shipment.StatusInterwencja, next)
		}
	})

	t.Run("rejected_from_terminal", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.StatusDostarczona, shipment.StatusInterwencja} {
			_, err := s.Intervene()
			require.ErrorIs(t, err, shipment.ErrInvalidStateTransition, s.String())
		}
	})
}

func TestStatus_Override(t *testing.T) {
	t.Run("intervention_can_be_overridden", func(t *testing.T) {
		next, err := shipment.StatusInterwencja.Override(shipment.StatusNadana)
		require.NoError(t, err)
		assert.Equal(t, shipment.StatusNadana, next)
	})

	t.Run("only_from_intervention", func(t *testing.T) {
		_, err := shipment.StatusNadana.Override(shipment.StatusDostarczona)
		require.ErrorIs(t, err, shipment.ErrInvalidStateTransition)
	})

	t.Run("target_must_be_valid", func(t *testing.T) {
		_, err := shipment.StatusInterwencja.Override(shipment.StatusUnknown)
		require.Error(t, err)
	})
}

func TestSize(t *testing.T) {
	t.Run("weights", func(t *testing.T) {
		assert.Equal(t, 1, shipment.SizeS.Weight())
		assert.Equal(t, 2, shipment.SizeM.Weight())
		assert.Equal(t, 3, shipment.SizeL.Weight())
		assert.Equal(t, 0, shipment.SizeUnknown.Weight())
	})

	t.Run("parse_round_trip", func(t *testing.T) {
		for _, s := range []shipment.Size{shipment.SizeS, shipment.SizeM, shipment.SizeL} {
			parsed, err := shipment.ParseSize(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_class", func(t *testing.T) {
		_, err := shipment.ParseSize("XL")
		require.Error(t, err)

		require.Error(t, shipment.SizeUnknown.Validate())
		require.Error(t, shipment.Size(42).Validate())
	})
}
