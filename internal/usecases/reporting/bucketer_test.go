package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return location
}

func TestBucketerKeyFor(t *testing.T) {
	location := saoPaulo(t)
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, location)

	// 2024-06-10 15:30 em São Paulo (UTC-3)
	ts := time.Date(2024, 6, 10, 15, 30, 0, 0, location).Unix()

	t.Run("Hora do dia usa o fuso injetado", func(t *testing.T) {
		bucketer := NewBucketer(domain.GranularityHourOfDay, day, day, location)
		assert.Equal(t, "15", bucketer.KeyFor(ts))
	})

	t.Run("Dia usa a data de calendário do fuso", func(t *testing.T) {
		bucketer := NewBucketer(domain.GranularityDay, day, day, location)
		assert.Equal(t, "2024-06-10", bucketer.KeyFor(ts))
	})

	t.Run("Mês usa ano-mês do fuso", func(t *testing.T) {
		bucketer := NewBucketer(domain.GranularityMonth, day, day, location)
		assert.Equal(t, "2024-06", bucketer.KeyFor(ts))
	})

	t.Run("Evento perto da meia-noite UTC cai no dia do fuso local", func(t *testing.T) {
		// 2024-06-11 01:00 UTC = 2024-06-10 22:00 em São Paulo
		lateEvening := time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC).Unix()

		bucketer := NewBucketer(domain.GranularityDay, day, day, location)
		assert.Equal(t, "2024-06-10", bucketer.KeyFor(lateEvening))
	})
}

func TestBucketerBuckets(t *testing.T) {
	location := saoPaulo(t)

	t.Run("Perfil intradiário sempre tem 24 baldes", func(t *testing.T) {
		day := time.Date(2024, 6, 10, 0, 0, 0, 0, location)
		bucketer := NewBucketer(domain.GranularityHourOfDay, day, day, location)

		buckets := bucketer.Buckets()

		require.Len(t, buckets, 24)
		assert.Equal(t, "0", buckets[0].Key)
		assert.Equal(t, "23", buckets[23].Key)
	})

	t.Run("Janela diária materializa um balde por dia, inclusivo nas pontas", func(t *testing.T) {
		start := time.Date(2024, 6, 10, 0, 0, 0, 0, location)
		end := time.Date(2024, 6, 16, 0, 0, 0, 0, location)
		bucketer := NewBucketer(domain.GranularityDay, start, end, location)

		buckets := bucketer.Buckets()

		require.Len(t, buckets, 7)
		assert.Equal(t, "2024-06-10", buckets[0].Key)
		assert.Equal(t, "2024-06-16", buckets[6].Key)
	})

	t.Run("Janela mensal atravessa a virada de ano", func(t *testing.T) {
		start := time.Date(2023, 11, 15, 0, 0, 0, 0, location)
		end := time.Date(2024, 2, 3, 0, 0, 0, 0, location)
		bucketer := NewBucketer(domain.GranularityMonth, start, end, location)

		buckets := bucketer.Buckets()

		require.Len(t, buckets, 4)
		assert.Equal(t, "2023-11", buckets[0].Key)
		assert.Equal(t, "2024-02", buckets[3].Key)
	})

	t.Run("Cada chamada devolve baldes novos", func(t *testing.T) {
		day := time.Date(2024, 6, 10, 0, 0, 0, 0, location)
		bucketer := NewBucketer(domain.GranularityDay, day, day, location)

		first := bucketer.Buckets()
		first[0].TotalValue = 999

		second := bucketer.Buckets()
		assert.Equal(t, 0.0, second[0].TotalValue)
	})
}
