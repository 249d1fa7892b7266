package reporting

import (
	"strconv"
	"time"

	"github.com/devclub/sales-dashboard-api/internal/domain"
)

// Bucketer projeta timestamps em chaves de balde de calendário usando um
// fuso explícito. A política de fuso é única para o painel inteiro
// (config DASHBOARD_TIMEZONE): a data de calendário de um evento é sempre a
// do fuso injetado, nunca uma mistura de UTC com horário local.
type Bucketer struct {
	granularity domain.Granularity
	start       time.Time
	end         time.Time
	location    *time.Location
}

func NewBucketer(granularity domain.Granularity, start, end time.Time, location *time.Location) *Bucketer {
	return &Bucketer{
		granularity: granularity,
		start:       start,
		end:         end,
		location:    location,
	}
}

// KeyFor deriva a chave de balde de um timestamp (epoch segundos)
func (b *Bucketer) KeyFor(ts int64) string {
	t := time.Unix(ts, 0).In(b.location)

	switch b.granularity {
	case domain.GranularityHourOfDay:
		return strconv.Itoa(t.Hour())
	case domain.GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format(time.DateOnly)
	}
}

// Buckets materializa a lista pré-populada de baldes vazios da janela, em
// ordem, para que lacunas apareçam como zero em vez de ausentes. Cada
// chamada devolve baldes novos, o que mantém a agregação re-executável
// sobre o mesmo Bucketer.
func (b *Bucketer) Buckets() []*domain.AggregateBucket {
	switch b.granularity {
	case domain.GranularityHourOfDay:
		// Perfil intradiário: sempre 24 baldes, independente da janela
		buckets := make([]*domain.AggregateBucket, 0, 24)
		for hour := 0; hour < 24; hour++ {
			buckets = append(buckets, &domain.AggregateBucket{Key: strconv.Itoa(hour)})
		}
		return buckets

	case domain.GranularityMonth:
		buckets := make([]*domain.AggregateBucket, 0)
		current := time.Date(b.start.Year(), b.start.Month(), 1, 0, 0, 0, 0, b.location)
		last := time.Date(b.end.Year(), b.end.Month(), 1, 0, 0, 0, 0, b.location)
		for !current.After(last) {
			buckets = append(buckets, &domain.AggregateBucket{Key: current.Format("2006-01")})
			current = current.AddDate(0, 1, 0)
		}
		return buckets

	default:
		buckets := make([]*domain.AggregateBucket, 0)
		current := time.Date(b.start.Year(), b.start.Month(), b.start.Day(), 0, 0, 0, 0, b.location)
		last := time.Date(b.end.Year(), b.end.Month(), b.end.Day(), 0, 0, 0, 0, b.location)
		for !current.After(last) {
			buckets = append(buckets, &domain.AggregateBucket{Key: current.Format(time.DateOnly)})
			current = current.AddDate(0, 0, 1)
		}
		return buckets
	}
}
