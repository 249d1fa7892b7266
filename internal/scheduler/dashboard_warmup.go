package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/internal/usecases/reporting"
)

// DashboardWarmupConfig representa a configuração do agendador de aquecimento do painel
type DashboardWarmupConfig struct {
	CronSchedule  string
	WarmupEnabled bool
}

// DashboardWarmupService agenda o pré-carregamento do cache de boletos do
// dia corrente, tirando a latência da planilha do caminho da primeira
// requisição de cada janela de TTL.
type DashboardWarmupService struct {
	scheduler           *gocron.Scheduler
	config              DashboardWarmupConfig
	reporter            reporting.Reporter
	warmupRunning       bool
	warmupMutex         sync.Mutex
	lastWarmupStartedAt time.Time
}

// NewDashboardWarmupService cria uma nova instância do serviço de aquecimento do painel
func NewDashboardWarmupService(
	reporter reporting.Reporter,
	appConfig *config.Config,
) *DashboardWarmupService {
	warmupConfig := DashboardWarmupConfig{
		CronSchedule:  appConfig.DashboardWarmup.CronSchedule,
		WarmupEnabled: appConfig.DashboardWarmup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  warmupConfig.CronSchedule,
		"warmup_enabled": warmupConfig.WarmupEnabled,
	}).Info("Configuração do agendador de aquecimento do painel carregada")

	return &DashboardWarmupService{
		scheduler:     scheduler,
		config:        warmupConfig,
		reporter:      reporter,
		warmupRunning: false,
	}
}

// Start inicia o agendador
func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.WarmupEnabled {
		logrus.Info("Aquecimento do painel desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupCurrentDay(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do painel")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardWarmupService) warmupCurrentDay(ctx context.Context) {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Aquecimento do painel já em andamento, ignorando")
		return
	}
	s.warmupRunning = true
	s.lastWarmupStartedAt = time.Now()
	s.warmupMutex.Unlock()

	defer func() {
		s.warmupMutex.Lock()
		s.warmupRunning = false
		s.warmupMutex.Unlock()
	}()

	startTime := time.Now()

	if err := s.reporter.WarmupCurrentDay(ctx); err != nil {
		logrus.WithError(err).Warn("Aquecimento do cache de boletos falhou, próxima requisição busca direto na fonte")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Cache de boletos do dia aquecido")
}
