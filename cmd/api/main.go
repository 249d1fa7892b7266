package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devclub/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb"
	"github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/tmbclient"
	"github.com/devclub/sales-dashboard-api/infrastructure/repository"
	"github.com/devclub/sales-dashboard-api/internal/api"
	"github.com/devclub/sales-dashboard-api/internal/config"
	"github.com/devclub/sales-dashboard-api/internal/scheduler"
	"github.com/devclub/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/devclub/sales-dashboard-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	hotmartClient := hotmartclient.NewClient(cfg)
	hotmartIntegrator := hotmart.New(cfg, hotmartClient)

	tmbClient := tmbclient.NewClient(cfg)
	tmbIntegrator := tmb.New(cfg, tmbClient)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	boletoCache := reporting.NewBoletoCache(
		time.Duration(cfg.Dashboard.BoletoCacheTTLSeconds)*time.Second,
		nil,
	)

	reporter := reporting.NewService(cfg, hotmartIntegrator, tmbIntegrator, metaIntegrator, boletoCache)

	// Agendador de aquecimento do cache de boletos
	warmupService := scheduler.NewDashboardWarmupService(reporter, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do painel")
	} else {
		logrus.Info("Agendador de aquecimento do painel iniciado com sucesso")
	}

	server, err := api.New(cfg, reporter, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
