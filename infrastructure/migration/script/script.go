package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/database/postgres"
	"github.com/stensrud/agentic-dsta/infrastructure/migration"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/pkg/log"
)

// Cria o schema e, opcionalmente, carrega uma seed de configurações de clientes.
// A conexão vem das mesmas variáveis DATABASE_* usadas pela API.
func main() {
	seedPath := flag.String("seed", "", "arquivo JSON com configurações de clientes")
	flag.Parse()

	log.Configure("info")
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := migration.Apply(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}

	if *seedPath != "" {
		raw, err := os.ReadFile(*seedPath)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao ler arquivo de seed")
		}

		var seed migration.Seed
		if err := migration.Unmarshal(raw, &seed); err != nil {
			logrus.WithError(err).Fatal("Erro ao decodificar seed")
		}

		if err := migration.ApplySeed(ctx, conn, seed); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar seed")
		}
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}
