// seed popula o catálogo com os itens de demonstração do almoxarifado.
//
// Uso: go run ./cmd/seed
// Idempotente: itens já cadastrados são pulados.
package main

import (
	"context"

	"github.com/stockeye/estoque-api/internal/application/catalog"
	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/infrastructure/postgres"
	"github.com/stockeye/estoque-api/pkg/config"
	"github.com/stockeye/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	catalogUC := catalog.NewUseCase(postgres.NewItemRepository(pool))

	seeds := []catalog.RegisterInput{
		{Name: "Luvas Cirúrgicas", Category: "EPI", InitialQuantity: 50, MinThreshold: 20, CriticalThreshold: 10},
		{Name: "Máscara N95", Category: "EPI", InitialQuantity: 8, MinThreshold: 15, CriticalThreshold: 5},
		{Name: "Seringa 5ml", Category: "Descartáveis", InitialQuantity: 100, MinThreshold: 30, CriticalThreshold: 10},
		{Name: "Agulha 25x7", Category: "Descartáveis", InitialQuantity: 4, MinThreshold: 25, CriticalThreshold: 8},
		{Name: "Algodão", Category: "Insumos", InitialQuantity: 40, MinThreshold: 15, CriticalThreshold: 5},
		{Name: "Álcool 70%", Category: "Insumos", InitialQuantity: 20, MinThreshold: 10, CriticalThreshold: 3},
	}

	created, skipped := 0, 0
	for _, in := range seeds {
		if _, err := catalogUC.Register(in); err != nil {
			if err == domain.ErrDuplicateItem {
				skipped++
				log.Info().Str("item", in.Name).Msg("já cadastrado, pulando")
				continue
			}
			log.Fatal().Err(err).Str("item", in.Name).Msg("cadastrar item")
		}
		created++
		log.Info().Str("item", in.Name).Int("quantidade", in.InitialQuantity).Msg("item cadastrado")
	}

	log.Info().Int("criados", created).Int("pulados", skipped).Msg("seed concluído")
}
