package app

import (
	"go.uber.org/fx"

	"github.com/estagiotrack/estagio_backend/internal/repo"
	"github.com/estagiotrack/estagio_backend/internal/service/estagiario"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideEstagiarioService,
	),
)

func ProvideEstagiarioService(db repo.Repository) estagiario.Service {
	return estagiario.New(db)
}
