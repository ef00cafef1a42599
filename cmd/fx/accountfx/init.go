package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planmyitinerary/internal/repositories"
	"planmyitinerary/internal/services"
	"planmyitinerary/pkg/memcache"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens memcache.VerifyTokenStore,
	mail services.IMailService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, mail)
}
