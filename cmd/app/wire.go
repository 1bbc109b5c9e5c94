//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/omx-assistant/internal/bootstrap"
	"github.com/yanqian/omx-assistant/internal/domain/auth"
	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
	"github.com/yanqian/omx-assistant/internal/infra/config"
	httpiface "github.com/yanqian/omx-assistant/internal/interface/http"
	"github.com/yanqian/omx-assistant/internal/interface/ws"
	"github.com/yanqian/omx-assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideConversationConfig,
		provideAuthConfig,
		provideCatalogSource,
		provideFAQStore,
		provideDetector,
		provideSessionStore,
		ws.NewHub,
		faq.NewService,
		provideConversationService,
		auth.NewTokenService,
		wire.Bind(new(faq.LanguageDetector), new(*language.Detector)),
		wire.Bind(new(httpiface.TokenValidator), new(*auth.TokenService)),
		provideHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
