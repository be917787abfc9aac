//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/r-G7D/color-outfit-app/internal/bootstrap"
	"github.com/r-G7D/color-outfit-app/internal/domain/coloranalysis"
	"github.com/r-G7D/color-outfit-app/internal/infra/config"
	"github.com/r-G7D/color-outfit-app/internal/infra/llm/chatgpt"
	httpiface "github.com/r-G7D/color-outfit-app/internal/interface/http"
	"github.com/r-G7D/color-outfit-app/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAnalysisConfig,
		provideChatGPTClient,
		provideMetricsRegistry,
		provideMetricsRecorder,
		coloranalysis.NewService,
		wire.Bind(new(coloranalysis.ChatClient), new(*chatgpt.Client)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
