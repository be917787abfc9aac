package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/r-G7D/color-outfit-app/internal/domain/coloranalysis"
	"github.com/r-G7D/color-outfit-app/internal/infra/config"
	"github.com/r-G7D/color-outfit-app/internal/infra/llm/chatgpt"
	"github.com/r-G7D/color-outfit-app/pkg/metrics"
)

func provideAnalysisConfig(cfg *config.Config) coloranalysis.Config {
	return coloranalysis.Config{
		Model:        cfg.LLM.Model,
		MaxTokens:    cfg.LLM.MaxTokens,
		SystemPrompt: cfg.Analysis.SystemPrompt,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.EffectiveTimeout())
}

func provideMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetricsRecorder(reg *prometheus.Registry) (*metrics.Recorder, error) {
	return metrics.NewRecorder(reg)
}
