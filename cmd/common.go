/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/valpere/randomly/internal/detector"
	"github.com/valpere/randomly/internal/fact"
	"github.com/valpere/randomly/internal/translator"
)

func buildFetcher() *fact.Fetcher {
	return fact.NewFetcher(fact.FetcherConfig{
		BaseURL: cfg.Fact.BaseURL,
		Timeout: cfg.Fact.Timeout,
		Logger:  logs.Get("fact"),
	})
}

// buildTranslator constructs the fact translator for the configured service,
// or for serviceName when it is not empty.
func buildTranslator(ctx context.Context, serviceName string) (*fact.Translator, error) {
	if serviceName == "" {
		serviceName = cfg.Translator.Service
	}

	svc, err := translator.New(serviceName, cfg.Translator.ServiceConfig())
	if err != nil {
		return nil, err
	}
	if err := svc.IsAvailable(ctx); err != nil {
		return nil, fmt.Errorf("service %s unavailable: %w", svc.Name(), err)
	}

	return fact.NewTranslator(svc, detector.New(), logs.Get("translator")), nil
}
