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
	"fmt"

	"github.com/spf13/viper"

	"github.com/valpere/sareview/internal/llm"
	"github.com/valpere/sareview/internal/translator"
)

// buildCompleter constructs the LLM backend named by the service setting.
// Google is translation-only and cannot generate reviews.
func buildCompleter() (llm.Completer, llm.ServiceConfig, error) {
	apiKey := viper.GetString("api_key")
	model := viper.GetString("model")

	switch name := viper.GetString("service"); name {
	case "anthropic":
		if model == "" {
			model = llm.DefaultAnthropicModel
		}
		cfg := llm.ServiceConfig{
			APIKey:    apiKey,
			Model:     model,
			MaxTokens: viper.GetInt("max_tokens"),
		}
		return llm.NewAnthropicService(apiKey, ""), cfg, nil
	case "openrouter":
		if model == "" {
			model = llm.DefaultOpenRouterModel
		}
		cfg := llm.ServiceConfig{
			APIKey:    apiKey,
			Model:     model,
			MaxTokens: viper.GetInt("max_tokens"),
		}
		return llm.NewOpenRouterService(apiKey, ""), cfg, nil
	case "google":
		return nil, llm.ServiceConfig{}, fmt.Errorf("service %q only translates; use anthropic or openrouter for generation", name)
	default:
		return nil, llm.ServiceConfig{}, fmt.Errorf("unknown service: %s", name)
	}
}

// buildTranslator constructs the translation backend named by the service
// setting. The LLM backends reuse the completer; google uses the Cloud
// Translation API with the credentials file.
func buildTranslator(credentials string) (translator.Service, error) {
	switch name := viper.GetString("service"); name {
	case "anthropic", "openrouter":
		completer, cfg, err := buildCompleter()
		if err != nil {
			return nil, err
		}
		return translator.NewLLMService(completer, cfg), nil
	case "google":
		return translator.NewGoogleService(credentials), nil
	default:
		return nil, fmt.Errorf("unknown service: %s", name)
	}
}
